package auth

// StrengthLevel is the advisory strength bucket for a password.
type StrengthLevel string

const (
	LevelWeak   StrengthLevel = "weak"
	LevelMedium StrengthLevel = "medium"
	LevelStrong StrengthLevel = "strong"
)

// MinPasswordLength is the only hard requirement; the score is advisory.
const MinPasswordLength = 6

// PasswordStrength is the outcome of checking a raw password.
type PasswordStrength struct {
	Score   int           `json:"score"`
	Level   StrengthLevel `json:"level"`
	Message string        `json:"message"`
	IsValid bool          `json:"isValid"`
	Err     string        `json:"error,omitempty"`
}

// CheckPasswordStrength validates a raw password. Anything shorter than
// MinPasswordLength is rejected outright; beyond that the password is always
// accepted and only the advisory score varies. Score starts at 1, +1 for
// length >= 8, +1 if the password contains an uppercase letter, a digit, or
// a non-alphanumeric character (one combined check, never stacked).
func CheckPasswordStrength(password string) PasswordStrength {
	if len(password) < MinPasswordLength {
		return PasswordStrength{
			Score:   0,
			Level:   LevelWeak,
			Message: "Too short",
			IsValid: false,
			Err:     "Password must be at least 6 characters long",
		}
	}

	score := 1
	if len(password) >= 8 {
		score++
	}
	if containsUpperDigitOrSymbol(password) {
		score++
	}

	var level StrengthLevel
	var message string
	switch score {
	case 1:
		level, message = LevelWeak, "Okay"
	case 2:
		level, message = LevelMedium, "Good"
	default:
		level, message = LevelStrong, "Great"
	}

	return PasswordStrength{Score: score, Level: level, Message: message, IsValid: true}
}

func containsUpperDigitOrSymbol(password string) bool {
	for i := 0; i < len(password); i++ {
		c := password[i]
		isUpper := c >= 'A' && c <= 'Z'
		isDigit := c >= '0' && c <= '9'
		isLower := c >= 'a' && c <= 'z'
		if isUpper || isDigit || (!isLower && !isUpper && !isDigit) {
			return true
		}
	}
	return false
}
