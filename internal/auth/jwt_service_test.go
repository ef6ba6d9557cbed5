package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"humanatlas/internal/model"
)

func testUser() model.SafeUser {
	return model.SafeUser{
		ID:        uuid.New(),
		Username:  "alice",
		Region:    model.RegionEurope,
		PostCount: 3,
		LastLogin: time.Now().Truncate(time.Second),
		CreatedAt: time.Now().Add(-24 * time.Hour).Truncate(time.Second),
	}
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	user := testUser()

	token, err := svc.GenerateSessionToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, user.Username, claims.User.Username)
	assert.Equal(t, user.ID, claims.User.ID)
	assert.Equal(t, user.Region, claims.User.Region)
	assert.Equal(t, user.Username, claims.Subject)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)

	token, err := svc.GenerateSessionToken(testUser())
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", time.Hour).GenerateSessionToken(testUser())
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
