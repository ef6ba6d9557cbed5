package model

// Region is the broad, user-declared location bucket. Deliberately coarse:
// the service never stores anything finer than a continent-scale region.
type Region string

const (
	RegionNorthAmerica   Region = "North America"
	RegionSouthAmerica   Region = "South America"
	RegionEurope         Region = "Europe"
	RegionAfrica         Region = "Africa"
	RegionAsia           Region = "Asia"
	RegionOceania        Region = "Oceania"
	RegionMiddleEast     Region = "Middle East"
	RegionCaribbean      Region = "Caribbean"
	RegionCentralAmerica Region = "Central America"
	RegionUnknown        Region = "Unknown"
)

// Regions lists every accepted region value.
var Regions = []Region{
	RegionNorthAmerica,
	RegionSouthAmerica,
	RegionEurope,
	RegionAfrica,
	RegionAsia,
	RegionOceania,
	RegionMiddleEast,
	RegionCaribbean,
	RegionCentralAmerica,
	RegionUnknown,
}

// ValidRegion reports whether r is one of the accepted region values.
func ValidRegion(r Region) bool {
	for _, known := range Regions {
		if r == known {
			return true
		}
	}
	return false
}

// Mood is the overall tone of the day attached to an entry.
type Mood string

const (
	MoodExcellent   Mood = "excellent"
	MoodGood        Mood = "good"
	MoodNeutral     Mood = "neutral"
	MoodDifficult   Mood = "difficult"
	MoodChallenging Mood = "challenging"
)

// Moods lists every accepted mood value.
var Moods = []Mood{MoodExcellent, MoodGood, MoodNeutral, MoodDifficult, MoodChallenging}

// ValidMood reports whether m is one of the accepted mood values.
func ValidMood(m Mood) bool {
	for _, known := range Moods {
		if m == known {
			return true
		}
	}
	return false
}

// EmotionCategories is the fixed set of primary emotions an entry may carry.
var EmotionCategories = []string{
	"Joy",
	"Sadness",
	"Anger",
	"Fear",
	"Surprise",
	"Disgust",
	"Love",
	"Anxiety",
	"Excitement",
	"Contentment",
	"Frustration",
	"Hope",
	"Loneliness",
	"Gratitude",
	"Overwhelmed",
	"Peaceful",
	"Confused",
	"Inspired",
	"Melancholy",
	"Euphoric",
}

// ValidEmotionCategory reports whether category is in the fixed category set.
func ValidEmotionCategory(category string) bool {
	for _, known := range EmotionCategories {
		if category == known {
			return true
		}
	}
	return false
}
