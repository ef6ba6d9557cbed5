package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxSignificantEvents caps the significant_events list per entry.
const MaxSignificantEvents = 4

// Entry is one user-submitted emotional record. Entries are immutable
// after creation; there is no edit or delete path.
type Entry struct {
	ID                uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username          string    `json:"username" gorm:"size:64;not null;index"`
	Title             string    `json:"title" gorm:"size:255;not null"`
	PrimaryEmotion    string    `json:"primary_emotion" gorm:"size:64;not null"`
	Description       string    `json:"description" gorm:"not null"`
	DayRating         int       `json:"day_rating" gorm:"not null"`
	Mood              Mood      `json:"mood" gorm:"size:32;not null"`
	SignificantEvents []string  `json:"significant_events" gorm:"serializer:json"`
	Weather           string    `json:"weather,omitempty" gorm:"size:255"`
	Region            Region    `json:"region,omitempty" gorm:"size:32;index"`
	CreatedAt         time.Time `json:"created_at" gorm:"index:,sort:desc"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
