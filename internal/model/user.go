package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a pseudonymous registered identity.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Region       Region    `json:"region" gorm:"size:32;not null;default:'Unknown';index"`
	PostCount    int       `json:"post_count" gorm:"not null;default:0"`
	LastLogin    time.Time `json:"last_login"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// SafeUser is the projection of a User that may leave the server.
// It carries everything a client needs and nothing it must not see.
type SafeUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Region    Region    `json:"region"`
	PostCount int       `json:"post_count"`
	LastLogin time.Time `json:"last_login"`
	CreatedAt time.Time `json:"created_at"`
}

// Safe returns the hash-free projection of the user.
func (u *User) Safe() SafeUser {
	return SafeUser{
		ID:        u.ID,
		Username:  u.Username,
		Region:    u.Region,
		PostCount: u.PostCount,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
