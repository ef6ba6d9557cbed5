package repository

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"humanatlas/internal/model"
)

// EntryRepository defines persistence operations for emotional entries.
// Entries are append-only; there are no update or delete operations.
type EntryRepository interface {
	Create(ctx context.Context, entry *model.Entry) error
	ListAll(ctx context.Context) ([]model.Entry, error)
	FindByUsername(ctx context.Context, username string) ([]model.Entry, error)
	// LatestCreatedAt returns the most recent submission time for username,
	// or nil when the user has never posted.
	LatestCreatedAt(ctx context.Context, username string) (*time.Time, error)
}

type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository builds a GORM-backed repository.
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) Create(ctx context.Context, entry *model.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepository) ListAll(ctx context.Context) ([]model.Entry, error) {
	var entries []model.Entry
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) FindByUsername(ctx context.Context, username string) ([]model.Entry, error) {
	var entries []model.Entry
	if err := r.db.WithContext(ctx).Where("username = ?", username).Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) LatestCreatedAt(ctx context.Context, username string) (*time.Time, error) {
	var latest sql.NullTime
	err := r.db.WithContext(ctx).Model(&model.Entry{}).
		Where("username = ?", username).
		Select("MAX(created_at)").
		Scan(&latest).Error
	if err != nil {
		return nil, err
	}
	if !latest.Valid {
		return nil, nil
	}
	return &latest.Time, nil
}
