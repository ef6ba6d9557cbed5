package service

import (
	"context"
	"fmt"
	"log"
	"time"

	apperrors "humanatlas/internal/errors"
	"humanatlas/internal/model"
	"humanatlas/internal/repository"
)

// SubmitEntryInput carries client-supplied entry fields. Username, region
// and created_at are never taken from the client.
type SubmitEntryInput struct {
	Title             string
	PrimaryEmotion    string
	Description       string
	DayRating         int
	Mood              string
	SignificantEvents []string
	Weather           string
}

// EntryService composes session identity, rate limiting and the entry table
// into the submission action, and serves the public entry feed.
type EntryService interface {
	Submit(ctx context.Context, user model.SafeUser, in SubmitEntryInput) (*model.Entry, error)
	ListAll(ctx context.Context) ([]model.Entry, error)
}

type entryService struct {
	entries repository.EntryRepository
	users   repository.UserRepository
	limiter *RateLimiter
}

// NewEntryService creates a new entry service.
func NewEntryService(entries repository.EntryRepository, users repository.UserRepository, limiter *RateLimiter) EntryService {
	return &entryService{
		entries: entries,
		users:   users,
		limiter: limiter,
	}
}

// Submit validates preconditions in order, first failure wins: required
// fields, title length, description length, rating bounds, enum membership,
// then the rate limit. The server stamps created_at and copies username and
// region from the session.
func (s *entryService) Submit(ctx context.Context, user model.SafeUser, in SubmitEntryInput) (*model.Entry, error) {
	if in.Title == "" || in.PrimaryEmotion == "" || in.Description == "" || in.DayRating == 0 || in.Mood == "" {
		return nil, apperrors.NewValidation("Missing required fields")
	}
	if len(in.Title) < 3 {
		return nil, apperrors.NewValidation("Title must be at least 3 characters long")
	}
	if len(in.Description) < 10 {
		return nil, apperrors.NewValidation("Description must be at least 10 characters long")
	}
	if in.DayRating < 1 || in.DayRating > 10 {
		return nil, apperrors.NewValidation("Day rating must be between 1 and 10")
	}
	if !model.ValidEmotionCategory(in.PrimaryEmotion) {
		return nil, apperrors.NewValidation("Unknown emotion category")
	}
	if !model.ValidMood(model.Mood(in.Mood)) {
		return nil, apperrors.NewValidation("Unknown mood")
	}
	if len(in.SignificantEvents) > model.MaxSignificantEvents {
		return nil, apperrors.NewValidation("At most %d significant events are allowed", model.MaxSignificantEvents)
	}

	ok, err := s.limiter.CanSubmit(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrRateLimited
	}
	if !s.limiter.Reserve(ctx, user.Username) {
		return nil, apperrors.ErrRateLimited
	}

	events := in.SignificantEvents
	if events == nil {
		events = []string{}
	}
	entry := &model.Entry{
		Username:          user.Username,
		Title:             in.Title,
		PrimaryEmotion:    in.PrimaryEmotion,
		Description:       in.Description,
		DayRating:         in.DayRating,
		Mood:              model.Mood(in.Mood),
		SignificantEvents: events,
		Weather:           in.Weather,
		Region:            user.Region,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		s.limiter.Release(ctx, user.Username)
		return nil, fmt.Errorf("%w: create entry: %v", apperrors.ErrUpstream, err)
	}

	// Best-effort: a failed counter update never fails the submission.
	if err := s.users.IncrementPostCount(ctx, user.Username); err != nil {
		log.Printf("increment post count for %s: %v", user.Username, err)
	}

	return entry, nil
}

// ListAll returns every entry, newest first. No auth required.
func (s *entryService) ListAll(ctx context.Context) ([]model.Entry, error) {
	entries, err := s.entries.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list entries: %v", apperrors.ErrUpstream, err)
	}
	return entries, nil
}
