package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "humanatlas/internal/errors"
	"humanatlas/internal/model"
)

// MockEntryRepository is a mock implementation of EntryRepository.
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *model.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) ListAll(ctx context.Context) ([]model.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindByUsername(ctx context.Context, username string) ([]model.Entry, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Entry), args.Error(1)
}

func (m *MockEntryRepository) LatestCreatedAt(ctx context.Context, username string) (*time.Time, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*time.Time), args.Error(1)
}

func timePtr(t time.Time) *time.Time { return &t }

func TestRateLimiter_CanSubmit(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockEntryRepository)
		want      bool
		wantErr   bool
	}{
		{
			name: "no prior entries",
			setupMock: func(m *MockEntryRepository) {
				m.On("LatestCreatedAt", mock.Anything, "alice").Return(nil, nil)
			},
			want: true,
		},
		{
			name: "last entry thirty minutes ago",
			setupMock: func(m *MockEntryRepository) {
				m.On("LatestCreatedAt", mock.Anything, "alice").
					Return(timePtr(time.Now().Add(-30*time.Minute)), nil)
			},
			want: false,
		},
		{
			name: "last entry sixty one minutes ago",
			setupMock: func(m *MockEntryRepository) {
				m.On("LatestCreatedAt", mock.Anything, "alice").
					Return(timePtr(time.Now().Add(-61*time.Minute)), nil)
			},
			want: true,
		},
		{
			name: "last entry just inside the window",
			setupMock: func(m *MockEntryRepository) {
				// The elapsed time must exceed the window; one minute short denies.
				m.On("LatestCreatedAt", mock.Anything, "alice").
					Return(timePtr(time.Now().Add(-59*time.Minute)), nil)
			},
			want: false,
		},
		{
			name: "store failure rejects instead of allowing",
			setupMock: func(m *MockEntryRepository) {
				m.On("LatestCreatedAt", mock.Anything, "alice").
					Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockEntryRepository)
			tt.setupMock(mockRepo)

			limiter := NewRateLimiter(mockRepo, nil, time.Hour)
			got, err := limiter.CanSubmit(context.Background(), "alice")

			if tt.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrUpstream)
				assert.False(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRateLimiter_ReserveDegradesWithoutRedis(t *testing.T) {
	limiter := NewRateLimiter(new(MockEntryRepository), nil, time.Hour)

	// With no Redis the reservation cannot be taken; the store check stays
	// authoritative, so the limiter lets the submission proceed.
	assert.True(t, limiter.Reserve(context.Background(), "alice"))
	limiter.Release(context.Background(), "alice")
}

func TestRateLimiter_Window(t *testing.T) {
	limiter := NewRateLimiter(new(MockEntryRepository), nil, 45*time.Minute)
	assert.Equal(t, 45*time.Minute, limiter.Window())
}
