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

func TestMostFrequent(t *testing.T) {
	t.Run("clear winner", func(t *testing.T) {
		assert.Equal(t, "a", mostFrequent([]string{"a", "a", "b"}))
	})

	t.Run("tie goes to the value sorting last", func(t *testing.T) {
		assert.Equal(t, "b", mostFrequent([]string{"a", "b"}))
		assert.Equal(t, "c", mostFrequent([]string{"c", "a", "b", "a", "c"}))
	})

	t.Run("integers", func(t *testing.T) {
		assert.Equal(t, 14, mostFrequent([]int{14, 9, 14, 9, 3}))
		assert.Equal(t, 9, mostFrequent([]int{3, 9}))
	})

	t.Run("single value", func(t *testing.T) {
		assert.Equal(t, "only", mostFrequent([]string{"only"}))
	})
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Nil(t, ComputeStats(nil))
	assert.Nil(t, ComputeStats([]model.Entry{}))
}

func TestComputeStats(t *testing.T) {
	// Monday 2024-01-15 and Tuesday 2024-01-16, afternoon-heavy.
	entries := []model.Entry{
		{
			PrimaryEmotion: "Joy",
			Title:          "First",
			Description:    "The first entry of the set.",
			DayRating:      8,
			Mood:           model.MoodGood,
			Region:         model.RegionEurope,
			CreatedAt:      time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC),
		},
		{
			PrimaryEmotion: "Joy",
			Title:          "Second",
			Description:    "The second entry of the set.",
			DayRating:      6,
			Mood:           model.MoodNeutral,
			Region:         model.RegionEurope,
			CreatedAt:      time.Date(2024, 1, 15, 15, 30, 0, 0, time.UTC),
		},
		{
			PrimaryEmotion: "Anxiety",
			Title:          "Third",
			Description:    "The third entry of the set.",
			DayRating:      4,
			Mood:           model.MoodDifficult,
			CreatedAt:      time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC),
		},
	}

	stats := ComputeStats(entries)
	assert.NotNil(t, stats)

	assert.Equal(t, 3, stats.TotalEntries)
	assert.Equal(t, 2, stats.UniqueCategories)
	assert.Equal(t, "Joy", stats.MostFrequentCategory)
	assert.Equal(t, "3 PM", stats.MostFrequentHour)
	assert.Equal(t, "Monday", stats.MostFrequentWeekday)

	assert.Equal(t, map[string]int{"Joy": 2, "Anxiety": 1}, stats.CategoryFrequency)

	// Newest first, display projection.
	assert.Len(t, stats.RecentEntries, 3)
	assert.Equal(t, "Third", stats.RecentEntries[0].Title)
	assert.Equal(t, "Second", stats.RecentEntries[1].Title)
	assert.Equal(t, "First", stats.RecentEntries[2].Title)
	assert.Equal(t, "1/16/2024", stats.RecentEntries[0].CreatedAt)
	assert.Equal(t, "Unknown Location", stats.RecentEntries[0].LocationName)
	assert.Equal(t, "Europe", stats.RecentEntries[1].LocationName)
}

func TestComputeStats_FrequencyInvariants(t *testing.T) {
	entries := []model.Entry{
		{PrimaryEmotion: "Hope", CreatedAt: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
		{PrimaryEmotion: "Hope", CreatedAt: time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)},
		{PrimaryEmotion: "Fear", CreatedAt: time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC)},
		{PrimaryEmotion: "Love", CreatedAt: time.Date(2024, 3, 4, 11, 0, 0, 0, time.UTC)},
		{PrimaryEmotion: "Love", CreatedAt: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)},
	}

	stats := ComputeStats(entries)
	assert.NotNil(t, stats)

	sum := 0
	for _, count := range stats.CategoryFrequency {
		sum += count
	}
	assert.Equal(t, stats.TotalEntries, sum)
	assert.Equal(t, stats.UniqueCategories, len(stats.CategoryFrequency))

	// Hope and Love are tied at two; Love sorts last.
	assert.Equal(t, "Love", stats.MostFrequentCategory)
}

func TestComputeStats_HourLabels(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "12 AM"},
		{9, "9 AM"},
		{12, "12 PM"},
		{15, "3 PM"},
		{23, "11 PM"},
	}

	for _, tt := range tests {
		entries := []model.Entry{
			{PrimaryEmotion: "Joy", CreatedAt: time.Date(2024, 5, 1, tt.hour, 10, 0, 0, time.UTC)},
		}
		stats := ComputeStats(entries)
		assert.Equal(t, tt.want, stats.MostFrequentHour)
	}
}

func TestStatsService_ProfileStats(t *testing.T) {
	t.Run("no entries yields nil stats", func(t *testing.T) {
		mockEntries := new(MockEntryRepository)
		mockEntries.On("FindByUsername", mock.Anything, "ghost").Return([]model.Entry{}, nil)

		svc := NewStatsService(mockEntries)
		stats, err := svc.ProfileStats(context.Background(), "ghost")

		assert.NoError(t, err)
		assert.Nil(t, stats)
	})

	t.Run("store failure is retryable upstream", func(t *testing.T) {
		mockEntries := new(MockEntryRepository)
		mockEntries.On("FindByUsername", mock.Anything, "alice").
			Return(nil, errors.New("connection refused"))

		svc := NewStatsService(mockEntries)
		stats, err := svc.ProfileStats(context.Background(), "alice")

		assert.Nil(t, stats)
		assert.ErrorIs(t, err, apperrors.ErrUpstream)
	})

	t.Run("aggregates one user's entries", func(t *testing.T) {
		mockEntries := new(MockEntryRepository)
		mockEntries.On("FindByUsername", mock.Anything, "alice").Return([]model.Entry{
			{PrimaryEmotion: "Joy", CreatedAt: time.Date(2024, 1, 15, 15, 0, 0, 0, time.UTC)},
		}, nil)

		svc := NewStatsService(mockEntries)
		stats, err := svc.ProfileStats(context.Background(), "alice")

		assert.NoError(t, err)
		assert.NotNil(t, stats)
		assert.Equal(t, 1, stats.TotalEntries)
		assert.Equal(t, "Joy", stats.MostFrequentCategory)
	})
}
