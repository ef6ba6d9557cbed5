package service

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	apperrors "humanatlas/internal/errors"
	"humanatlas/internal/model"
	"humanatlas/internal/repository"
)

// RecentEntry is the display-safe projection of one entry in a profile.
type RecentEntry struct {
	Emotion      string     `json:"emotion"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DayRating    int        `json:"day_rating"`
	Mood         model.Mood `json:"mood"`
	CreatedAt    string     `json:"created_at"`
	LocationName string     `json:"location_name"`
}

// Stats summarizes one user's full entry history.
type Stats struct {
	TotalEntries         int            `json:"totalEntries"`
	UniqueCategories     int            `json:"uniqueCategories"`
	MostFrequentCategory string         `json:"mostFrequentCategory"`
	MostFrequentHour     string         `json:"mostFrequentHour"`
	MostFrequentWeekday  string         `json:"mostFrequentWeekday"`
	RecentEntries        []RecentEntry  `json:"recentEntries"`
	CategoryFrequency    map[string]int `json:"categoryFrequency"`
}

// StatsService computes aggregate statistics over a user's entries.
type StatsService interface {
	// ProfileStats returns nil (not an error) when the user has no entries.
	ProfileStats(ctx context.Context, username string) (*Stats, error)
}

type statsService struct {
	entries repository.EntryRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(entries repository.EntryRepository) StatsService {
	return &statsService{entries: entries}
}

func (s *statsService) ProfileStats(ctx context.Context, username string) (*Stats, error) {
	entries, err := s.entries.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch entries: %v", apperrors.ErrUpstream, err)
	}
	return ComputeStats(entries), nil
}

// ComputeStats derives the full summary for one user's entries. Pure,
// recomputed on every call; nil when the set is empty.
func ComputeStats(entries []model.Entry) *Stats {
	if len(entries) == 0 {
		return nil
	}

	categories := make([]string, 0, len(entries))
	hours := make([]int, 0, len(entries))
	weekdays := make([]int, 0, len(entries))
	frequency := make(map[string]int)
	for _, e := range entries {
		categories = append(categories, e.PrimaryEmotion)
		hours = append(hours, e.CreatedAt.Hour())
		weekdays = append(weekdays, int(e.CreatedAt.Weekday()))
		frequency[e.PrimaryEmotion]++
	}

	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b model.Entry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	recent := make([]RecentEntry, 0, len(sorted))
	for _, e := range sorted {
		location := string(e.Region)
		if location == "" {
			location = "Unknown Location"
		}
		recent = append(recent, RecentEntry{
			Emotion:      e.PrimaryEmotion,
			Title:        e.Title,
			Description:  e.Description,
			DayRating:    e.DayRating,
			Mood:         e.Mood,
			CreatedAt:    e.CreatedAt.Format("1/2/2006"),
			LocationName: location,
		})
	}

	return &Stats{
		TotalEntries:         len(entries),
		UniqueCategories:     len(frequency),
		MostFrequentCategory: mostFrequent(categories),
		MostFrequentHour:     hourLabel(mostFrequent(hours)),
		MostFrequentWeekday:  time.Weekday(mostFrequent(weekdays)).String(),
		RecentEntries:        recent,
		CategoryFrequency:    frequency,
	}
}

// mostFrequent returns the value with the highest occurrence count. Exact
// ties go to the value that sorts last in the natural ordering.
func mostFrequent[T cmp.Ordered](values []T) T {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	var best T
	bestCount := 0
	for _, v := range slices.Sorted(maps.Keys(counts)) {
		if counts[v] >= bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

// hourLabel renders an hour of day the way profiles display it, e.g. "3 PM".
func hourLabel(hour int) string {
	return time.Date(2000, time.January, 1, hour, 0, 0, 0, time.UTC).Format("3 PM")
}
