package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"humanatlas/internal/config"
	"humanatlas/internal/db"
	"humanatlas/internal/model"
	"humanatlas/internal/repository"
)

const demoPassword = "atlas-demo"

type demoUser struct {
	username string
	region   model.Region
}

var demoUsers = []demoUser{
	{"wandering_cloud", model.RegionEurope},
	{"quiet-harbor", model.RegionAsia},
	{"morning_person", model.RegionNorthAmerica},
	{"southern-lights", model.RegionOceania},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Entry{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	users := repository.NewUserRepository(gormDB)
	entries := repository.NewEntryRepository(gormDB)
	ctx := context.Background()

	createdUsers, createdEntries, err := seed(ctx, users, entries)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", createdUsers)
	log.Printf("  - Entries created: %d", createdEntries)
	log.Printf("  - Demo password for all users: %q", demoPassword)
}

// seed creates the demo users and a spread of entries over the past weeks so
// profile statistics have something to chew on. Existing users are skipped.
func seed(ctx context.Context, users repository.UserRepository, entries repository.EntryRepository) (int, int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		return 0, 0, fmt.Errorf("hash demo password: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	createdUsers, createdEntries := 0, 0

	for _, du := range demoUsers {
		existing, err := users.FindByUsername(ctx, du.username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return createdUsers, createdEntries, fmt.Errorf("check user %s: %w", du.username, err)
		}
		if existing != nil {
			log.Printf("User %s already exists, skipping", du.username)
			continue
		}

		user := &model.User{
			Username:     du.username,
			PasswordHash: string(hash),
			Region:       du.region,
			LastLogin:    time.Now(),
		}
		if err := users.Create(ctx, user); err != nil {
			return createdUsers, createdEntries, fmt.Errorf("create user %s: %w", du.username, err)
		}
		createdUsers++

		// Entries spaced at least the rate-limit window apart, walking back in time.
		n := 5 + rng.Intn(10)
		at := time.Now().UTC().Add(-2 * time.Hour)
		for i := 0; i < n; i++ {
			entry := &model.Entry{
				Username:          du.username,
				Title:             fmt.Sprintf("Day %d in review", n-i),
				PrimaryEmotion:    model.EmotionCategories[rng.Intn(len(model.EmotionCategories))],
				Description:       "Seeded entry describing how the day unfolded.",
				DayRating:         1 + rng.Intn(10),
				Mood:              model.Moods[rng.Intn(len(model.Moods))],
				SignificantEvents: []string{},
				Region:            du.region,
				CreatedAt:         at,
			}
			if err := entries.Create(ctx, entry); err != nil {
				return createdUsers, createdEntries, fmt.Errorf("create entry for %s: %w", du.username, err)
			}
			createdEntries++
			at = at.Add(-time.Duration(2+rng.Intn(46)) * time.Hour)
		}

		for i := 0; i < n; i++ {
			if err := users.IncrementPostCount(ctx, du.username); err != nil {
				log.Printf("increment post count for %s: %v", du.username, err)
				break
			}
		}
	}

	return createdUsers, createdEntries, nil
}
