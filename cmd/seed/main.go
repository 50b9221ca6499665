// Command seed loads the development fixture data: two users with an empty
// profile each, one category and one habit apiece.
package main

import (
	"context"
	"log"

	"habitly/internal/auth"
	"habitly/internal/config"
	"habitly/internal/db"
	"habitly/internal/model"
	"habitly/internal/repository"
)

type fixture struct {
	email    string
	password string
	category model.Category
	habit    model.Habit
}

var fixtures = []fixture{
	{
		email:    "gabrielleynara@ymail.com",
		password: "gaby1234",
		category: model.Category{
			Name:        "Morning Routine",
			Description: "Habits related to morning routine",
		},
		habit: model.Habit{
			Name:    "Shower",
			Trigger: "Wake up",
			Outcome: "Starting the day fresh",
			Routine: "Every day",
		},
	},
	{
		email:    "gabrielle@ymail.com",
		password: "gaby1234",
		category: model.Category{
			Name:        "Bed Time",
			Description: "Habits related to bed routine",
		},
		habit: model.Habit{
			Name:    "Skin Care",
			Trigger: "Brush teeth",
			Outcome: "Improved self esteem",
			Routine: "Every day",
		},
	},
}

func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Category{},
		&model.Habit{},
		&model.PracticeTracker{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	habitRepo := repository.NewHabitRepository(gormDB)
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)

	ctx := context.Background()
	for _, f := range fixtures {
		if existing, err := userRepo.FindByEmail(ctx, f.email); err == nil && existing != nil {
			log.Printf("skipping %s: already seeded", f.email)
			continue
		}

		hashed, err := hasher.Hash(f.password)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}

		user := &model.User{
			EmailAddress: f.email,
			PasswordHash: hashed,
			Profile:      &model.Profile{},
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("seed user %s: %v", f.email, err)
		}

		category := f.category
		category.UserID = user.ID
		if err := categoryRepo.Create(ctx, &category); err != nil {
			log.Fatalf("seed category %s: %v", category.Name, err)
		}

		habit := f.habit
		habit.UserID = user.ID
		habit.CategoryID = category.ID
		if err := habitRepo.Create(ctx, &habit); err != nil {
			log.Fatalf("seed habit %s: %v", habit.Name, err)
		}

		log.Printf("seeded %s with category %q and habit %q", f.email, category.Name, habit.Name)
	}
}
