package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"lingorelay/internal/config"
	"lingorelay/internal/db"
	apperrors "lingorelay/internal/errors"
	"lingorelay/internal/model"
	"lingorelay/internal/repository"
)

// Demo user seeded for local development.
const (
	demoEmail    = "demo@lingorelay.dev"
	demoPassword = "demo-password"
	demoName     = "Demo User"
)

var demoRecords = []model.TranslationRecord{
	{OwnerEmail: demoEmail, Original: "ciao", Translated: "hello", FromLang: "it", ToLang: "en"},
	{OwnerEmail: demoEmail, Original: "merci beaucoup", Translated: "thank you very much", FromLang: "fr", ToLang: "en"},
	{OwnerEmail: demoEmail, Original: "buenos días", Translated: "good morning", FromLang: "es", ToLang: "en"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.TranslationRecord{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	historyRepo := repository.NewHistoryRepository(gormDB)

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash demo password: %v", err)
	}

	user := &model.User{Email: demoEmail, PasswordHash: string(hash), Name: demoName}
	if err := userRepo.Create(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateEmail) {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Demo user %s already exists, skipping", demoEmail)
	} else {
		log.Printf("Created demo user %s (password %q)", demoEmail, demoPassword)
	}

	seeded := 0
	for i := range demoRecords {
		record := demoRecords[i]
		if err := historyRepo.Create(ctx, &record); err != nil {
			log.Printf("Skipping record %q: %v", record.Original, err)
			continue
		}
		seeded++
	}
	log.Printf("Seed complete: %d history records for %s", seeded, demoEmail)
}
