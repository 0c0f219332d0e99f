package main

import (
	"log"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/ami-meeting-svc/internal/domain/entities"
	"github.com/johnquangdev/ami-meeting-svc/internal/infrastructure/database"
	"github.com/johnquangdev/ami-meeting-svc/internal/usecase/auth"
	"github.com/johnquangdev/ami-meeting-svc/pkg/config"
)

func main() {
	log.Println("🚀 Starting test users creation...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Define test users
	testUsers := []struct {
		Username string
		Email    string
		Password string
	}{
		{Username: "alice", Email: "alice@test.local", Password: "alice-password"},
		{Username: "bob", Email: "bob@test.local", Password: "bob-password"},
		{Username: "charlie", Email: "charlie@test.local", Password: "charlie-password"},
	}

	log.Println("🗑️  Cleaning up existing test users...")
	db.Where("email LIKE ?", "%@test.local").Delete(&entities.User{})

	log.Println("🔑 Creating test users...")

	for _, testUser := range testUsers {
		hash, err := auth.HashPassword(testUser.Password)
		if err != nil {
			log.Printf("❌ Failed to hash password for %s: %v", testUser.Username, err)
			continue
		}

		user := &entities.User{
			ID:           uuid.New(),
			Username:     testUser.Username,
			Email:        testUser.Email,
			PasswordHash: hash,
		}

		if err := db.Create(user).Error; err != nil {
			log.Printf("❌ Failed to create user %s: %v", testUser.Username, err)
			continue
		}

		log.Printf("✅ Created %s (%s) with password %q", testUser.Username, testUser.Email, testUser.Password)
	}

	log.Println("🎉 Done")
}
