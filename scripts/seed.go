package main

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartrecruit/api/internal/config"
	"smartrecruit/api/internal/models"
	"smartrecruit/api/internal/repositories"
)

// Seeds one user per role and prints their API tokens. Intended for local
// development only.
func main() {
	log.Println("🚀 Seeding sample users...")

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)

	samples := []models.User{
		{
			Username: "admin",
			Email:    "admin@smartrecruit.local",
			Role:     models.RoleAdmin,
		},
		{
			Username: "recruteur1",
			Email:    "recruteur1@smartrecruit.local",
			Role:     models.RoleRecruiter,
		},
		{
			Username: "candidat1",
			Email:    "candidat1@smartrecruit.local",
			Role:     models.RoleCandidate,
		},
	}

	for i := range samples {
		user := &samples[i]
		user.ID = uuid.New()
		user.APIToken = strings.ReplaceAll(uuid.New().String()+uuid.New().String(), "-", "")
		user.CreatedAt = time.Now()
		user.UpdatedAt = time.Now()

		if err := userRepo.Create(user); err != nil {
			log.Printf("⚠️  Skipping %s: %v\n", user.Username, err)
			continue
		}

		log.Printf("✅ Created %s (%s)\n", user.Username, user.Role)
		log.Printf("   API token: %s\n", user.APIToken)
	}

	log.Println("✅ Seeding complete")
}
