package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cep.backend/internal/config"
	"cep.backend/internal/domain/entities"
	domainerrors "cep.backend/internal/domain/errors"
	"cep.backend/internal/infrastructure/models"
	"cep.backend/internal/infrastructure/repositories"
	"cep.backend/pkg/crypto"
)

type seedUser struct {
	Name     string
	Email    string
	Password string
	Role     entities.UserRole
}

var seedUsers = []seedUser{
	{Name: "Admin User", Email: "admin@cep.com", Password: "admin@123", Role: entities.UserRoleAdmin},
	{Name: "Recruiter User", Email: "recruiter@cep.com", Password: "recruiter123", Role: entities.UserRoleRecruiter},
	{Name: "TechCorp HR", Email: "hr@techcorp.com", Password: "hr@123", Role: entities.UserRoleCompany},
	{Name: "Sourav Candidate", Email: "candidate@email.com", Password: "123@sou", Role: entities.UserRoleCandidate},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.Database.URL(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := models.Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	ctx := context.Background()
	userRepo := repositories.NewUserRepository(db)

	for _, su := range seedUsers {
		if _, err := userRepo.GetByEmail(ctx, su.Email); err == nil {
			log.Printf("⏭  %s already exists, skipping", su.Email)
			continue
		} else if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}

		hash, err := crypto.HashPassword(su.Password)
		if err != nil {
			return err
		}

		user := &entities.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: hash,
			Role:         su.Role,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to seed %s: %w", su.Email, err)
		}
		log.Printf("✅ Seeded %s (%s)", su.Email, su.Role)
	}

	log.Println("🌱 Seeding complete")
	return nil
}
