package repositories

import (
	"context"

	"github.com/google/uuid"
	"cep.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// OtpRepository defines password reset code operations
type OtpRepository interface {
	// Upsert stores a code for the email, replacing any outstanding one
	Upsert(ctx context.Context, otp *entities.Otp) error
	GetByEmail(ctx context.Context, email string) (*entities.Otp, error)
	Delete(ctx context.Context, email string) error
}
