package repositories

import (
	"context"

	"github.com/google/uuid"
	"cep.backend/internal/domain/entities"
)

// CandidateRepository defines candidate data operations
type CandidateRepository interface {
	Create(ctx context.Context, candidate *entities.Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Candidate, error)
	GetByEmail(ctx context.Context, email string) (*entities.Candidate, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Candidate, int64, error)
	Update(ctx context.Context, candidate *entities.Candidate) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CandidateStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
