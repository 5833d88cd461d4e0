package repositories

import (
	"context"

	"github.com/google/uuid"
	"cep.backend/internal/domain/entities"
)

// InterviewRepository defines interview data operations
type InterviewRepository interface {
	Create(ctx context.Context, interview *entities.Interview) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error)
	List(ctx context.Context, filter entities.InterviewFilter, limit, offset int) ([]*entities.Interview, int64, error)
	Update(ctx context.Context, interview *entities.Interview) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InterviewStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}
