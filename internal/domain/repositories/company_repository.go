package repositories

import (
	"context"

	"github.com/google/uuid"
	"cep.backend/internal/domain/entities"
)

// CompanyRepository defines company data operations
type CompanyRepository interface {
	Create(ctx context.Context, company *entities.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Company, int64, error)
	Update(ctx context.Context, company *entities.Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}
