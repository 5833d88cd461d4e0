package usecases

import (
	"context"

	"github.com/google/uuid"
	"cep.backend/internal/domain/entities"
	"cep.backend/internal/domain/repositories"
)

// CompanyUsecase handles company business logic
type CompanyUsecase struct {
	companyRepo repositories.CompanyRepository
}

// NewCompanyUsecase creates a new company usecase
func NewCompanyUsecase(companyRepo repositories.CompanyRepository) *CompanyUsecase {
	return &CompanyUsecase{companyRepo: companyRepo}
}

// Create creates a company; active defaults to true
func (u *CompanyUsecase) Create(ctx context.Context, input *entities.CompanyInput) (*entities.Company, error) {
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	company := &entities.Company{
		Name:     input.Name,
		Industry: input.Industry,
		Location: input.Location,
		Website:  input.Website,
		POCName:  input.POCName,
		POCEmail: input.POCEmail,
		POCPhone: input.POCPhone,
		Active:   active,
	}

	if err := u.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetByID gets a company by ID
func (u *CompanyUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	return u.companyRepo.GetByID(ctx, id)
}

// List lists companies
func (u *CompanyUsecase) List(ctx context.Context, limit, offset int) ([]*entities.Company, int64, error) {
	return u.companyRepo.List(ctx, limit, offset)
}

// Update replaces a company's fields
func (u *CompanyUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.CompanyInput) (*entities.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = input.Name
	company.Industry = input.Industry
	company.Location = input.Location
	company.Website = input.Website
	company.POCName = input.POCName
	company.POCEmail = input.POCEmail
	company.POCPhone = input.POCPhone
	if input.Active != nil {
		company.Active = *input.Active
	}

	if err := u.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete hard-deletes a company
func (u *CompanyUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.companyRepo.Delete(ctx, id)
}
