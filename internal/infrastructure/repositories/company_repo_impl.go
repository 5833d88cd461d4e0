package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"cep.backend/internal/domain/entities"
	domainerrors "cep.backend/internal/domain/errors"
	"cep.backend/internal/infrastructure/models"
	"cep.backend/pkg/utils"
)

// CompanyRepository implements company data operations
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create creates a new company
func (r *CompanyRepository) Create(ctx context.Context, company *entities.Company) error {
	if company.ID == uuid.Nil {
		company.ID = utils.GenerateUUIDv7()
	}
	m := companyToModel(company)

	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	company.CreatedAt = m.CreatedAt
	company.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a company by ID
func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Company, error) {
	var m models.Company
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return companyToEntity(&m), nil
}

// List lists companies, newest first. limit <= 0 returns everything.
func (r *CompanyRepository) List(ctx context.Context, limit, offset int) ([]*entities.Company, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.Company{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var companyModels []models.Company
	if err := query.Find(&companyModels).Error; err != nil {
		return nil, 0, err
	}

	companies := make([]*entities.Company, 0, len(companyModels))
	for i := range companyModels {
		companies = append(companies, companyToEntity(&companyModels[i]))
	}
	return companies, total, nil
}

// Update replaces the mutable fields of a company
func (r *CompanyRepository) Update(ctx context.Context, company *entities.Company) error {
	updates := map[string]interface{}{
		"name":      company.Name,
		"industry":  company.Industry,
		"location":  company.Location,
		"website":   company.Website,
		"poc_name":  company.POCName,
		"poc_email": company.POCEmail,
		"poc_phone": company.POCPhone,
		"active":    company.Active,
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Company{}).Where("id = ?", company.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes a company
func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Company{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func companyToModel(c *entities.Company) *models.Company {
	return &models.Company{
		ID:       c.ID,
		Name:     c.Name,
		Industry: c.Industry,
		Location: c.Location,
		Website:  c.Website,
		POCName:  c.POCName,
		POCEmail: c.POCEmail,
		POCPhone: c.POCPhone,
		Active:   c.Active,
	}
}

func companyToEntity(m *models.Company) *entities.Company {
	return &entities.Company{
		ID:        m.ID,
		Name:      m.Name,
		Industry:  m.Industry,
		Location:  m.Location,
		Website:   m.Website,
		POCName:   m.POCName,
		POCEmail:  m.POCEmail,
		POCPhone:  m.POCPhone,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
