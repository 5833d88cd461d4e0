package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"cep.backend/internal/domain/entities"
	domainerrors "cep.backend/internal/domain/errors"
	"cep.backend/internal/infrastructure/models"
	"cep.backend/pkg/utils"
)

// CandidateRepository implements candidate data operations
type CandidateRepository struct {
	db *gorm.DB
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

// isUniqueViolation matches duplicate-key errors across the postgres and
// sqlite drivers
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// Create creates a new candidate. A uniqueness violation on email maps
// to ErrAlreadyExists so concurrent creators see a clean conflict.
func (r *CandidateRepository) Create(ctx context.Context, candidate *entities.Candidate) error {
	if candidate.ID == uuid.Nil {
		candidate.ID = utils.GenerateUUIDv7()
	}
	m, err := candidateToModel(candidate)
	if err != nil {
		return err
	}

	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	candidate.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a candidate by ID
func (r *CandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Candidate, error) {
	var m models.Candidate
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return candidateToEntity(&m), nil
}

// GetByEmail gets a candidate by (lower-cased) email
func (r *CandidateRepository) GetByEmail(ctx context.Context, email string) (*entities.Candidate, error) {
	var m models.Candidate
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return candidateToEntity(&m), nil
}

// List lists candidates, newest first. limit <= 0 returns everything.
func (r *CandidateRepository) List(ctx context.Context, limit, offset int) ([]*entities.Candidate, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var total int64
	if err := db.Model(&models.Candidate{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var candidateModels []models.Candidate
	if err := query.Find(&candidateModels).Error; err != nil {
		return nil, 0, err
	}

	candidates := make([]*entities.Candidate, 0, len(candidateModels))
	for i := range candidateModels {
		candidates = append(candidates, candidateToEntity(&candidateModels[i]))
	}
	return candidates, total, nil
}

// Update replaces the mutable fields of a candidate
func (r *CandidateRepository) Update(ctx context.Context, candidate *entities.Candidate) error {
	m, err := candidateToModel(candidate)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"name":             m.Name,
		"email":            m.Email,
		"phone":            m.Phone,
		"position":         m.Position,
		"experience":       m.Experience,
		"status":           m.Status,
		"assigned_company": m.AssignedCompany,
		"interview_date":   m.InterviewDate,
		"skills":           m.Skills,
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Candidate{}).Where("id = ?", candidate.ID).Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus updates only the pipeline status
func (r *CandidateRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.CandidateStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Candidate{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes a candidate
func (r *CandidateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Candidate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func candidateToModel(c *entities.Candidate) (*models.Candidate, error) {
	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return nil, err
	}

	m := &models.Candidate{
		ID:         c.ID,
		Name:       c.Name,
		Email:      strings.ToLower(c.Email),
		Phone:      c.Phone,
		Position:   c.Position,
		Experience: c.Experience,
		Status:     string(c.Status),
		Skills:     string(skillsJSON),
		CreatedAt:  c.CreatedAt,
	}
	if c.AssignedCompany.Valid {
		companyID, err := uuid.Parse(c.AssignedCompany.String)
		if err != nil {
			return nil, domainerrors.ErrInvalidInput
		}
		m.AssignedCompany = &companyID
	}
	if c.InterviewDate.Valid {
		t := c.InterviewDate.Time
		m.InterviewDate = &t
	}
	if c.CreatedBy.Valid {
		creatorID, err := uuid.Parse(c.CreatedBy.String)
		if err != nil {
			return nil, domainerrors.ErrInvalidInput
		}
		m.CreatedBy = &creatorID
	}
	return m, nil
}

func candidateToEntity(m *models.Candidate) *entities.Candidate {
	var skills []string
	if err := json.Unmarshal([]byte(m.Skills), &skills); err != nil || skills == nil {
		skills = []string{}
	}

	c := &entities.Candidate{
		ID:         m.ID,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Position:   m.Position,
		Experience: m.Experience,
		Status:     entities.CandidateStatus(m.Status),
		Skills:     skills,
		CreatedAt:  m.CreatedAt,
	}
	if m.AssignedCompany != nil {
		c.AssignedCompany = null.StringFrom(m.AssignedCompany.String())
	}
	if m.InterviewDate != nil {
		c.InterviewDate = null.TimeFrom(*m.InterviewDate)
	}
	if m.CreatedBy != nil {
		c.CreatedBy = null.StringFrom(m.CreatedBy.String())
	}
	return c
}
