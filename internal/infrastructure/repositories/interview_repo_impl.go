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

// InterviewRepository implements interview data operations
type InterviewRepository struct {
	db *gorm.DB
}

// NewInterviewRepository creates a new interview repository
func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

// Create creates a new interview
func (r *InterviewRepository) Create(ctx context.Context, interview *entities.Interview) error {
	if interview.ID == uuid.Nil {
		interview.ID = utils.GenerateUUIDv7()
	}
	m := interviewToModel(interview)

	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	interview.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets an interview by ID
func (r *InterviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Interview, error) {
	var m models.Interview
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return interviewToEntity(&m), nil
}

// List lists interviews matching the filter, newest first.
// limit <= 0 returns everything.
func (r *InterviewRepository) List(ctx context.Context, filter entities.InterviewFilter, limit, offset int) ([]*entities.Interview, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Interview{})

	if filter.Status != "" {
		db = db.Where("status = ?", string(filter.Status))
	}
	if filter.Date != "" {
		db = db.Where("DATE(date) = ?", filter.Date)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var interviewModels []models.Interview
	if err := query.Find(&interviewModels).Error; err != nil {
		return nil, 0, err
	}

	interviews := make([]*entities.Interview, 0, len(interviewModels))
	for i := range interviewModels {
		interviews = append(interviews, interviewToEntity(&interviewModels[i]))
	}
	return interviews, total, nil
}

// Update replaces the mutable fields of an interview. The candidate and
// company references and their name snapshots stay as written at creation.
func (r *InterviewRepository) Update(ctx context.Context, interview *entities.Interview) error {
	updates := map[string]interface{}{
		"position":    interview.Position,
		"date":        interview.Date,
		"time":        interview.Time,
		"type":        string(interview.Type),
		"status":      string(interview.Status),
		"interviewer": interview.Interviewer,
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Interview{}).Where("id = ?", interview.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateStatus updates only the lifecycle status
func (r *InterviewRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.InterviewStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Interview{}).
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

// Delete hard-deletes an interview
func (r *InterviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Interview{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func interviewToModel(i *entities.Interview) *models.Interview {
	return &models.Interview{
		ID:            i.ID,
		CandidateID:   i.CandidateID,
		CandidateName: i.CandidateName,
		CompanyID:     i.CompanyID,
		CompanyName:   i.CompanyName,
		Position:      i.Position,
		Date:          i.Date,
		Time:          i.Time,
		Type:          string(i.Type),
		Status:        string(i.Status),
		Interviewer:   i.Interviewer,
		CreatedAt:     i.CreatedAt,
	}
}

func interviewToEntity(m *models.Interview) *entities.Interview {
	return &entities.Interview{
		ID:            m.ID,
		CandidateID:   m.CandidateID,
		CandidateName: m.CandidateName,
		CompanyID:     m.CompanyID,
		CompanyName:   m.CompanyName,
		Position:      m.Position,
		Date:          m.Date,
		Time:          m.Time,
		Type:          entities.InterviewType(m.Type),
		Status:        entities.InterviewStatus(m.Status),
		Interviewer:   m.Interviewer,
		CreatedAt:     m.CreatedAt,
	}
}
