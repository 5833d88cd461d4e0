package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"cep.backend/internal/domain/entities"
	domainerrors "cep.backend/internal/domain/errors"
	"cep.backend/internal/infrastructure/models"
)

// OtpRepository implements password reset code operations
type OtpRepository struct {
	db *gorm.DB
}

// NewOtpRepository creates a new otp repository
func NewOtpRepository(db *gorm.DB) *OtpRepository {
	return &OtpRepository{db: db}
}

// Upsert stores a code for the email, replacing any outstanding one
func (r *OtpRepository) Upsert(ctx context.Context, otp *entities.Otp) error {
	m := &models.Otp{
		Email:     otp.Email,
		Code:      otp.Code,
		ExpiresAt: otp.ExpiresAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at", "updated_at"}),
		}).
		Create(m).Error
}

// GetByEmail gets the outstanding code for an email
func (r *OtpRepository) GetByEmail(ctx context.Context, email string) (*entities.Otp, error) {
	var m models.Otp
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.Otp{
		Email:     m.Email,
		Code:      m.Code,
		ExpiresAt: m.ExpiresAt,
	}, nil
}

// Delete removes the code for an email (single use)
func (r *OtpRepository) Delete(ctx context.Context, email string) error {
	return GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Otp{}, "email = ?", email).Error
}
