package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"cep.backend/internal/domain/entities"
	domainerrors "cep.backend/internal/domain/errors"
	"cep.backend/internal/infrastructure/models"
	"cep.backend/pkg/utils"
)

// NotificationRepository implements outbox operations
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create enqueues a notification. Called inside the UnitOfWork that
// writes the triggering record so intent and record commit together.
func (r *NotificationRepository) Create(ctx context.Context, notification *entities.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = utils.GenerateUUIDv7()
	}
	if notification.Status == "" {
		notification.Status = entities.NotificationStatusPending
	}

	recipients, err := json.Marshal(notification.To)
	if err != nil {
		return err
	}

	m := &models.Notification{
		ID:         notification.ID,
		Kind:       string(notification.Kind),
		Recipients: string(recipients),
		Subject:    notification.Subject,
		Body:       notification.Body,
		Status:     string(notification.Status),
		Attempts:   notification.Attempts,
	}
	if notification.Calendar != nil {
		calendar, err := json.Marshal(notification.Calendar)
		if err != nil {
			return err
		}
		m.Calendar = string(calendar)
	}

	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	notification.CreatedAt = m.CreatedAt
	return nil
}

// GetPending returns up to limit pending notifications, oldest first
func (r *NotificationRepository) GetPending(ctx context.Context, limit int) ([]*entities.Notification, error) {
	var notificationModels []models.Notification
	query := GetDB(ctx, r.db).WithContext(ctx).
		Where("status = ?", string(entities.NotificationStatusPending)).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, err
	}

	notifications := make([]*entities.Notification, 0, len(notificationModels))
	for i := range notificationModels {
		n, err := notificationToEntity(&notificationModels[i])
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// MarkSent marks a notification as delivered
func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  string(entities.NotificationStatusSent),
			"sent_at": sentAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// MarkAttempt records a failed delivery attempt. The notification stays
// pending until attempts reach maxAttempts, then moves to failed.
func (r *NotificationRepository) MarkAttempt(ctx context.Context, id uuid.UUID, sendErr string, maxAttempts int) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var m models.Notification
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		return err
	}

	m.Attempts++
	status := entities.NotificationStatusPending
	if m.Attempts >= maxAttempts {
		status = entities.NotificationStatusFailed
	}

	return db.Model(&models.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"attempts":   m.Attempts,
			"last_error": sendErr,
			"status":     string(status),
		}).Error
}

// CountByStatus counts notifications in a given delivery state
func (r *NotificationRepository) CountByStatus(ctx context.Context, status entities.NotificationStatus) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Notification{}).
		Where("status = ?", string(status)).
		Count(&count).Error
	return count, err
}

func notificationToEntity(m *models.Notification) (*entities.Notification, error) {
	var recipients []string
	if err := json.Unmarshal([]byte(m.Recipients), &recipients); err != nil {
		return nil, err
	}

	n := &entities.Notification{
		ID:        m.ID,
		Kind:      entities.NotificationKind(m.Kind),
		To:        recipients,
		Subject:   m.Subject,
		Body:      m.Body,
		Status:    entities.NotificationStatus(m.Status),
		Attempts:  m.Attempts,
		LastError: m.LastError,
		CreatedAt: m.CreatedAt,
		SentAt:    m.SentAt,
	}
	if m.Calendar != "" {
		var event entities.CalendarEvent
		if err := json.Unmarshal([]byte(m.Calendar), &event); err != nil {
			return nil, err
		}
		n.Calendar = &event
	}
	return n, nil
}
