package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"cep.backend/internal/domain/entities"
)

// NotificationRepository defines outbox operations
type NotificationRepository interface {
	Create(ctx context.Context, notification *entities.Notification) error
	// GetPending returns up to limit pending notifications, oldest first
	GetPending(ctx context.Context, limit int) ([]*entities.Notification, error)
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
	// MarkAttempt records a failed delivery attempt; once attempts reach
	// maxAttempts the notification moves to failed
	MarkAttempt(ctx context.Context, id uuid.UUID, sendErr string, maxAttempts int) error
	CountByStatus(ctx context.Context, status entities.NotificationStatus) (int64, error)
}
