package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"cep.backend/internal/config"
	"cep.backend/internal/domain/entities"
	"cep.backend/internal/domain/repositories"
	"cep.backend/internal/infrastructure/calendar"
	"cep.backend/internal/infrastructure/mail"
	"cep.backend/pkg/logger"
)

var outboxDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "cep_outbox_notifications",
		Help: "Notification outbox depth by status.",
	},
	[]string{"status"},
)

// NotificationDispatcher drains the notification outbox. Sends are
// at-least-once: a row stays pending until delivery succeeds or the
// attempt budget is spent, so a crash between send and MarkSent can
// produce a duplicate email but never a lost one.
type NotificationDispatcher struct {
	repo        repositories.NotificationRepository
	sender      mail.Sender
	interval    time.Duration
	batchSize   int
	maxAttempts int
	stop        chan struct{}
}

// NewNotificationDispatcher creates a new dispatcher
func NewNotificationDispatcher(repo repositories.NotificationRepository, sender mail.Sender, cfg config.OutboxConfig) *NotificationDispatcher {
	return &NotificationDispatcher{
		repo:        repo,
		sender:      sender,
		interval:    cfg.PollInterval,
		batchSize:   cfg.BatchSize,
		maxAttempts: cfg.MaxAttempts,
		stop:        make(chan struct{}),
	}
}

// Start runs the poll loop until the context is cancelled or Stop is called
func (d *NotificationDispatcher) Start(ctx context.Context) {
	logger.Info(ctx, "Starting notification dispatcher", zap.Duration("interval", d.interval))

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Notification dispatcher stopped (context cancelled)")
			return
		case <-d.stop:
			logger.Info(ctx, "Notification dispatcher stopped")
			return
		case <-ticker.C:
			d.processPending(ctx)
		}
	}
}

// Stop signals the poll loop to exit
func (d *NotificationDispatcher) Stop() {
	close(d.stop)
}

func (d *NotificationDispatcher) processPending(ctx context.Context) {
	d.observeDepth(ctx)

	pending, err := d.repo.GetPending(ctx, d.batchSize)
	if err != nil {
		logger.Error(ctx, "Failed to fetch pending notifications", zap.Error(err))
		return
	}
	if len(pending) == 0 {
		return
	}

	logger.Debug(ctx, "Processing pending notifications", zap.Int("count", len(pending)))

	for _, n := range pending {
		if err := d.deliver(n); err != nil {
			logger.Warn(ctx, "Notification delivery failed",
				zap.String("id", n.ID.String()),
				zap.String("kind", string(n.Kind)),
				zap.Int("attempts", n.Attempts+1),
				zap.Error(err),
			)
			if markErr := d.repo.MarkAttempt(ctx, n.ID, err.Error(), d.maxAttempts); markErr != nil {
				logger.Error(ctx, "Failed to record delivery attempt", zap.Error(markErr))
			}
			continue
		}

		if err := d.repo.MarkSent(ctx, n.ID, time.Now()); err != nil {
			logger.Error(ctx, "Failed to mark notification sent", zap.Error(err))
		}
	}
}

func (d *NotificationDispatcher) observeDepth(ctx context.Context) {
	for _, status := range []entities.NotificationStatus{
		entities.NotificationStatusPending,
		entities.NotificationStatusFailed,
	} {
		count, err := d.repo.CountByStatus(ctx, status)
		if err != nil {
			logger.Debug(ctx, "Failed to count outbox notifications", zap.String("status", string(status)), zap.Error(err))
			continue
		}
		outboxDepth.WithLabelValues(string(status)).Set(float64(count))
	}
}

func (d *NotificationDispatcher) deliver(n *entities.Notification) error {
	msg := &mail.Message{
		To:      n.To,
		Subject: n.Subject,
		HTML:    n.Body,
	}

	if n.Calendar != nil {
		invite, err := calendar.BuildInvite(n.Calendar)
		if err != nil {
			return fmt.Errorf("build calendar invite: %w", err)
		}
		msg.Attachment = &mail.Attachment{
			Filename: "interview.ics",
			MIMEType: calendar.ICSMIMEType,
			Content:  invite,
		}
	}

	return d.sender.Send(msg)
}
