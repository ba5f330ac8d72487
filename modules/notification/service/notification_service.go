package service

import (
	"context"
	"time"

	coreEntity "guestdesk/core/entity"
	appErrors "guestdesk/core/errors"
	"guestdesk/core/logger"
	"guestdesk/core/params"
	"guestdesk/modules/notification/entity"
	"guestdesk/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

// Notify records a console notification for a host. Failures are logged
// and swallowed: a lost notification never fails the action it announces.
func (s *NotificationService) Notify(ctx context.Context, hostID uuid.UUID, title, message, kind string, data map[string]interface{}) {
	n := &entity.Notification{
		HostID:  hostID,
		Title:   title,
		Message: message,
		Type:    kind,
		Data:    coreEntity.JSONB(data),
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	if err := s.repo.Create(ctx, n); err != nil {
		logger.Warn("NotificationService:Notify:Failed", "host_id", hostID, "type", kind, "error", err)
	}
}

func (s *NotificationService) List(ctx context.Context, hostID uuid.UUID, qp params.QueryParams) (*entity.PaginatedNotifications, error) {
	page, err := s.repo.GetByHostID(ctx, hostID, qp)
	if err != nil {
		return nil, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to list notifications", err)
	}
	return page, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, hostID uuid.UUID, ids []uuid.UUID) error {
	if err := s.repo.MarkAsRead(ctx, hostID, ids); err != nil {
		return appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to mark notifications read", err)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, hostID uuid.UUID) error {
	if err := s.repo.MarkAllAsRead(ctx, hostID); err != nil {
		return appErrors.NewAppError(appErrors.ErrUpdateFailed, "failed to mark notifications read", err)
	}
	return nil
}

func (s *NotificationService) CountUnread(ctx context.Context, hostID uuid.UUID) (int, error) {
	count, err := s.repo.CountUnread(ctx, hostID)
	if err != nil {
		return 0, appErrors.NewAppError(appErrors.ErrGetFailed, "failed to count notifications", err)
	}
	return count, nil
}
