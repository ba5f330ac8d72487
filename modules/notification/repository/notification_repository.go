package repository

import (
	"context"

	"guestdesk/core/database"
	"guestdesk/core/params"
	"guestdesk/modules/notification/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type NotificationRepository struct {
	db database.Database
}

func NewNotificationRepository(db database.Database) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (host_id, title, message, type, data, is_read, created_at, updated_at)
		VALUES (:host_id, :title, :message, :type, :data, :is_read, :created_at, :updated_at)
		RETURNING id`

	rows, err := r.db.NamedQueryContext(ctx, query, n)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&n.ID)
	}
	return nil
}

func (r *NotificationRepository) GetByHostID(ctx context.Context, hostID uuid.UUID, qp params.QueryParams) (*entity.PaginatedNotifications, error) {
	baseQuery := `FROM notifications WHERE host_id = $1`

	var totalItems int
	if err := r.db.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, hostID); err != nil {
		return nil, err
	}

	query := `
		SELECT * ` + baseQuery + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var notifications []entity.Notification
	if err := r.db.SelectContext(ctx, &notifications, query, hostID, qp.PageSize, qp.Offset()); err != nil {
		return nil, err
	}

	return &entity.PaginatedNotifications{
		Items:      notifications,
		TotalItems: totalItems,
		PageNumber: qp.PageNumber,
		PageSize:   qp.PageSize,
	}, nil
}

func (r *NotificationRepository) MarkAsRead(ctx context.Context, hostID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`UPDATE notifications SET is_read = TRUE WHERE host_id = ? AND id IN (?)`, hostID, ids)
	if err != nil {
		return err
	}
	query = r.db.SQLx().Rebind(query)
	return r.db.ExecContext(ctx, query, args...)
}

func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, hostID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE host_id = $1`
	return r.db.ExecContext(ctx, query, hostID)
}

func (r *NotificationRepository) CountUnread(ctx context.Context, hostID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE host_id = $1 AND is_read = FALSE`
	if err := r.db.GetContext(ctx, &count, query, hostID); err != nil {
		return 0, err
	}
	return count, nil
}
