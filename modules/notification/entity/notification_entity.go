package entity

import (
	coreEntity "guestdesk/core/entity"

	"github.com/google/uuid"
)

// Notification kinds surfaced on the host console.
const (
	TypeImportFinished    = "import_finished"
	TypeDispatchCompleted = "dispatch_completed"
	TypeAnalyticsChanged  = "analytics_changed"
)

type Notification struct {
	ID      uuid.UUID        `db:"id" json:"id"`
	HostID  uuid.UUID        `db:"host_id" json:"host_id"`
	Title   string           `db:"title" json:"title"`
	Message string           `db:"message" json:"message"`
	Type    string           `db:"type" json:"type"`
	Data    coreEntity.JSONB `db:"data" json:"data"`
	IsRead  bool             `db:"is_read" json:"is_read"`
	coreEntity.BaseEntity
}

type PaginatedNotifications = coreEntity.Pagination[Notification]
