package entity

import (
	coreEntity "guestdesk/core/entity"

	"github.com/google/uuid"
)

// Template is a reusable WhatsApp message body with placeholders. The body
// may reference {{name}}, {{event_title}}, {{invite_link}} and
// {{rsvp_link}}; unknown placeholders are left untouched so the host can
// see the typo in the preview.
type Template struct {
	ID         uuid.UUID `db:"id" json:"id"`
	EventID    uuid.UUID `db:"event_id" json:"event_id"`
	Name       string    `db:"name" json:"name"`
	Body       string    `db:"body" json:"body"`
	IsDefault  bool      `db:"is_default" json:"is_default"`
	UsageCount int       `db:"usage_count" json:"usage_count"`
	coreEntity.BaseEntity
}
