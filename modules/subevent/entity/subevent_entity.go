package entity

import (
	"time"

	coreEntity "guestdesk/core/entity"

	"github.com/google/uuid"
)

// SubEvent is one schedulable occasion inside an ENVELOPE event. IDs are
// numeric so guest assignment sets serialize compactly in list URLs.
type SubEvent struct {
	ID          int64      `db:"id" json:"id"`
	EventID     uuid.UUID  `db:"event_id" json:"event_id"`
	Title       string     `db:"title" json:"title"`
	StartsAt    *time.Time `db:"starts_at" json:"starts_at"`
	EndsAt      *time.Time `db:"ends_at" json:"ends_at"`
	Location    string     `db:"location" json:"location"`
	Description string     `db:"description" json:"description"`
	ImageURL    string     `db:"image_url" json:"image_url"`
	RSVPEnabled bool       `db:"rsvp_enabled" json:"rsvp_enabled"`
	Public      bool       `db:"public" json:"public"`
	coreEntity.BaseEntity
}
