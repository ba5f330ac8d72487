package entity

import (
	"time"

	guestEntity "guestdesk/modules/guest/entity"

	"github.com/google/uuid"
)

// SubEventRSVP is one guest's answer for one sub-event of an ENVELOPE
// event. ONE_TAP_ALL events fan a single answer out into one row per
// assigned sub-event.
type SubEventRSVP struct {
	ID          int64                  `db:"id" json:"id"`
	GuestID     uuid.UUID              `db:"guest_id" json:"guest_id"`
	SubEventID  int64                  `db:"sub_event_id" json:"sub_event_id"`
	Answer      guestEntity.RSVPAnswer `db:"answer" json:"answer"`
	GuestsCount *int                   `db:"guests_count" json:"guests_count"`
	RespondedAt time.Time              `db:"responded_at" json:"responded_at"`
}

// GuestSubEventAnswer is a sub-event answer joined with the sub-event's
// title, as shown on the guest detail panel.
type GuestSubEventAnswer struct {
	SubEventID    int64                  `db:"sub_event_id" json:"sub_event_id"`
	SubEventTitle string                 `db:"sub_event_title" json:"sub_event_title"`
	Answer        guestEntity.RSVPAnswer `db:"answer" json:"answer"`
	RespondedAt   time.Time              `db:"responded_at" json:"responded_at"`
}
