package entity

import (
	"time"

	"github.com/google/uuid"
)

// GuestStats is the per-guest engagement slice sampled by the poller.
type GuestStats struct {
	GuestID          uuid.UUID  `db:"id" json:"guest_id"`
	InviteViewsCount int        `db:"invite_views_count" json:"invite_views_count"`
	RSVPViewsCount   int        `db:"rsvp_views_count" json:"rsvp_views_count"`
	LastInviteView   *time.Time `db:"last_invite_view" json:"last_invite_view"`
	LastRSVPView     *time.Time `db:"last_rsvp_view" json:"last_rsvp_view"`
}

// Snapshot is one sampled engagement state for an event.
type Snapshot struct {
	EventID uuid.UUID                `json:"event_id"`
	TakenAt time.Time                `json:"taken_at"`
	Guests  map[uuid.UUID]GuestStats `json:"guests"`
}

// ChangeKind classifies what moved between two snapshots.
type ChangeKind string

const (
	ChangeInviteViewed ChangeKind = "invite_viewed"
	ChangeRSVPViewed   ChangeKind = "rsvp_viewed"
	ChangeRemoved      ChangeKind = "removed"
)

// Change is one detected difference between consecutive snapshots.
type Change struct {
	GuestID uuid.UUID  `json:"guest_id"`
	Kind    ChangeKind `json:"kind"`
}

// Summary is the aggregate view shown on the host dashboard.
type Summary struct {
	TotalGuests     int `db:"total_guests" json:"total_guests"`
	Confirmed       int `db:"confirmed" json:"confirmed"`
	Declined        int `db:"declined" json:"declined"`
	Maybe           int `db:"maybe" json:"maybe"`
	Unconfirmed     int `db:"unconfirmed" json:"unconfirmed"`
	InvitationsSent int `db:"invitations_sent" json:"invitations_sent"`
	InviteViews     int `db:"invite_views" json:"invite_views"`
	RSVPViews       int `db:"rsvp_views" json:"rsvp_views"`
	ExpectedGuests  int `db:"expected_guests" json:"expected_guests"`
	OtherGuests     int `db:"other_guests" json:"other_guests"`
}
