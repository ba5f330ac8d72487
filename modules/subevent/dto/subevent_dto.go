package dto

import (
	"guestdesk/modules/subevent/entity"

	"github.com/google/uuid"
)

type CreateSubEventRequest struct {
	Title       string `json:"title"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	RSVPEnabled *bool  `json:"rsvp_enabled"`
	Public      *bool  `json:"public"`
}

type UpdateSubEventRequest struct {
	Title       *string `json:"title"`
	StartsAt    *string `json:"starts_at"`
	EndsAt      *string `json:"ends_at"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	RSVPEnabled *bool   `json:"rsvp_enabled"`
	Public      *bool   `json:"public"`
}

type SubEventListResponse struct {
	SubEvents []entity.SubEvent `json:"sub_events"`
	Total     int               `json:"total"`
}

type BulkAssignRequest struct {
	GuestIDs    []uuid.UUID `json:"guest_ids"`
	SubEventIDs []int64     `json:"sub_event_ids"`
}

// BulkAssignResponse reports partial-success counts. Skipped lists guest
// IDs that were not part of the event's current guest list; they are
// reported rather than silently dropped so stale selections stay visible.
type BulkAssignResponse struct {
	Assigned int         `json:"assigned"`
	Skipped  []uuid.UUID `json:"skipped,omitempty"`
	Failed   []uuid.UUID `json:"failed,omitempty"`
}
