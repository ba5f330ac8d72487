package dto

import (
	"guestdesk/modules/guest/entity"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	Name             string            `json:"name"`
	PhoneCountryCode string            `json:"phone_country_code"`
	PhoneNumber      string            `json:"phone_number"`
	PhoneCountry     string            `json:"phone_country"`
	Email            string            `json:"email"`
	Relationship     string            `json:"relationship"`
	Notes            string            `json:"notes"`
	CustomFields     map[string]string `json:"custom_fields"`
	SubEventIDs      []int64           `json:"sub_event_ids"`
}

type UpdateGuestRequest struct {
	Name             *string            `json:"name"`
	PhoneCountryCode *string            `json:"phone_country_code"`
	PhoneNumber      *string            `json:"phone_number"`
	PhoneCountry     *string            `json:"phone_country"`
	Email            *string            `json:"email"`
	Relationship     *string            `json:"relationship"`
	Notes            *string            `json:"notes"`
	CustomFields     *map[string]string `json:"custom_fields"`
	RSVPGuestsCount  *int               `json:"rsvp_guests_count"`
}

// GuestListResponse carries the projected view plus everything the list
// page needs to render its controls: the normalized view state echoed
// back, its canonical query-string form, and the data-driven category
// dropdown values.
type GuestListResponse struct {
	Guests         []entity.Guest `json:"guests"`
	Removed        []entity.Guest `json:"removed"`
	Total          int            `json:"total"`
	VisibleTotal   int            `json:"visible_total"`
	Columns        []string       `json:"columns"`
	CategoryValues []string       `json:"category_values"`
	Query          string         `json:"query"`
}

type SetColumnsRequest struct {
	Columns []string `json:"columns"`
}

type BulkDispatchRequest struct {
	GuestIDs   []uuid.UUID `json:"guest_ids"`
	TemplateID *uuid.UUID  `json:"template_id"`
}

type BulkDispatchResponse struct {
	Queued  int         `json:"queued"`
	Skipped []uuid.UUID `json:"skipped,omitempty"`
}

// ImportRowError pinpoints one rejected CSV row.
type ImportRowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResponse summarizes a bulk import. Partial success is an accepted
// outcome, not an error state.
type ImportResponse struct {
	Imported int              `json:"imported"`
	Failed   int              `json:"failed"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}
