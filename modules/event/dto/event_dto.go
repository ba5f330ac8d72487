package dto

import (
	"time"

	"guestdesk/modules/event/entity"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title         string `json:"title"`
	StartsAt      string `json:"starts_at"`
	Location      string `json:"location"`
	Description   string `json:"description"`
	StructureMode string `json:"structure_mode"`
	RSVPMode      string `json:"rsvp_mode"`
}

type UpdateEventRequest struct {
	Title         *string `json:"title"`
	StartsAt      *string `json:"starts_at"`
	Location      *string `json:"location"`
	Description   *string `json:"description"`
	CoverImageURL *string `json:"cover_image_url"`
	StructureMode *string `json:"structure_mode"`
	RSVPMode      *string `json:"rsvp_mode"`
}

type UpsertCustomFieldRequest struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Active *bool  `json:"active"`
}

type RenameCustomFieldRequest struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type EventResponse struct {
	ID            uuid.UUID               `json:"id"`
	Title         string                  `json:"title"`
	Slug          string                  `json:"slug"`
	StartsAt      *time.Time              `json:"starts_at"`
	Location      string                  `json:"location"`
	Description   string                  `json:"description"`
	CoverImageURL string                  `json:"cover_image_url"`
	StructureMode entity.StructureMode    `json:"structure_mode"`
	RSVPMode      entity.RSVPMode         `json:"rsvp_mode"`
	CustomFields  entity.CustomFieldsMeta `json:"custom_fields"`
	CreatedAt     time.Time               `json:"created_at"`
}

func ToEventResponse(e *entity.Event) EventResponse {
	return EventResponse{
		ID:            e.ID,
		Title:         e.Title,
		Slug:          e.Slug,
		StartsAt:      e.StartsAt,
		Location:      e.Location,
		Description:   e.Description,
		CoverImageURL: e.CoverImageURL,
		StructureMode: e.StructureMode,
		RSVPMode:      e.RSVPMode,
		CustomFields:  e.CustomFields,
		CreatedAt:     e.CreatedAt,
	}
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int             `json:"total"`
}
