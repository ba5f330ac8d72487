package dto

import (
	"guestdesk/modules/template/entity"

	"github.com/google/uuid"
)

type CreateTemplateRequest struct {
	Name      string `json:"name"`
	Body      string `json:"body"`
	IsDefault bool   `json:"is_default"`
}

type UpdateTemplateRequest struct {
	Name      *string `json:"name"`
	Body      *string `json:"body"`
	IsDefault *bool   `json:"is_default"`
}

type TemplateListResponse struct {
	Templates []entity.Template `json:"templates"`
	Total     int               `json:"total"`
}

// PreviewRequest names the guest whose data fills the placeholders.
type PreviewRequest struct {
	GuestID uuid.UUID `json:"guest_id"`
}

// PreviewResponse is the rendered body plus a ready-to-open wa.me link.
type PreviewResponse struct {
	Body        string `json:"body"`
	WhatsAppURL string `json:"whatsapp_url"`
}
