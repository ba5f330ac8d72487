package tasks

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/hibiken/asynq"
)

// InviteDispatchPayload asks the worker to render a message for one guest
// and mark their invitation sent.
type InviteDispatchPayload struct {
	GuestID    uuid.UUID  `json:"guest_id"`
	TemplateID *uuid.UUID `json:"template_id,omitempty"`
}

func NewInviteDispatchTask(p InviteDispatchPayload) (*asynq.Task, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeInviteDispatch, data), nil
}

// TemplateUsagePayload bumps a template's usage counter, best effort.
type TemplateUsagePayload struct {
	TemplateID uuid.UUID `json:"template_id"`
}

func NewTemplateUsageTask(p TemplateUsagePayload) (*asynq.Task, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeTemplateUsageIncrement, data), nil
}
