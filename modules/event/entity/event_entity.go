package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	coreEntity "guestdesk/core/entity"

	"github.com/google/uuid"
)

type StructureMode string

const (
	// StructureSimple is a single-occasion event.
	StructureSimple StructureMode = "SIMPLE"
	// StructureEnvelope wraps multiple schedulable sub-events.
	StructureEnvelope StructureMode = "ENVELOPE"
)

type RSVPMode string

const (
	// RSVPPerSubEvent collects a separate answer per sub-event.
	RSVPPerSubEvent RSVPMode = "PER_SUBEVENT"
	// RSVPOneTapAll applies one answer to every sub-event the guest is
	// invited to.
	RSVPOneTapAll RSVPMode = "ONE_TAP_ALL"
)

// CustomFieldMeta describes one host-defined guest field. Inactive fields
// stay in the map so stored guest values survive deactivation.
type CustomFieldMeta struct {
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type CustomFieldsMeta map[string]CustomFieldMeta

func (m CustomFieldsMeta) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(map[string]CustomFieldMeta{})
	}
	return json.Marshal(m)
}

func (m *CustomFieldsMeta) Scan(value interface{}) error {
	if value == nil {
		*m = CustomFieldsMeta{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, m)
}

// ActiveKeys returns the keys currently valid for filters, columns and
// forms, sorted order is up to the caller.
func (m CustomFieldsMeta) ActiveKeys() []string {
	keys := make([]string, 0, len(m))
	for k, meta := range m {
		if meta.Active {
			keys = append(keys, k)
		}
	}
	return keys
}

type Event struct {
	ID            uuid.UUID        `db:"id" json:"id"`
	HostID        uuid.UUID        `db:"host_id" json:"host_id"`
	Title         string           `db:"title" json:"title"`
	Slug          string           `db:"slug" json:"slug"`
	StartsAt      *time.Time       `db:"starts_at" json:"starts_at"`
	Location      string           `db:"location" json:"location"`
	Description   string           `db:"description" json:"description"`
	CoverImageURL string           `db:"cover_image_url" json:"cover_image_url"`
	StructureMode StructureMode    `db:"structure_mode" json:"structure_mode"`
	RSVPMode      RSVPMode         `db:"rsvp_mode" json:"rsvp_mode"`
	CustomFields  CustomFieldsMeta `db:"custom_fields" json:"custom_fields"`
	coreEntity.BaseEntity
}
