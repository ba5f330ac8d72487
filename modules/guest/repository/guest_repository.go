package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"guestdesk/core/database"
	"guestdesk/core/logger"
	"guestdesk/modules/guest/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const guestColumns = `
	id, event_id, public_code, name, phone_country_code, phone_number, phone_country,
	email, relationship, notes, custom_fields, rsvp_status, rsvp_will_attend,
	rsvp_guests_count, invitation_sent, invitation_sent_at, deleted, deleted_at,
	sub_event_invites, invite_views_count, rsvp_views_count, last_invite_view,
	last_rsvp_view, created_at, updated_at`

type GuestRepository struct {
	db database.Database
}

func NewGuestRepository(db database.Database) *GuestRepository {
	return &GuestRepository{db: db}
}

// Create creates a new guest
func (r *GuestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (event_id, public_code, name, phone_country_code, phone_number,
			phone_country, email, relationship, notes, custom_fields, rsvp_status,
			rsvp_will_attend, rsvp_guests_count, invitation_sent, sub_event_invites,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`
	now := time.Now()
	guest.CreatedAt = now
	guest.UpdatedAt = now

	customFields, err := guest.CustomFields.Value()
	if err != nil {
		logger.Error("GuestRepository:Create:CustomFieldsValue:Error:", err)
		return err
	}
	if guest.SubEventInvites == nil {
		guest.SubEventInvites = pq.Int64Array{}
	}

	row := r.db.QueryRowContext(ctx, query,
		guest.EventID,
		guest.PublicCode,
		guest.Name,
		guest.PhoneCountryCode,
		guest.PhoneNumber,
		guest.PhoneCountry,
		guest.Email,
		guest.Relationship,
		guest.Notes,
		customFields,
		guest.RSVPStatus,
		guest.RSVPWillAttend,
		guest.RSVPGuestsCount,
		guest.InvitationSent,
		guest.SubEventInvites,
		guest.CreatedAt,
		guest.UpdatedAt,
	)
	return row.Scan(&guest.ID)
}

// GetByID gets a guest by ID
func (r *GuestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`
	var guest entity.Guest
	err := r.db.GetContext(ctx, &guest, query, id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Error("GuestRepository:GetByID:Error:", err)
		}
		return nil, err
	}
	return &guest, nil
}

// GetByPublicCode gets a guest by their public invite code
func (r *GuestRepository) GetByPublicCode(ctx context.Context, code string) (*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE public_code = $1`
	var guest entity.Guest
	err := r.db.GetContext(ctx, &guest, query, code)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Error("GuestRepository:GetByPublicCode:Error:", err)
		}
		return nil, err
	}
	return &guest, nil
}

// ListByEvent lists all guests of an event, soft-deleted included; the
// projection pipeline splits them.
func (r *GuestRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE event_id = $1 ORDER BY created_at ASC`
	var guests []entity.Guest
	err := r.db.SelectContext(ctx, &guests, query, eventID)
	if err != nil {
		logger.Error("GuestRepository:ListByEvent:Error:", err)
		return nil, err
	}
	return guests, nil
}

// Update persists host-editable guest fields
func (r *GuestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	query := `
		UPDATE guests
		SET name = $1, phone_country_code = $2, phone_number = $3, phone_country = $4,
			email = $5, relationship = $6, notes = $7, custom_fields = $8,
			rsvp_guests_count = $9, updated_at = $10
		WHERE id = $11
	`
	guest.UpdatedAt = time.Now()
	customFields, err := guest.CustomFields.Value()
	if err != nil {
		logger.Error("GuestRepository:Update:CustomFieldsValue:Error:", err)
		return err
	}
	err = r.db.ExecContext(ctx, query,
		guest.Name,
		guest.PhoneCountryCode,
		guest.PhoneNumber,
		guest.PhoneCountry,
		guest.Email,
		guest.Relationship,
		guest.Notes,
		customFields,
		guest.RSVPGuestsCount,
		guest.UpdatedAt,
		guest.ID,
	)
	if err != nil {
		logger.Error("GuestRepository:Update:Error:", err)
		return err
	}
	return nil
}

// SetDeleted flips the soft-delete flag; removal never hard-deletes.
func (r *GuestRepository) SetDeleted(ctx context.Context, id uuid.UUID, deleted bool) error {
	query := `
		UPDATE guests
		SET deleted = $1,
			deleted_at = CASE WHEN $1 THEN NOW() ELSE NULL END,
			updated_at = NOW()
		WHERE id = $2
	`
	err := r.db.ExecContext(ctx, query, deleted, id)
	if err != nil {
		logger.Error("GuestRepository:SetDeleted:Error:", err)
		return err
	}
	return nil
}

// SetInvitationSent records the invite-dispatched flag and timestamp
func (r *GuestRepository) SetInvitationSent(ctx context.Context, id uuid.UUID, sent bool) error {
	query := `
		UPDATE guests
		SET invitation_sent = $1,
			invitation_sent_at = CASE WHEN $1 THEN NOW() ELSE NULL END,
			updated_at = NOW()
		WHERE id = $2
	`
	err := r.db.ExecContext(ctx, query, sent, id)
	if err != nil {
		logger.Error("GuestRepository:SetInvitationSent:Error:", err)
		return err
	}
	return nil
}

// UpdateRSVP records an RSVP answer and optional headcount
func (r *GuestRepository) UpdateRSVP(ctx context.Context, id uuid.UUID, answer entity.RSVPAnswer, guestsCount *int) error {
	query := `
		UPDATE guests
		SET rsvp_status = $1, rsvp_guests_count = $2, updated_at = NOW()
		WHERE id = $3
	`
	err := r.db.ExecContext(ctx, query, answer, guestsCount, id)
	if err != nil {
		logger.Error("GuestRepository:UpdateRSVP:Error:", err)
		return err
	}
	return nil
}

// SetSubEventInvites replaces a guest's assignment set
func (r *GuestRepository) SetSubEventInvites(ctx context.Context, id uuid.UUID, subEventIDs pq.Int64Array) error {
	query := `UPDATE guests SET sub_event_invites = $1, updated_at = NOW() WHERE id = $2`
	err := r.db.ExecContext(ctx, query, subEventIDs, id)
	if err != nil {
		logger.Error("GuestRepository:SetSubEventInvites:Error:", err)
		return err
	}
	return nil
}

// ExistingIDs returns which of the candidate guest IDs belong to the event
// and are not soft-deleted. Bulk operations use it to separate valid
// targets from stale selections.
func (r *GuestRepository) ExistingIDs(ctx context.Context, eventID uuid.UUID, candidates []uuid.UUID) (map[uuid.UUID]bool, error) {
	if len(candidates) == 0 {
		return map[uuid.UUID]bool{}, nil
	}
	ids := make([]string, len(candidates))
	for i, id := range candidates {
		ids[i] = id.String()
	}
	query := `SELECT id FROM guests WHERE event_id = $1 AND deleted = FALSE AND id = ANY($2)`
	var found []uuid.UUID
	err := r.db.SelectContext(ctx, &found, query, eventID, pq.Array(ids))
	if err != nil {
		logger.Error("GuestRepository:ExistingIDs:Error:", err)
		return nil, err
	}
	existing := make(map[uuid.UUID]bool, len(found))
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}
