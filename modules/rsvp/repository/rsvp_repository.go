package repository

import (
	"context"
	"time"

	"guestdesk/core/database"
	"guestdesk/core/logger"
	guestEntity "guestdesk/modules/guest/entity"
	"guestdesk/modules/rsvp/entity"

	"github.com/google/uuid"
)

type RSVPRepository struct {
	db database.Database
}

func NewRSVPRepository(db database.Database) *RSVPRepository {
	return &RSVPRepository{db: db}
}

// UpsertSubEventRSVP records or replaces one guest's answer for one
// sub-event.
func (r *RSVPRepository) UpsertSubEventRSVP(ctx context.Context, rsvp *entity.SubEventRSVP) error {
	query := `
		INSERT INTO sub_event_rsvps (guest_id, sub_event_id, answer, guests_count, responded_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (guest_id, sub_event_id)
		DO UPDATE SET answer = EXCLUDED.answer, guests_count = EXCLUDED.guests_count,
			responded_at = EXCLUDED.responded_at
	`
	rsvp.RespondedAt = time.Now()
	err := r.db.ExecContext(ctx, query,
		rsvp.GuestID,
		rsvp.SubEventID,
		rsvp.Answer,
		rsvp.GuestsCount,
		rsvp.RespondedAt,
	)
	if err != nil {
		logger.Error("RSVPRepository:UpsertSubEventRSVP:Error:", err)
		return err
	}
	return nil
}

// AnswersByGuest returns a guest's sub-event answers joined with resolved
// sub-event titles.
func (r *RSVPRepository) AnswersByGuest(ctx context.Context, guestID uuid.UUID) ([]entity.GuestSubEventAnswer, error) {
	query := `
		SELECT r.sub_event_id, s.title AS sub_event_title, r.answer, r.responded_at
		FROM sub_event_rsvps r
		JOIN sub_events s ON s.id = r.sub_event_id
		WHERE r.guest_id = $1
		ORDER BY s.starts_at ASC NULLS LAST, s.id ASC
	`
	var answers []entity.GuestSubEventAnswer
	err := r.db.SelectContext(ctx, &answers, query, guestID)
	if err != nil {
		logger.Error("RSVPRepository:AnswersByGuest:Error:", err)
		return nil, err
	}
	return answers, nil
}

// AttendingCountsByEvent counts, per guest, sub-events answered "yes" that
// still resolve to a titled sub-event. Feeds the sub_events_attending sort
// key.
func (r *RSVPRepository) AttendingCountsByEvent(ctx context.Context, eventID uuid.UUID) (map[uuid.UUID]int, error) {
	query := `
		SELECT r.guest_id, COUNT(*) AS attending
		FROM sub_event_rsvps r
		JOIN sub_events s ON s.id = r.sub_event_id
		JOIN guests g ON g.id = r.guest_id
		WHERE g.event_id = $1 AND r.answer = $2 AND s.title <> ''
		GROUP BY r.guest_id
	`
	rows, err := r.db.QueryContext(ctx, query, eventID, guestEntity.RSVPYes)
	if err != nil {
		logger.Error("RSVPRepository:AttendingCountsByEvent:Error:", err)
		return nil, err
	}
	defer rows.Close()

	counts := map[uuid.UUID]int{}
	for rows.Next() {
		var guestID uuid.UUID
		var attending int
		if err := rows.Scan(&guestID, &attending); err != nil {
			logger.Error("RSVPRepository:AttendingCountsByEvent:Scan:Error:", err)
			return nil, err
		}
		counts[guestID] = attending
	}
	return counts, rows.Err()
}

// CreateOtherGuest records a self-registered RSVP submitter.
func (r *RSVPRepository) CreateOtherGuest(ctx context.Context, og *guestEntity.OtherGuest) error {
	query := `
		INSERT INTO other_guests (event_id, name, phone, source, will_attend, guests_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	now := time.Now()
	og.CreatedAt = now
	og.UpdatedAt = now
	row := r.db.QueryRowContext(ctx, query,
		og.EventID,
		og.Name,
		og.Phone,
		og.Source,
		og.WillAttend,
		og.GuestsCount,
		og.CreatedAt,
		og.UpdatedAt,
	)
	return row.Scan(&og.ID)
}

// ListOtherGuests lists self-registered guests of an event, soft-deleted
// included.
func (r *RSVPRepository) ListOtherGuests(ctx context.Context, eventID uuid.UUID) ([]guestEntity.OtherGuest, error) {
	query := `
		SELECT id, event_id, name, phone, source, will_attend, guests_count, deleted, deleted_at,
			created_at, updated_at
		FROM other_guests
		WHERE event_id = $1
		ORDER BY created_at DESC
	`
	var guests []guestEntity.OtherGuest
	err := r.db.SelectContext(ctx, &guests, query, eventID)
	if err != nil {
		logger.Error("RSVPRepository:ListOtherGuests:Error:", err)
		return nil, err
	}
	return guests, nil
}

// GetOtherGuest fetches one self-registered guest.
func (r *RSVPRepository) GetOtherGuest(ctx context.Context, id uuid.UUID) (*guestEntity.OtherGuest, error) {
	query := `
		SELECT id, event_id, name, phone, source, will_attend, guests_count, deleted, deleted_at,
			created_at, updated_at
		FROM other_guests
		WHERE id = $1
	`
	var og guestEntity.OtherGuest
	if err := r.db.GetContext(ctx, &og, query, id); err != nil {
		return nil, err
	}
	return &og, nil
}

// SetOtherGuestDeleted flips the soft-delete flag on a self-registered
// guest.
func (r *RSVPRepository) SetOtherGuestDeleted(ctx context.Context, id uuid.UUID, deleted bool) error {
	query := `
		UPDATE other_guests
		SET deleted = $1,
			deleted_at = CASE WHEN $1 THEN NOW() ELSE NULL END,
			updated_at = NOW()
		WHERE id = $2
	`
	err := r.db.ExecContext(ctx, query, deleted, id)
	if err != nil {
		logger.Error("RSVPRepository:SetOtherGuestDeleted:Error:", err)
		return err
	}
	return nil
}
