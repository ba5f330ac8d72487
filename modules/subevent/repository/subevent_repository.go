package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"guestdesk/core/database"
	"guestdesk/core/logger"
	"guestdesk/modules/subevent/entity"

	"github.com/google/uuid"
)

type SubEventRepository struct {
	db database.Database
}

func NewSubEventRepository(db database.Database) *SubEventRepository {
	return &SubEventRepository{db: db}
}

// Create creates a new sub-event
func (r *SubEventRepository) Create(ctx context.Context, subEvent *entity.SubEvent) error {
	query := `
		INSERT INTO sub_events (event_id, title, starts_at, ends_at, location, description,
			image_url, rsvp_enabled, public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	now := time.Now()
	subEvent.CreatedAt = now
	subEvent.UpdatedAt = now

	row := r.db.QueryRowContext(ctx, query,
		subEvent.EventID,
		subEvent.Title,
		subEvent.StartsAt,
		subEvent.EndsAt,
		subEvent.Location,
		subEvent.Description,
		subEvent.ImageURL,
		subEvent.RSVPEnabled,
		subEvent.Public,
		subEvent.CreatedAt,
		subEvent.UpdatedAt,
	)
	return row.Scan(&subEvent.ID)
}

// GetByID gets a sub-event by ID
func (r *SubEventRepository) GetByID(ctx context.Context, id int64) (*entity.SubEvent, error) {
	query := `
		SELECT id, event_id, title, starts_at, ends_at, location, description, image_url,
			rsvp_enabled, public, created_at, updated_at
		FROM sub_events
		WHERE id = $1
	`
	var subEvent entity.SubEvent
	err := r.db.GetContext(ctx, &subEvent, query, id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Error("SubEventRepository:GetByID:Error:", err)
		}
		return nil, err
	}
	return &subEvent, nil
}

// ListByEvent lists a parent event's sub-events in schedule order
func (r *SubEventRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.SubEvent, error) {
	query := `
		SELECT id, event_id, title, starts_at, ends_at, location, description, image_url,
			rsvp_enabled, public, created_at, updated_at
		FROM sub_events
		WHERE event_id = $1
		ORDER BY starts_at ASC NULLS LAST, id ASC
	`
	var subEvents []entity.SubEvent
	err := r.db.SelectContext(ctx, &subEvents, query, eventID)
	if err != nil {
		logger.Error("SubEventRepository:ListByEvent:Error:", err)
		return nil, err
	}
	return subEvents, nil
}

// Update persists mutable sub-event fields
func (r *SubEventRepository) Update(ctx context.Context, subEvent *entity.SubEvent) error {
	query := `
		UPDATE sub_events
		SET title = $1, starts_at = $2, ends_at = $3, location = $4, description = $5,
			image_url = $6, rsvp_enabled = $7, public = $8, updated_at = $9
		WHERE id = $10
	`
	subEvent.UpdatedAt = time.Now()
	err := r.db.ExecContext(ctx, query,
		subEvent.Title,
		subEvent.StartsAt,
		subEvent.EndsAt,
		subEvent.Location,
		subEvent.Description,
		subEvent.ImageURL,
		subEvent.RSVPEnabled,
		subEvent.Public,
		subEvent.UpdatedAt,
		subEvent.ID,
	)
	if err != nil {
		logger.Error("SubEventRepository:Update:Error:", err)
		return err
	}
	return nil
}

// Delete removes a sub-event
func (r *SubEventRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.ExecContext(ctx, `DELETE FROM sub_events WHERE id = $1`, id)
	if err != nil {
		logger.Error("SubEventRepository:Delete:Error:", err)
		return err
	}
	return nil
}

// IDsByEvent returns the set of sub-event IDs belonging to an event, used
// to validate assignment requests.
func (r *SubEventRepository) IDsByEvent(ctx context.Context, eventID uuid.UUID) (map[int64]bool, error) {
	var ids []int64
	err := r.db.SelectContext(ctx, &ids, `SELECT id FROM sub_events WHERE event_id = $1`, eventID)
	if err != nil {
		logger.Error("SubEventRepository:IDsByEvent:Error:", err)
		return nil, err
	}
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
