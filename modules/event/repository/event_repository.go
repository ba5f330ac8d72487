package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"guestdesk/core/database"
	"guestdesk/core/logger"
	"guestdesk/modules/event/entity"

	"github.com/google/uuid"
)

type EventRepository struct {
	db database.Database
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *entity.Event) error {
	query := `
		INSERT INTO events (host_id, title, slug, starts_at, location, description, cover_image_url,
			structure_mode, rsvp_mode, custom_fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	customFields, err := event.CustomFields.Value()
	if err != nil {
		logger.Error("EventRepository:Create:CustomFieldsValue:Error:", err)
		return err
	}

	row := r.db.QueryRowContext(ctx, query,
		event.HostID,
		event.Title,
		event.Slug,
		event.StartsAt,
		event.Location,
		event.Description,
		event.CoverImageURL,
		event.StructureMode,
		event.RSVPMode,
		customFields,
		event.CreatedAt,
		event.UpdatedAt,
	)
	return row.Scan(&event.ID)
}

// GetByID gets an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `
		SELECT id, host_id, title, slug, starts_at, location, description, cover_image_url,
			structure_mode, rsvp_mode, custom_fields, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	var event entity.Event
	err := r.db.GetContext(ctx, &event, query, id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Error("EventRepository:GetByID:Error:", err)
		}
		return nil, err
	}
	return &event, nil
}

// GetBySlug gets an event by its public slug
func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	query := `
		SELECT id, host_id, title, slug, starts_at, location, description, cover_image_url,
			structure_mode, rsvp_mode, custom_fields, created_at, updated_at
		FROM events
		WHERE slug = $1
	`
	var event entity.Event
	err := r.db.GetContext(ctx, &event, query, slug)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Error("EventRepository:GetBySlug:Error:", err)
		}
		return nil, err
	}
	return &event, nil
}

// ListByHost lists all events of a host, newest first
func (r *EventRepository) ListByHost(ctx context.Context, hostID uuid.UUID) ([]entity.Event, error) {
	query := `
		SELECT id, host_id, title, slug, starts_at, location, description, cover_image_url,
			structure_mode, rsvp_mode, custom_fields, created_at, updated_at
		FROM events
		WHERE host_id = $1
		ORDER BY created_at DESC
	`
	var events []entity.Event
	err := r.db.SelectContext(ctx, &events, query, hostID)
	if err != nil {
		logger.Error("EventRepository:ListByHost:Error:", err)
		return nil, err
	}
	return events, nil
}

// Update persists mutable event fields
func (r *EventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = $1, starts_at = $2, location = $3, description = $4, cover_image_url = $5,
			structure_mode = $6, rsvp_mode = $7, updated_at = $8
		WHERE id = $9
	`
	event.UpdatedAt = time.Now()
	err := r.db.ExecContext(ctx, query,
		event.Title,
		event.StartsAt,
		event.Location,
		event.Description,
		event.CoverImageURL,
		event.StructureMode,
		event.RSVPMode,
		event.UpdatedAt,
		event.ID,
	)
	if err != nil {
		logger.Error("EventRepository:Update:Error:", err)
		return err
	}
	return nil
}

// UpdateCustomFields replaces the custom-field metadata map
func (r *EventRepository) UpdateCustomFields(ctx context.Context, id uuid.UUID, fields entity.CustomFieldsMeta) error {
	query := `UPDATE events SET custom_fields = $1, updated_at = $2 WHERE id = $3`
	value, err := fields.Value()
	if err != nil {
		logger.Error("EventRepository:UpdateCustomFields:Value:Error:", err)
		return err
	}
	err = r.db.ExecContext(ctx, query, value, time.Now(), id)
	if err != nil {
		logger.Error("EventRepository:UpdateCustomFields:Error:", err)
		return err
	}
	return nil
}

// Delete removes an event and, via FK cascade, its children
func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		logger.Error("EventRepository:Delete:Error:", err)
		return err
	}
	return nil
}

// SlugExists reports whether a slug is already taken
func (r *EventRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM events WHERE slug = $1`, slug)
	if err != nil {
		logger.Error("EventRepository:SlugExists:Error:", err)
		return false, err
	}
	return count > 0, nil
}
