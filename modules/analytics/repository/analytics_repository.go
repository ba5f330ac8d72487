package repository

import (
	"context"
	"database/sql"
	"errors"

	"guestdesk/core/database"
	"guestdesk/modules/analytics/entity"

	"github.com/google/uuid"
)

type AnalyticsRepository struct {
	db database.Database
}

func NewAnalyticsRepository(db database.Database) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// SnapshotByEvent samples the engagement counters of every live guest.
func (r *AnalyticsRepository) SnapshotByEvent(ctx context.Context, eventID uuid.UUID) (map[uuid.UUID]entity.GuestStats, error) {
	query := `
		SELECT id, invite_views_count, rsvp_views_count, last_invite_view, last_rsvp_view
		FROM guests
		WHERE event_id = $1 AND deleted = FALSE`

	var rows []entity.GuestStats
	if err := r.db.SelectContext(ctx, &rows, query, eventID); err != nil {
		return nil, err
	}

	stats := make(map[uuid.UUID]entity.GuestStats, len(rows))
	for _, row := range rows {
		stats[row.GuestID] = row
	}
	return stats, nil
}

// IncrementInviteViews bumps the invite-page counter for the guest behind a
// public code and returns whether a live guest matched.
func (r *AnalyticsRepository) IncrementInviteViews(ctx context.Context, publicCode string) (bool, error) {
	query := `
		UPDATE guests
		SET invite_views_count = invite_views_count + 1,
		    last_invite_view = NOW(),
		    updated_at = NOW()
		WHERE public_code = $1 AND deleted = FALSE
		RETURNING id`

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, publicCode)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IncrementRSVPViews bumps the RSVP-page counter for the guest behind a
// public code and returns whether a live guest matched.
func (r *AnalyticsRepository) IncrementRSVPViews(ctx context.Context, publicCode string) (bool, error) {
	query := `
		UPDATE guests
		SET rsvp_views_count = rsvp_views_count + 1,
		    last_rsvp_view = NOW(),
		    updated_at = NOW()
		WHERE public_code = $1 AND deleted = FALSE
		RETURNING id`

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, publicCode)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SummaryByEvent aggregates the dashboard counters in one round trip.
func (r *AnalyticsRepository) SummaryByEvent(ctx context.Context, eventID uuid.UUID) (*entity.Summary, error) {
	query := `
		SELECT
			COUNT(*) AS total_guests,
			COUNT(*) FILTER (WHERE COALESCE(rsvp_status, rsvp_will_attend) = 'yes') AS confirmed,
			COUNT(*) FILTER (WHERE COALESCE(rsvp_status, rsvp_will_attend) = 'no') AS declined,
			COUNT(*) FILTER (WHERE COALESCE(rsvp_status, rsvp_will_attend) = 'maybe') AS maybe,
			COUNT(*) FILTER (WHERE COALESCE(rsvp_status, rsvp_will_attend) IS NULL) AS unconfirmed,
			COUNT(*) FILTER (WHERE invitation_sent) AS invitations_sent,
			COALESCE(SUM(invite_views_count), 0) AS invite_views,
			COALESCE(SUM(rsvp_views_count), 0) AS rsvp_views,
			COALESCE(SUM(rsvp_guests_count) FILTER (WHERE COALESCE(rsvp_status, rsvp_will_attend) = 'yes'), 0) AS expected_guests,
			(SELECT COUNT(*) FROM other_guests og WHERE og.event_id = $1 AND og.deleted = FALSE) AS other_guests
		FROM guests
		WHERE event_id = $1 AND deleted = FALSE`

	var summary entity.Summary
	if err := r.db.GetContext(ctx, &summary, query, eventID); err != nil {
		return nil, err
	}
	return &summary, nil
}
