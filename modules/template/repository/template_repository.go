package repository

import (
	"context"

	"guestdesk/core/database"
	"guestdesk/modules/template/entity"

	"github.com/google/uuid"
)

const templateColumns = `id, event_id, name, body, is_default, usage_count, created_at, updated_at`

type TemplateRepository struct {
	db database.Database
}

func NewTemplateRepository(db database.Database) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(ctx context.Context, t *entity.Template) error {
	query := `
		INSERT INTO message_templates (event_id, name, body, is_default)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + templateColumns

	return r.db.GetContext(ctx, t, query, t.EventID, t.Name, t.Body, t.IsDefault)
}

func (r *TemplateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM message_templates WHERE id = $1`

	var t entity.Template
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepository) GetDefault(ctx context.Context, eventID uuid.UUID) (*entity.Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM message_templates
		WHERE event_id = $1 AND is_default = TRUE
		ORDER BY updated_at DESC
		LIMIT 1`

	var t entity.Template
	if err := r.db.GetContext(ctx, &t, query, eventID); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]entity.Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM message_templates
		WHERE event_id = $1
		ORDER BY created_at ASC`

	var templates []entity.Template
	if err := r.db.SelectContext(ctx, &templates, query, eventID); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *TemplateRepository) Update(ctx context.Context, t *entity.Template) error {
	query := `
		UPDATE message_templates
		SET name = $2, body = $3, is_default = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + templateColumns

	return r.db.GetContext(ctx, t, query, t.ID, t.Name, t.Body, t.IsDefault)
}

// ClearDefault drops the default flag from every template of an event, so
// promoting one default never leaves two.
func (r *TemplateRepository) ClearDefault(ctx context.Context, eventID uuid.UUID) error {
	query := `UPDATE message_templates SET is_default = FALSE, updated_at = NOW() WHERE event_id = $1 AND is_default = TRUE`
	return r.db.ExecContext(ctx, query, eventID)
}

func (r *TemplateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM message_templates WHERE id = $1`
	return r.db.ExecContext(ctx, query, id)
}

func (r *TemplateRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE message_templates SET usage_count = usage_count + 1, updated_at = NOW() WHERE id = $1`
	return r.db.ExecContext(ctx, query, id)
}
