package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-builder/resume/model"
)

// PGRepo implements Repo using Postgres. The document is stored as JSONB
// with a few denormalized columns for inspection queries.
type PGRepo struct {
	DB *sql.DB
}

// Get returns the stored document for a user.
func (r *PGRepo) Get(ctx context.Context, userID string) (model.Resume, error) {
	const query = `
SELECT payload
FROM resumes
WHERE user_id = $1
LIMIT 1`
	var payload []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Resume{}, ErrNotFound
		}
		return model.Resume{}, err
	}

	var doc model.Resume
	if err := json.Unmarshal(payload, &doc); err != nil {
		return model.Resume{}, fmt.Errorf("decode stored resume: %w", err)
	}
	return doc.Normalize(), nil
}

// Upsert replaces the user's stored document.
func (r *PGRepo) Upsert(ctx context.Context, userID string, doc model.Resume) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode resume: %w", err)
	}

	const query = `
INSERT INTO resumes (user_id, resume_id, title, template_style, payload, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
ON CONFLICT (user_id) DO UPDATE SET
  resume_id = EXCLUDED.resume_id,
  title = EXCLUDED.title,
  template_style = EXCLUDED.template_style,
  payload = EXCLUDED.payload,
  updated_at = now()`
	_, err = r.DB.ExecContext(ctx, query,
		userID,
		doc.ID,
		doc.Title,
		string(doc.TemplateStyle),
		payload,
	)
	return err
}

// Delete removes the user's stored document. Deleting nothing is ErrNotFound.
func (r *PGRepo) Delete(ctx context.Context, userID string) error {
	const query = `DELETE FROM resumes WHERE user_id = $1`
	res, err := r.DB.ExecContext(ctx, query, userID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
