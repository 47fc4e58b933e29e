package resumes

import (
	"context"
	"errors"

	"resume-builder/resume/model"
)

var ErrNotFound = errors.New("resume not found")

// Repo persists one resume document per user. Upsert replaces the stored
// document wholesale; there is no partial update.
type Repo interface {
	Get(ctx context.Context, userID string) (model.Resume, error)
	Upsert(ctx context.Context, userID string, r model.Resume) error
	Delete(ctx context.Context, userID string) error
}
