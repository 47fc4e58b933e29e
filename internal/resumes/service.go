package resumes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/shared/metrics"
	"resume-builder/resume/model"
	"resume-builder/resume/suggest"
)

var ErrInvalidTemplateStyle = errors.New("invalid template style")

// Service owns the save and load semantics for stored resumes.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Get returns the user's stored document.
func (s *Service) Get(ctx context.Context, userID string) (model.Resume, error) {
	doc, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return model.Resume{}, err
	}
	metrics.IncResumeLoaded()
	return doc, nil
}

// Save replaces the user's stored document. An explicitly unknown template
// style is rejected; an empty one falls back to the professional default.
func (s *Service) Save(ctx context.Context, userID string, doc model.Resume) (model.Resume, error) {
	style, err := model.ParseTemplateStyle(string(doc.TemplateStyle))
	if err != nil {
		return model.Resume{}, fmt.Errorf("%w: %q", ErrInvalidTemplateStyle, doc.TemplateStyle)
	}
	doc.TemplateStyle = style

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.Title == "" {
		doc.Title = "My Resume"
	}
	now := time.Now().UTC()
	if doc.CreatedAt == nil {
		doc.CreatedAt = &now
	}
	doc.UpdatedAt = &now

	start := time.Now()
	if err := s.Repo.Upsert(ctx, userID, doc); err != nil {
		return model.Resume{}, err
	}
	metrics.IncResumeSaved()
	metrics.ObserveSaveDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return doc, nil
}

// Delete removes the user's stored document.
func (s *Service) Delete(ctx context.Context, userID string) error {
	if err := s.Repo.Delete(ctx, userID); err != nil {
		return err
	}
	metrics.IncResumeDeleted()
	return nil
}

// Suggestions runs the content heuristics over the stored document.
func (s *Service) Suggestions(ctx context.Context, userID string) ([]string, error) {
	doc, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return suggest.Analyze(doc), nil
}
