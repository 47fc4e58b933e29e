// Package session owns the in-memory resume document during editing and
// drives debounced autosave. The session is the single writer: callers hand
// it whole replacement values and read back snapshots, never shared pointers.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"resume-builder/resume/model"
)

// DefaultQuietWindow is how long edits must pause before an autosave fires.
const DefaultQuietWindow = 2 * time.Second

// ErrClosed is returned by mutations after Close.
var ErrClosed = errors.New("editing session closed")

// Saver persists a resume snapshot. The gateway client satisfies this.
type Saver interface {
	Save(ctx context.Context, r model.Resume) error
}

// SaveResult reports the outcome of one save attempt, manual or automatic.
type SaveResult struct {
	Resume model.Resume
	Err    error
	At     time.Time
}

// Session holds the working copy of a resume and schedules autosaves. Every
// mutation replaces the whole document and restarts the quiet-window timer,
// so only the latest snapshot reaches the saver.
type Session struct {
	saver       Saver
	quietWindow time.Duration
	saveTimeout time.Duration
	onSave      func(SaveResult)

	mu      sync.Mutex
	current model.Resume
	dirty   bool
	timer   *time.Timer
	closed  bool
}

// Option configures a Session.
type Option func(*Session)

// WithQuietWindow overrides the autosave debounce interval.
func WithQuietWindow(d time.Duration) Option {
	return func(s *Session) { s.quietWindow = d }
}

// WithSaveTimeout bounds each save attempt. Defaults to 10 seconds.
func WithSaveTimeout(d time.Duration) Option {
	return func(s *Session) { s.saveTimeout = d }
}

// WithSaveObserver registers a callback invoked after every save attempt,
// successful or not. Called outside the session lock.
func WithSaveObserver(fn func(SaveResult)) Option {
	return func(s *Session) { s.onSave = fn }
}

// New starts a session over the given document.
func New(initial model.Resume, saver Saver, opts ...Option) *Session {
	s := &Session{
		saver:       saver,
		quietWindow: DefaultQuietWindow,
		saveTimeout: 10 * time.Second,
		current:     initial.Normalize().Clone(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns an independent copy of the working document.
func (s *Session) Snapshot() model.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Update applies a whole-document edit. The mutate function receives a copy,
// never the session's own value, and its result replaces the document.
func (s *Session) Update(mutate func(model.Resume) model.Resume) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	s.current = mutate(s.current.Clone()).Normalize()
	now := time.Now().UTC()
	s.current.UpdatedAt = &now
	s.dirty = true
	s.rescheduleLocked()
	return nil
}

// Replace swaps in a complete new document, as when loading from the backend.
func (s *Session) Replace(r model.Resume) error {
	return s.Update(func(model.Resume) model.Resume { return r })
}

// Flush saves immediately, cancelling any pending autosave. A clean session
// is a no-op.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	snapshot := s.current.Clone()
	s.dirty = false
	s.mu.Unlock()

	return s.save(ctx, snapshot)
}

// Close tears the session down. Any pending autosave timer is cancelled;
// unsaved edits are discarded. Callers that want durability flush first.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Dirty reports whether edits are waiting to be saved.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// rescheduleLocked restarts the quiet-window timer. Must hold s.mu.
func (s *Session) rescheduleLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.quietWindow, s.autosave)
}

// autosave fires when the quiet window elapses with no further edits. It
// snapshots under the lock and saves outside it, so edits made while the
// save is in flight simply mark the session dirty again.
func (s *Session) autosave() {
	s.mu.Lock()
	if s.closed || !s.dirty {
		s.mu.Unlock()
		return
	}
	snapshot := s.current.Clone()
	s.dirty = false
	s.timer = nil
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()

	if err := s.save(ctx, snapshot); err != nil {
		// A failed autosave leaves the document dirty so the next quiet
		// window retries, unless a newer edit already re-marked it.
		s.mu.Lock()
		if !s.closed && !s.dirty {
			s.dirty = true
			s.rescheduleLocked()
		}
		s.mu.Unlock()
	}
}

func (s *Session) save(ctx context.Context, snapshot model.Resume) error {
	err := s.saver.Save(ctx, snapshot)
	if s.onSave != nil {
		s.onSave(SaveResult{Resume: snapshot, Err: err, At: time.Now().UTC()})
	}
	return err
}
