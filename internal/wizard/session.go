package wizard

import (
	"context"
	"sync"

	"repouso-data/internal/domain"
	"repouso-data/internal/schema"

	"go.uber.org/zap"
)

// Identity author of a submission, captured from the active session.
type Identity struct {
	ID   string
	Name string
}

// IdentityProvider resolves the current console user, if any.
type IdentityProvider interface {
	CurrentUser(ctx context.Context) (Identity, bool)
}

// RecordWriter persists a finished wizard session as one evolution
// record. Implemented by the evolutions repository.
type RecordWriter interface {
	CreateEvolution(ctx context.Context, rec *domain.EvolutionRecord) (string, error)
}

// Session one open evolution-record wizard. It exclusively owns its
// State; transitions execute to completion under the lock, so field
// edits and navigation are applied in arrival order.
type Session struct {
	mu sync.Mutex

	catalog  *schema.Catalog
	state    *State
	identity IdentityProvider
	records  RecordWriter

	onSuccess func()
	finished  bool

	logger *zap.Logger
}

func NewSession(catalog *schema.Catalog, identity IdentityProvider, records RecordWriter, onSuccess func(), logger *zap.Logger) *Session {
	return &Session{
		catalog:   catalog,
		state:     NewState(),
		identity:  identity,
		records:   records,
		onSuccess: onSuccess,
		logger:    logger,
	}
}

// Edit runs fn against the session state. Edits are refused while a
// submission is outstanding.
func (s *Session) Edit(fn func(st *State)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Submitting {
		return ErrBusy
	}
	fn(s.state)
	return nil
}

// ApplyInput normalizes one field interaction. A category id missing
// from the catalog is a no-op, never an error.
func (s *Session) ApplyInput(categoryID string, in Input) error {
	cat, ok := s.catalog.FindByID(categoryID)
	if !ok {
		return nil
	}
	return s.Edit(func(st *State) { st.Apply(cat, in) })
}

// Snapshot returns a copy of the current state for rendering.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := *s.state
	st.Values = s.state.snapshotValues()
	return st
}

// Finished reports whether this session already produced a record.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finished
}

// Next validates the current step and advances, or submits from the
// final step. A rejection leaves the step pointer untouched.
func (s *Session) Next(ctx context.Context) error {
	s.mu.Lock()
	if s.state.Submitting {
		s.mu.Unlock()
		return ErrBusy
	}
	if err := ValidateStep(s.state.StepIndex, s.state); err != nil {
		s.mu.Unlock()
		return err
	}
	if s.state.StepIndex < schema.StepCount()-1 {
		s.state.StepIndex++
		s.mu.Unlock()
		return nil
	}
	return s.submitLocked(ctx)
}

// Prev moves back one step unconditionally; nothing is validated on the
// way back.
func (s *Session) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.StepIndex > 0 {
		s.state.StepIndex--
	}
}

// Cancel discards everything entered so far. It is refused while a
// submission is in flight: an outstanding write cannot be recalled.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Submitting {
		return ErrBusy
	}
	s.state = NewState()
	return nil
}

// submitLocked is entered holding s.mu and releases it before the
// persistence write so field edits on other sessions are not blocked;
// re-entrant triggers are fenced by Submitting.
func (s *Session) submitLocked(ctx context.Context) error {
	author, ok := s.identity.CurrentUser(ctx)
	if !ok {
		s.mu.Unlock()
		return ErrNoIdentity
	}

	s.state.Submitting = true
	rec := &domain.EvolutionRecord{
		ResidentID: s.state.BasicInfo.ResidentID,
		Date:       s.state.BasicInfo.Date,
		Time:       s.state.BasicInfo.Time,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Values:     s.state.snapshotValues(),
	}
	s.mu.Unlock()

	id, err := s.records.CreateEvolution(ctx, rec)

	s.mu.Lock()
	s.state.Submitting = false
	if err != nil {
		// entered values are preserved for a user-initiated retry
		s.mu.Unlock()
		s.logger.Warn("evolution submit failed", zap.Error(err))
		return &PersistenceError{Err: err}
	}
	s.finished = true
	s.mu.Unlock()

	s.logger.Info("evolution record created",
		zap.String("evolution_id", id),
		zap.String("resident_id", rec.ResidentID),
	)
	if s.onSuccess != nil {
		s.onSuccess()
	}
	return nil
}
