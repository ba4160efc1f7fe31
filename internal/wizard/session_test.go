package wizard

import (
	"context"
	"errors"
	"testing"

	"repouso-data/internal/domain"
	"repouso-data/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeIdentity struct {
	identity Identity
	ok       bool
}

func (f *fakeIdentity) CurrentUser(context.Context) (Identity, bool) {
	return f.identity, f.ok
}

type fakeRecordWriter struct {
	created []*domain.EvolutionRecord
	err     error
}

func (f *fakeRecordWriter) CreateEvolution(_ context.Context, rec *domain.EvolutionRecord) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, rec)
	return "evo-1", nil
}

func newTestSession(identity *fakeIdentity, writer *fakeRecordWriter) *Session {
	return NewSession(schema.DefaultCatalog(), identity, writer, nil, zap.NewNop())
}

func fillBasicStep(t *testing.T, sess *Session) {
	t.Helper()
	require.NoError(t, sess.Edit(func(st *State) {
		st.SetResident("res-maria")
		st.SetDate("2026-08-30")
		st.SetTime("14:30")
		st.SetSystolic("120")
		st.SetDiastolic("80")
	}))
}

func TestSession_CompleteFlow(t *testing.T) {
	identity := &fakeIdentity{identity: Identity{ID: "user-1", Name: "Ana Souza"}, ok: true}
	writer := &fakeRecordWriter{}
	sess := newTestSession(identity, writer)
	ctx := context.Background()

	fillBasicStep(t, sess)
	require.NoError(t, sess.ApplyInput("feeding", Input{Str: "Comeu bem"}))
	require.NoError(t, sess.ApplyInput("hydration", Input{Str: "Bem hidratado"}))
	require.NoError(t, sess.ApplyInput("familyContact", Input{Bool: true}))
	require.NoError(t, sess.ApplyInput("memory", Input{Rating: 4}))

	// walk every step through to submission
	for i := 0; i < schema.StepCount(); i++ {
		require.NoError(t, sess.Next(ctx))
	}

	require.True(t, sess.Finished())
	require.Len(t, writer.created, 1)
	rec := writer.created[0]
	assert.Equal(t, "res-maria", rec.ResidentID)
	assert.Equal(t, "2026-08-30", rec.Date)
	assert.Equal(t, "14:30", rec.Time)
	assert.Equal(t, "user-1", rec.AuthorID)
	assert.Equal(t, "Ana Souza", rec.AuthorName)
	assert.Equal(t, domain.TextValue("120/80 mmHg"), rec.Values["bloodPressure"])
	assert.Equal(t, domain.OptionValue("Comeu bem"), rec.Values["feeding"])
	assert.Equal(t, domain.OptionValue("Bem hidratado"), rec.Values["hydration"])
	assert.Equal(t, domain.BoolValue(true), rec.Values["familyContact"])
	assert.Equal(t, domain.RatingValue(4), rec.Values["memory"])
}

func TestSession_NextRejectionKeepsStep(t *testing.T) {
	sess := newTestSession(&fakeIdentity{ok: true}, &fakeRecordWriter{})

	err := sess.Next(context.Background())
	var v *ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, 0, sess.Snapshot().StepIndex)
}

func TestSession_PrevIsUnconditional(t *testing.T) {
	sess := newTestSession(&fakeIdentity{ok: true}, &fakeRecordWriter{})

	fillBasicStep(t, sess)
	require.NoError(t, sess.Next(context.Background()))
	require.Equal(t, 1, sess.Snapshot().StepIndex)

	sess.Prev()
	assert.Equal(t, 0, sess.Snapshot().StepIndex)

	// already at the first step: stays put
	sess.Prev()
	assert.Equal(t, 0, sess.Snapshot().StepIndex)
}

func TestSession_SubmitWithoutIdentity(t *testing.T) {
	writer := &fakeRecordWriter{}
	sess := newTestSession(&fakeIdentity{ok: false}, writer)
	ctx := context.Background()

	fillBasicStep(t, sess)
	for i := 0; i < schema.StepCount()-1; i++ {
		require.NoError(t, sess.Next(ctx))
	}

	err := sess.Next(ctx)
	require.ErrorIs(t, err, ErrNoIdentity)
	assert.False(t, sess.Finished())
	assert.Empty(t, writer.created)
}

func TestSession_PersistenceFailurePreservesState(t *testing.T) {
	writer := &fakeRecordWriter{err: errors.New("connection refused")}
	sess := newTestSession(&fakeIdentity{identity: Identity{ID: "u", Name: "N"}, ok: true}, writer)
	ctx := context.Background()

	fillBasicStep(t, sess)
	require.NoError(t, sess.ApplyInput("mood", Input{Str: "Tranquilo"}))
	for i := 0; i < schema.StepCount()-1; i++ {
		require.NoError(t, sess.Next(ctx))
	}

	err := sess.Next(ctx)
	var p *PersistenceError
	require.ErrorAs(t, err, &p)

	// entered values survive for a retry
	st := sess.Snapshot()
	assert.False(t, st.Submitting)
	assert.False(t, sess.Finished())
	assert.Equal(t, domain.OptionValue("Tranquilo"), st.Values["mood"])
	assert.Equal(t, "res-maria", st.BasicInfo.ResidentID)

	// retry succeeds once the store recovers
	writer.err = nil
	require.NoError(t, sess.Next(ctx))
	require.Len(t, writer.created, 1)
	assert.True(t, sess.Finished())
}

func TestSession_CancelResetsEverything(t *testing.T) {
	sess := newTestSession(&fakeIdentity{ok: true}, &fakeRecordWriter{})

	fillBasicStep(t, sess)
	require.NoError(t, sess.ApplyInput("mood", Input{Str: "Alegre"}))
	require.NoError(t, sess.Next(context.Background()))

	require.NoError(t, sess.Cancel())
	st := sess.Snapshot()
	assert.Equal(t, 0, st.StepIndex)
	assert.Empty(t, st.Values)
	assert.Empty(t, st.BasicInfo.ResidentID)
}

func TestSession_BloodPressureInputIgnored(t *testing.T) {
	identity := &fakeIdentity{identity: Identity{ID: "user-1", Name: "Ana Souza"}, ok: true}
	writer := &fakeRecordWriter{}
	sess := newTestSession(identity, writer)
	ctx := context.Background()

	fillBasicStep(t, sess)
	require.NoError(t, sess.ApplyInput(schema.CategoryBloodPressure, Input{Str: "999/999 adulterado"}))
	assert.Equal(t, "120/80 mmHg", sess.Snapshot().Values[schema.CategoryBloodPressure].Str)

	for i := 0; i < schema.StepCount(); i++ {
		require.NoError(t, sess.Next(ctx))
	}
	require.Len(t, writer.created, 1)
	assert.Equal(t, domain.TextValue("120/80 mmHg"), writer.created[0].Values[schema.CategoryBloodPressure])
}

func TestSession_UnknownCategoryIsNoOp(t *testing.T) {
	sess := newTestSession(&fakeIdentity{ok: true}, &fakeRecordWriter{})
	require.NoError(t, sess.ApplyInput("notInCatalog", Input{Str: "x"}))
	assert.Empty(t, sess.Snapshot().Values)
}

func TestManager_OpenGetCancel(t *testing.T) {
	m := NewManager(schema.DefaultCatalog(), &fakeIdentity{ok: true}, &fakeRecordWriter{}, zap.NewNop())

	handle, sess := m.Open(nil)
	require.NotEmpty(t, handle)

	got, ok := m.Get(handle)
	require.True(t, ok)
	assert.Same(t, sess, got)

	require.NoError(t, m.Cancel(handle))
	_, ok = m.Get(handle)
	assert.False(t, ok)

	// cancelling an unknown handle is not an error
	assert.NoError(t, m.Cancel("missing"))
}

func TestManager_SessionRemovedAfterSubmit(t *testing.T) {
	m := NewManager(schema.DefaultCatalog(),
		&fakeIdentity{identity: Identity{ID: "u", Name: "N"}, ok: true},
		&fakeRecordWriter{}, zap.NewNop())

	calls := 0
	handle, sess := m.Open(func() { calls++ })
	fillBasicStep(t, sess)
	ctx := context.Background()
	for i := 0; i < schema.StepCount(); i++ {
		require.NoError(t, sess.Next(ctx))
	}

	assert.Equal(t, 1, calls)
	_, ok := m.Get(handle)
	assert.False(t, ok)
}
