package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sameer-B786/portfolio/internal/domain/portfolio"
	"github.com/Sameer-B786/portfolio/pkg/apperror"
	"github.com/Sameer-B786/portfolio/pkg/logger"
)

type fakeStore struct {
	committed *portfolio.PortfolioModel
	saves     []*portfolio.PortfolioModel
	failWith  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{committed: portfolio.Default()}
}

func (f *fakeStore) Load(context.Context) (*portfolio.PortfolioModel, portfolio.LoadReport) {
	return f.committed.Clone(), portfolio.LoadReport{}
}

func (f *fakeStore) Save(_ context.Context, m *portfolio.PortfolioModel) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.saves = append(f.saves, m.Clone())
	f.committed = m.Clone()
	return nil
}

func (f *fakeStore) Committed() *portfolio.PortfolioModel {
	return f.committed.Clone()
}

func (f *fakeStore) Subscribe(func(*portfolio.PortfolioModel)) {}

func TestAutosaveCommitsOncePerMutation(t *testing.T) {
	store := newFakeStore()
	session := NewEditSession(store, logger.NewNop(), true)
	ctx := context.Background()

	require.NoError(t, session.Apply(ctx, func(m *portfolio.PortfolioModel) { m.Name = "First" }))
	require.NoError(t, session.Apply(ctx, func(m *portfolio.PortfolioModel) { m.Tagline = "Second" }))

	require.Len(t, store.saves, 2)
	assert.Equal(t, "First", store.saves[0].Name)
	// The second save reflects both mutations; nothing is dropped.
	assert.Equal(t, "First", store.saves[1].Name)
	assert.Equal(t, "Second", store.saves[1].Tagline)
	assert.False(t, session.Dirty())
}

func TestApplyWithoutChangeDoesNotCommit(t *testing.T) {
	store := newFakeStore()
	session := NewEditSession(store, logger.NewNop(), true)

	require.NoError(t, session.Apply(context.Background(), func(m *portfolio.PortfolioModel) {
		m.Projects = Remove(m.Projects, 999)
	}))

	assert.Empty(t, store.saves)
	assert.False(t, session.Dirty())
}

func TestExplicitPolicyCommitsOnlyOnDemand(t *testing.T) {
	store := newFakeStore()
	session := NewEditSession(store, logger.NewNop(), false)
	ctx := context.Background()

	require.NoError(t, session.Apply(ctx, func(m *portfolio.PortfolioModel) { m.Name = "X" }))
	assert.Empty(t, store.saves)
	assert.True(t, session.Dirty())

	require.NoError(t, session.Commit(ctx))
	require.Len(t, store.saves, 1)
	assert.Equal(t, "X", store.saves[0].Name)
	assert.False(t, session.Dirty())

	// Nothing dirty, nothing to write.
	require.NoError(t, session.Commit(ctx))
	assert.Len(t, store.saves, 1)
}

func TestSaveFailureRetainsWorkingCopyAndRetries(t *testing.T) {
	store := newFakeStore()
	store.failWith = apperror.NewStorageFailure("disk full", nil)
	session := NewEditSession(store, logger.NewNop(), true)
	ctx := context.Background()

	err := session.Apply(ctx, func(m *portfolio.PortfolioModel) { m.Name = "Kept" })
	require.Error(t, err)
	assert.True(t, session.Dirty())
	assert.Equal(t, "Kept", session.Working().Name)

	// Storage recovers; the next mutation flushes the full state.
	store.failWith = nil
	require.NoError(t, session.Apply(ctx, func(m *portfolio.PortfolioModel) { m.Tagline = "Too" }))
	require.Len(t, store.saves, 1)
	assert.Equal(t, "Kept", store.saves[0].Name)
	assert.Equal(t, "Too", store.saves[0].Tagline)
	assert.False(t, session.Dirty())
}

func TestWorkingCopyIsIndependentOfCommitted(t *testing.T) {
	store := newFakeStore()
	session := NewEditSession(store, logger.NewNop(), false)

	require.NoError(t, session.Apply(context.Background(), func(m *portfolio.PortfolioModel) {
		m.Projects = Add(m.Projects, func() portfolio.Project { return portfolio.NewProject(1) })
	}))

	assert.Len(t, session.Working().Projects, 1)
	assert.Empty(t, store.Committed().Projects)
}

func TestCommitEmitsObservableEvent(t *testing.T) {
	store := newFakeStore()
	session := NewEditSession(store, logger.NewNop(), true)

	require.NoError(t, session.Apply(context.Background(), func(m *portfolio.PortfolioModel) { m.Name = "ev" }))

	select {
	case ev := <-session.Commits():
		assert.False(t, ev.At.IsZero())
	default:
		t.Fatal("expected a commit event")
	}
}

func TestDrainCommitsStopsOnCancel(t *testing.T) {
	store := newFakeStore()
	session := NewEditSession(store, logger.NewNop(), true)

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan CommitEvent, 1)
	done := make(chan struct{})
	go func() {
		session.DrainCommits(ctx, func(ev CommitEvent) { events <- ev })
		close(done)
	}()

	require.NoError(t, session.Apply(context.Background(), func(m *portfolio.PortfolioModel) { m.Name = "drained" }))

	select {
	case ev := <-events:
		assert.False(t, ev.At.IsZero())
	case <-time.After(time.Second):
		t.Fatal("expected the drain loop to observe the commit")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected the drain loop to exit on cancel")
	}
}

func TestResetDiscardsWorkingCopy(t *testing.T) {
	store := newFakeStore()
	session := NewEditSession(store, logger.NewNop(), false)
	ctx := context.Background()

	require.NoError(t, session.Apply(ctx, func(m *portfolio.PortfolioModel) { m.Name = "scrap" }))
	require.True(t, session.Dirty())

	restored := portfolio.Default()
	restored.Name = "Restored"
	session.Reset(restored)

	assert.False(t, session.Dirty())
	assert.Equal(t, "Restored", session.Working().Name)
}
