package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sameer-B786/portfolio/internal/domain/portfolio"
	"github.com/Sameer-B786/portfolio/pkg/apperror"
	"github.com/Sameer-B786/portfolio/pkg/logger"
)

func newFileStore(t *testing.T) (portfolio.Store, *FileBackend, string) {
	t.Helper()
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	require.NoError(t, err)
	return NewContentStore(backend, logger.NewNop()), backend, dir
}

func TestLoadWithoutPriorStateReturnsDefaults(t *testing.T) {
	store, _, _ := newFileStore(t)

	model, report := store.Load(context.Background())
	assert.True(t, report.FromDefaults)
	assert.Equal(t, portfolio.Default().Clone(), model)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	store, _, _ := newFileStore(t)
	ctx := context.Background()

	model := portfolio.Default()
	model.Name = "Round Trip"
	model.Projects = []portfolio.Project{{ID: 42, Title: "Store", Tags: []string{"go"}}}
	model.Skills = []portfolio.SkillCategory{{Title: "Core", Skills: []portfolio.Skill{{Name: "Go", Icon: "go", Color: "#00ADD8"}}}}

	require.NoError(t, store.Save(ctx, model))

	loaded, report := store.Load(ctx)
	assert.False(t, report.FromDefaults)
	assert.Equal(t, model.Clone(), loaded)
}

func TestLoadCorruptedDocumentDegradesToDefaults(t *testing.T) {
	store, _, dir := newFileStore(t)
	ctx := context.Background()

	path := filepath.Join(dir, KeyContent+".json")
	require.NoError(t, os.WriteFile(path, []byte("{definitely not json"), 0o644))

	model, report := store.Load(ctx)
	assert.True(t, report.FromDefaults)
	assert.Error(t, report.Cause)
	assert.Equal(t, portfolio.Default().Clone(), model)
}

func TestLoadPartialDocumentMergesOverDefaults(t *testing.T) {
	store, backend, _ := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, backend.Write(ctx, KeyContent, []byte(`{"name":"X"}`)))

	model, report := store.Load(ctx)
	assert.False(t, report.FromDefaults)

	expected := portfolio.Default().Clone()
	expected.Name = "X"
	assert.Equal(t, expected, model)
}

func TestSavePublishesCommittedStateToSubscribers(t *testing.T) {
	store, _, _ := newFileStore(t)
	ctx := context.Background()

	var seen []string
	store.Subscribe(func(m *portfolio.PortfolioModel) { seen = append(seen, m.Name) })

	model := portfolio.Default()
	model.Name = "published"
	require.NoError(t, store.Save(ctx, model))

	assert.Equal(t, []string{"published"}, seen)
	assert.Equal(t, "published", store.Committed().Name)
}

func TestSaveNotifiesEverySubscriber(t *testing.T) {
	store, _, _ := newFileStore(t)
	ctx := context.Background()

	var first, second []string
	store.Subscribe(func(m *portfolio.PortfolioModel) { first = append(first, m.Name) })
	store.Subscribe(func(m *portfolio.PortfolioModel) { second = append(second, m.Name) })

	// Subscribing from inside a notification must not deadlock: the store
	// walks a snapshot of the subscriber list outside its lock.
	var late []string
	store.Subscribe(func(m *portfolio.PortfolioModel) {
		if len(late) == 0 {
			store.Subscribe(func(m *portfolio.PortfolioModel) { late = append(late, m.Name) })
		}
	})

	for _, name := range []string{"one", "two"} {
		model := portfolio.Default()
		model.Name = name
		require.NoError(t, store.Save(ctx, model))
	}

	assert.Equal(t, []string{"one", "two"}, first)
	assert.Equal(t, []string{"one", "two"}, second)
	assert.Equal(t, []string{"two"}, late)
}

func TestCommittedReturnsIndependentCopies(t *testing.T) {
	store, _, _ := newFileStore(t)
	ctx := context.Background()

	model := portfolio.Default()
	model.Experiences = []portfolio.Experience{{ID: 1, Role: "r"}}
	require.NoError(t, store.Save(ctx, model))

	first := store.Committed()
	first.Experiences[0].Role = "mutated"
	assert.Equal(t, "r", store.Committed().Experiences[0].Role)
}

type failingBackend struct {
	err error
}

func (b *failingBackend) Read(context.Context, string) ([]byte, error)  { return nil, b.err }
func (b *failingBackend) Write(context.Context, string, []byte) error   { return b.err }
func (b *failingBackend) Delete(context.Context, string) error          { return b.err }

func TestSaveFailureLeavesCommittedUntouched(t *testing.T) {
	backend := &failingBackend{err: apperror.NewStorageFailure("quota exceeded", nil)}
	store := NewContentStore(backend, logger.NewNop())
	ctx := context.Background()

	model := portfolio.Default()
	model.Name = "never lands"
	err := store.Save(ctx, model)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrStorage))
	assert.Equal(t, portfolio.Default().Name, store.Committed().Name)
}

func TestLoadBackendFailureDegradesToDefaults(t *testing.T) {
	backend := &failingBackend{err: apperror.NewStorageFailure("storage disabled", nil)}
	store := NewContentStore(backend, logger.NewNop())

	model, report := store.Load(context.Background())
	assert.True(t, report.FromDefaults)
	assert.Equal(t, portfolio.Default().Clone(), model)
}
