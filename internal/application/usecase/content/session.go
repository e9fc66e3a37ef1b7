package content

import (
	"context"
	"reflect"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/Sameer-B786/portfolio/internal/domain/portfolio"
	"github.com/Sameer-B786/portfolio/pkg/logger"
)

var tracer = otel.Tracer("content_session")

// Mutator runs one editor operation (or a direct field replace) against the
// working copy. Collection mutations must go through the pure editor ops so
// change detection by structural equality stays meaningful.
type Mutator func(m *portfolio.PortfolioModel)

// CommitEvent is emitted on every successful commit. Controllers subscribe
// to the Commits channel instead of hooking into the store.
type CommitEvent struct {
	At time.Time
}

// EditSession mediates between the editing surface and the store. It clones
// the committed model into an independent working copy, serializes every
// mutation behind one mutex, and commits either on demand or automatically
// on each detected change.
type EditSession struct {
	store    portfolio.Store
	logger   logger.Logger
	autosave bool

	mu        sync.Mutex
	working   *portfolio.PortfolioModel
	committed *portfolio.PortfolioModel
	dirty     bool

	commits chan CommitEvent
}

func NewEditSession(store portfolio.Store, log logger.Logger, autosave bool) *EditSession {
	committed := store.Committed()
	return &EditSession{
		store:     store,
		logger:    log,
		autosave:  autosave,
		working:   committed.Clone(),
		committed: committed,
		commits:   make(chan CommitEvent, 16),
	}
}

// Apply runs the mutator against the working copy and compares the result to
// the last-committed snapshot by full structural equality. Under autosave a
// detected change commits immediately; otherwise the session just turns
// dirty. Concurrent Apply calls are serialized, so each commit reflects the
// latest applied state and writes never interleave out of order.
func (s *EditSession) Apply(ctx context.Context, mutate Mutator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	mutate(s.working)
	s.dirty = !reflect.DeepEqual(s.working, s.committed)

	if !s.dirty {
		return nil
	}
	if !s.autosave {
		return nil
	}
	return s.commitLocked(ctx)
}

// Commit persists the working copy explicitly. A save failure keeps the
// working copy and the dirty flag, so no edit is lost and the next
// Apply/Commit retries once the storage condition clears.
func (s *EditSession) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	return s.commitLocked(ctx)
}

func (s *EditSession) commitLocked(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "Commit")
	defer span.End()

	if err := s.store.Save(ctx, s.working.Clone()); err != nil {
		span.RecordError(err)
		s.logger.Warn("commit failed, retaining working copy", zap.Error(err))
		return err
	}

	s.committed = s.working.Clone()
	s.dirty = false

	select {
	case s.commits <- CommitEvent{At: time.Now().UTC()}:
	default:
		// Slow subscribers never block the mutation path.
	}
	return nil
}

// Working returns an independent copy for rendering the editing surface.
func (s *EditSession) Working() *portfolio.PortfolioModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.working.Clone()
}

// Dirty reports whether the working copy diverges from the last commit.
func (s *EditSession) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *EditSession) Autosave() bool {
	return s.autosave
}

// Commits exposes the observable commit trigger.
func (s *EditSession) Commits() <-chan CommitEvent {
	return s.commits
}

// DrainCommits invokes fn for every commit event until ctx is cancelled.
// Meant to run on its own goroutine; cancelling ctx is its only exit path.
func (s *EditSession) DrainCommits(ctx context.Context, fn func(CommitEvent)) {
	for {
		select {
		case ev := <-s.commits:
			fn(ev)
		case <-ctx.Done():
			return
		}
	}
}

// Reset discards the working copy and reopens the session from the given
// committed model. Import uses it after replacing the stored document.
func (s *EditSession) Reset(model *portfolio.PortfolioModel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed = model.Clone()
	s.working = model.Clone()
	s.dirty = false
}
