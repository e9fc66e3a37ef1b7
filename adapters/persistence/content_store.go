package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Sameer-B786/portfolio/internal/domain/portfolio"
	"github.com/Sameer-B786/portfolio/pkg/apperror"
	"github.com/Sameer-B786/portfolio/pkg/logger"
)

// contentStore owns the committed PortfolioModel. It is constructed once at
// startup and handed to consumers; nothing reaches it through globals.
type contentStore struct {
	backend Backend
	logger  logger.Logger

	mu          sync.RWMutex
	committed   *portfolio.PortfolioModel
	subscribers []func(*portfolio.PortfolioModel)
}

func NewContentStore(backend Backend, log logger.Logger) portfolio.Store {
	return &contentStore{
		backend:   backend,
		logger:    log,
		committed: portfolio.Default(),
	}
}

// Load reads the content document, reconciles it against the defaults, and
// publishes the result as the committed model. Any failure degrades to the
// default model; the LoadReport carries the cause instead of an error so the
// caller's path stays exception-free.
func (s *contentStore) Load(ctx context.Context) (*portfolio.PortfolioModel, portfolio.LoadReport) {
	payload, err := s.backend.Read(ctx, KeyContent)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			s.logger.Warn("content document unreadable, using defaults", zap.Error(err))
		}
		return s.publish(portfolio.Default()), portfolio.LoadReport{FromDefaults: true, Cause: err}
	}

	model, err := portfolio.MergeWithDefaults(payload)
	if err != nil {
		s.logger.Warn("content document corrupted, using defaults", zap.Error(err))
		return s.publish(portfolio.Default()), portfolio.LoadReport{FromDefaults: true, Cause: err}
	}

	return s.publish(model), portfolio.LoadReport{}
}

// Save serializes the whole model and writes it under the single content
// key. Only after the write lands does the committed copy advance, so a
// failed save leaves every consumer on the previous committed state.
func (s *contentStore) Save(ctx context.Context, model *portfolio.PortfolioModel) error {
	payload, err := json.Marshal(model)
	if err != nil {
		return apperror.NewStorageFailure("serialize content failed", err)
	}

	if err := s.backend.Write(ctx, KeyContent, payload); err != nil {
		s.logger.Error("content save failed", err)
		return err
	}

	s.publish(model)
	return nil
}

func (s *contentStore) Committed() *portfolio.PortfolioModel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed.Clone()
}

func (s *contentStore) Subscribe(fn func(*portfolio.PortfolioModel)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *contentStore) publish(model *portfolio.PortfolioModel) *portfolio.PortfolioModel {
	s.mu.Lock()
	s.committed = model.Clone()
	subs := append(s.subscribers[:0:0], s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(model.Clone())
	}
	return model.Clone()
}
