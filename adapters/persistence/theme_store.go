package persistence

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/Sameer-B786/portfolio/pkg/apperror"
	"github.com/Sameer-B786/portfolio/pkg/logger"
)

const defaultTheme = "dark"

type themeDocument struct {
	Theme string `json:"theme"`
}

// ThemeStore persists the theme preference under its own key, separate from
// the content document.
type ThemeStore struct {
	backend Backend
	logger  logger.Logger
}

func NewThemeStore(backend Backend, log logger.Logger) *ThemeStore {
	return &ThemeStore{backend: backend, logger: log}
}

// Get degrades to the default theme on any failure, same as content load.
func (s *ThemeStore) Get(ctx context.Context) string {
	payload, err := s.backend.Read(ctx, KeyTheme)
	if err != nil {
		return defaultTheme
	}

	var doc themeDocument
	if err := json.Unmarshal(payload, &doc); err != nil || doc.Theme == "" {
		s.logger.Warn("theme document corrupted, using default", zap.Error(err))
		return defaultTheme
	}
	return doc.Theme
}

func (s *ThemeStore) Set(ctx context.Context, theme string) error {
	payload, err := json.Marshal(themeDocument{Theme: theme})
	if err != nil {
		return apperror.NewStorageFailure("serialize theme failed", err)
	}
	return s.backend.Write(ctx, KeyTheme, payload)
}
