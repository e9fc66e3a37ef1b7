package persistence

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Sameer-B786/portfolio/pkg/apperror"
	"github.com/Sameer-B786/portfolio/pkg/logger"
)

// SessionMarker is the local record of the currently issued edit token.
// Logout clears it, which invalidates tokens that are otherwise still
// within their lifespan.
type SessionMarker struct {
	TokenID   string    `json:"token_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore persists the marker under its own key, next to content and
// theme.
type SessionStore struct {
	backend Backend
	logger  logger.Logger
}

func NewSessionStore(backend Backend, log logger.Logger) *SessionStore {
	return &SessionStore{backend: backend, logger: log}
}

func (s *SessionStore) Put(ctx context.Context, marker SessionMarker) error {
	payload, err := json.Marshal(marker)
	if err != nil {
		return apperror.NewStorageFailure("serialize session marker failed", err)
	}
	return s.backend.Write(ctx, KeySession, payload)
}

// Get returns nil when no marker exists or the stored one is unreadable.
func (s *SessionStore) Get(ctx context.Context) *SessionMarker {
	payload, err := s.backend.Read(ctx, KeySession)
	if err != nil {
		return nil
	}
	var marker SessionMarker
	if err := json.Unmarshal(payload, &marker); err != nil {
		return nil
	}
	return &marker
}

func (s *SessionStore) Clear(ctx context.Context) error {
	return s.backend.Delete(ctx, KeySession)
}
