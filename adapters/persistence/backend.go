package persistence

import (
	"context"
	"errors"
)

// Logical document keys. One serialized JSON document lives under each.
const (
	KeyContent = "portfolio.content"
	KeyTheme   = "portfolio.theme"
	KeySession = "portfolio.session"
)

// ErrKeyNotFound reports an absent document. Callers treat it as a
// recoverable "no prior state" condition, not a failure.
var ErrKeyNotFound = errors.New("key not found")

// Backend is the durable key/document port. Write must be atomic per key:
// a document is either replaced wholesale or left untouched.
type Backend interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}
