package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/Sameer-B786/portfolio/pkg/apperror"
)

// SQLiteBackend keeps every document in a single-table embedded database.
// modernc.org/sqlite needs no cgo, so the storage stays a plain local file.
type SQLiteBackend struct {
	db *sql.DB
}

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database failed: %w", err)
	}
	// Single-writer model; one connection avoids SQLITE_BUSY churn.
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		key     TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create documents table failed: %w", err)
	}

	return &SQLiteBackend{db: db}, nil
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func (b *SQLiteBackend) Read(ctx context.Context, key string) ([]byte, error) {
	query, args, err := builder.
		Select("payload").
		From("documents").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, apperror.NewStorageFailure("build read query failed", err)
	}

	var payload []byte
	err = b.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, apperror.NewStorageFailure("read document failed", err)
	}
	return payload, nil
}

func (b *SQLiteBackend) Write(ctx context.Context, key string, payload []byte) error {
	query, args, err := builder.
		Insert("documents").
		Columns("key", "payload").
		Values(key, payload).
		Suffix("ON CONFLICT(key) DO UPDATE SET payload = excluded.payload").
		ToSql()
	if err != nil {
		return apperror.NewStorageFailure("build write query failed", err)
	}

	if _, err := b.db.ExecContext(ctx, query, args...); err != nil {
		return apperror.NewStorageFailure("write document failed", err)
	}
	return nil
}

func (b *SQLiteBackend) Delete(ctx context.Context, key string) error {
	query, args, err := builder.
		Delete("documents").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return apperror.NewStorageFailure("build delete query failed", err)
	}

	if _, err := b.db.ExecContext(ctx, query, args...); err != nil {
		return apperror.NewStorageFailure("delete document failed", err)
	}
	return nil
}
