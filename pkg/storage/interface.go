// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"time"

	"codescanner/pkg/domain"
)

// CapturePage groups a page of captures together with an optional NextCursor
// used for pagination.
type CapturePage struct {
	// Captures contains the current page, newest first.
	Captures []domain.Capture
	// NextCursor is passed back to fetch the next page. It is nil when there
	// is no next page.
	NextCursor *CaptureCursor
}

// CaptureStorage persists codes emitted by the scanner.
type CaptureStorage interface {
	// StoreCaptures inserts one or more captures and returns the stored rows
	// including generated fields.
	StoreCaptures(ctx context.Context, captures ...domain.Capture) ([]domain.Capture, error)
	// RecentCaptures returns captures after the optional cursor, newest first,
	// limited by limit. A zero sessionID matches every session.
	RecentCaptures(ctx context.Context, sessionID domain.SessionID, cursor CaptureCursor, limit uint) (CapturePage, error)
	// CaptureByID returns a capture or nil when it does not exist.
	CaptureByID(ctx context.Context, id domain.CaptureID) (*domain.Capture, error)
	// DeleteCapturesBefore removes captures taken before t and returns how
	// many rows were deleted.
	DeleteCapturesBefore(ctx context.Context, t time.Time) (int64, error)
}

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	CaptureStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and commits on success
	// or rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
