package domain

import (
	"time"

	"github.com/google/uuid"
)

// CaptureID uniquely identifies a journaled capture.
type CaptureID uuid.UUID

// SessionID identifies one scanner process run. All captures recorded by the
// same controller share it.
type SessionID uuid.UUID

// NewSessionID returns a random session identifier.
func NewSessionID() SessionID { return SessionID(uuid.New()) }

// String returns the canonical UUID text form.
func (id SessionID) String() string { return uuid.UUID(id).String() }

// String returns the canonical UUID text form.
func (id CaptureID) String() string { return uuid.UUID(id).String() }

// Capture is an accepted, normalized detection recorded in the capture journal.
type Capture struct {
	// ID is assigned by the storage layer.
	ID CaptureID `json:"id"`
	// SessionID is the scanner run that captured the code.
	SessionID SessionID `json:"sessionId"`

	// Code is the normalized code value.
	Code string `json:"code"`
	// Type is the normalized symbology name.
	Type string `json:"type"`

	// CapturedAt is when the controller emitted the result.
	CapturedAt time.Time `json:"capturedAt"`
	// CreatedAt is when the record was written.
	CreatedAt time.Time `json:"createdAt"`
}
