// Package action defines the resumable-action contract shared by every
// action type in the library.
//
// An action can serialize its durable state into an opaque, versioned byte
// envelope before a response has been fully processed, typically while the
// bank waits for an out-of-band one-time code. The orchestrator persists the
// bytes and later restores the action to continue the same exchange, even
// across process restarts. Transient inputs (credentials, TAN selections)
// are never part of the envelope and must be re-supplied on restore.
package action

import (
	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// EnvelopeVersion is the current persisted-state layout version.
const EnvelopeVersion = 1

// Resumable is the lifecycle every suspendable action implements. Request
// building and response processing have action-specific shapes and live on
// the concrete types; the contract here covers the suspend side only.
type Resumable interface {
	// Serialize captures the durable state as an opaque envelope.
	Serialize() ([]byte, error)
	// AttemptID correlates all log output of one attempt across a
	// suspend/resume boundary. It is never sent on the wire.
	AttemptID() string
}

// Errors of the envelope codec.
var (
	ErrEnvelopeVersion = errors.New("action: unsupported state envelope version")
	ErrEnvelopeKind    = errors.New("action: state envelope kind mismatch")
)

// Base carries the generic per-attempt state embedded by concrete actions.
type Base struct {
	attemptID string
}

// NewBase initializes the generic state for a fresh attempt.
func NewBase() Base {
	return Base{attemptID: uuid.NewString()}
}

// RestoredBase re-creates the generic state of a restored attempt.
func RestoredBase(attemptID string) Base {
	if attemptID == "" {
		attemptID = uuid.NewString()
	}
	return Base{attemptID: attemptID}
}

// AttemptID returns the attempt correlation id.
func (b Base) AttemptID() string { return b.attemptID }
