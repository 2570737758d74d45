package message

import (
	"errors"
	"fmt"

	"github.com/openhbci/go-fints-client/fints/segment"
)

// ErrMissingSegment marks the absence of a structurally required segment.
// Concrete failures are *MissingSegmentError values that unwrap to this
// sentinel.
var ErrMissingSegment = errors.New("fints: required segment missing")

// MissingSegmentError reports which segment kind was required but absent.
type MissingSegmentError struct {
	Segment segment.Kind
}

func (e *MissingSegmentError) Error() string {
	return fmt.Sprintf("fints: required segment %s missing from response", e.Segment)
}

func (e *MissingSegmentError) Unwrap() error { return ErrMissingSegment }

// ProtocolError is a generic validation failure: the bank answered with an
// error-severity feedback code. It is terminal for the current attempt.
type ProtocolError struct {
	Code int
	Text string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("fints: bank returned error code %04d: %s", e.Code, e.Text)
}
