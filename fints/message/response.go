package message

import "github.com/openhbci/go-fints-client/fints/segment"

// Header carries the message-header data of a bank response.
type Header struct {
	// DialogID is the dialog handle assigned by the bank. Present even on
	// failing responses, so the orchestrator can explicitly close the
	// dialog.
	DialogID string
	// Number is the message number this response belongs to.
	Number int
}

// Response is one decoded bank message.
type Response struct {
	Header   Header
	Segments []segment.Segment
	// Feedback holds all message- and segment-level return codes in the
	// order they appeared.
	Feedback []*segment.Feedback
}

// FindSegment returns the first segment of the given kind, or nil.
func (r *Response) FindSegment(kind segment.Kind) segment.Segment {
	for _, s := range r.Segments {
		if s.Kind() == kind {
			return s
		}
	}
	return nil
}

// RequireSegment returns the first segment of the given kind or a
// *MissingSegmentError.
func (r *Response) RequireSegment(kind segment.Kind) (segment.Segment, error) {
	if s := r.FindSegment(kind); s != nil {
		return s, nil
	}
	return nil, &MissingSegmentError{Segment: kind}
}

// ChallengePending reports whether the bank accepted the message but
// demands a one-time code before it executes.
func (r *Response) ChallengePending() bool {
	for _, f := range r.Feedback {
		if f.Code == segment.CodeChallengePending || f.Code == segment.CodeDecoupledPending {
			return true
		}
	}
	return false
}
