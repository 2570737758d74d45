package message

import "github.com/openhbci/go-fints-client/fints/segment"

// Request is an ordered sequence of segments forming one client message.
// Segment order is significant and owned by the action building the
// request.
type Request struct {
	// DialogID scopes the message to a dialog; "0" initiates a new one.
	DialogID string
	// Number is the message number within the dialog, starting at 1. A
	// continuation of a suspended exchange reuses the pending number so
	// the bank recognizes the same in-flight exchange.
	Number   int
	Segments []segment.Segment
}

// InitialDialogID is the dialog id used on the first message of a new
// dialog, before the bank assigned one.
const InitialDialogID = "0"

// NewRequest builds a request for the given dialog scope.
func NewRequest(dialogID string, number int, segments ...segment.Segment) *Request {
	if dialogID == "" {
		dialogID = InitialDialogID
	}
	return &Request{DialogID: dialogID, Number: number, Segments: segments}
}
