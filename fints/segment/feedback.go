package segment

// Severity classifies a feedback code.
type Severity int

const (
	// SeveritySuccess covers codes 0001-0999.
	SeveritySuccess Severity = iota

	// SeverityWarning covers codes 3000-3999.
	SeverityWarning

	// SeverityError covers codes 9000-9999. Any error code aborts the
	// current attempt.
	SeverityError
)

// Well-known feedback codes.
const (
	// CodeChallengePending signals that the order was accepted but a
	// security release (one-time code) is required before it executes.
	CodeChallengePending = 30

	// CodeDecoupledPending signals that a decoupled release on a second
	// device has not been confirmed yet. Classified as a warning, but the
	// exchange is suspended just like for CodeChallengePending.
	CodeDecoupledPending = 3956

	// CodeStrongAuthRequired warns that strong customer authentication is
	// required for the dialog.
	CodeStrongAuthRequired = 3920
)

// Feedback is a single status/return code from the bank (HIRMG for the
// whole message, HIRMS for an individual segment).
type Feedback struct {
	Code int
	Text string
	// ReferenceSegment is the number of the request segment this code
	// refers to, 0 for message-level feedback.
	ReferenceSegment int
	// Params carries code-specific parameters, e.g. the allowed TAN
	// methods for code 3920.
	Params []string
}

// Severity classifies the feedback code into success, warning or error.
func (f *Feedback) Severity() Severity {
	switch {
	case f.Code >= 9000:
		return SeverityError
	case f.Code >= 3000:
		return SeverityWarning
	default:
		return SeveritySuccess
	}
}

func (f *Feedback) Kind() Kind   { return KindFeedback }
func (f *Feedback) Version() int { return 2 }
