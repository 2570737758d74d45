package segment

// TAN process variants for the HKTAN segment.
const (
	// ProcessDeclare declares the step-up mode for a dialog-initiation
	// message in one step. Used both for weakly authenticated dialogs
	// (advertising step-up capability without a bound order) and for
	// strong authentication bound to another segment.
	ProcessDeclare = "4"

	// ProcessContinue references an in-flight order after the bank
	// demanded a one-time code, continuing the same exchange.
	ProcessContinue = "2"
)

// TANDeclaration declares the step-up authentication mode for the dialog
// (HKTAN). Exactly one instance appears in every dialog-initiation message.
type TANDeclaration struct {
	Process string
	// BoundSegment is the wire name of the segment the challenge is bound
	// to (e.g. "HKIDN" for strong dialog initiation). Empty for weak
	// authentication.
	BoundSegment string
	// MethodID is the selected TAN method, if any.
	MethodID string
	// MediumName is the selected TAN medium, if any. Some banks require it
	// when the user owns more than one medium for the method.
	MediumName string
	// TaskReference references the bank's pending task when continuing a
	// suspended exchange. Empty otherwise.
	TaskReference string
}

// NewTANDeclaration builds the declaration for a dialog-initiation message.
// boundSegment is empty for weakly authenticated dialogs.
func NewTANDeclaration(methodID, mediumName, boundSegment string) *TANDeclaration {
	return &TANDeclaration{
		Process:      ProcessDeclare,
		BoundSegment: boundSegment,
		MethodID:     methodID,
		MediumName:   mediumName,
	}
}

// NewTANContinuation builds the declaration that continues a suspended
// exchange once the user supplied the one-time code out of band.
func NewTANContinuation(methodID, mediumName, taskReference string) *TANDeclaration {
	return &TANDeclaration{
		Process:       ProcessContinue,
		MethodID:      methodID,
		MediumName:    mediumName,
		TaskReference: taskReference,
	}
}

func (s *TANDeclaration) Kind() Kind   { return KindTANDeclaration }
func (s *TANDeclaration) Version() int { return 6 }
