package segment

// Kind identifies the type of a segment independent of its wire name.
type Kind int

const (
	// KindUnknown indicates an uninitialized or unrecognized segment.
	KindUnknown Kind = iota

	// KindIdentification identifies the client to the bank (HKIDN).
	KindIdentification

	// KindVersionAnnounce announces the client's cached parameter-data
	// versions and product identification (HKVVB).
	KindVersionAnnounce

	// KindTANDeclaration declares the step-up authentication mode for the
	// dialog (HKTAN).
	KindTANDeclaration

	// KindSyncRequest requests assignment of a client system id (HKSYN).
	KindSyncRequest

	// KindSyncResponse carries the assigned client system id (HISYN).
	KindSyncResponse

	// KindBankParams carries bank parameter data (HIBPA).
	KindBankParams

	// KindUserParams carries user parameter data (HIUPA).
	KindUserParams

	// KindFeedback carries a status/return code (HIRMG/HIRMS).
	KindFeedback

	// KindTANChallenge carries a step-up challenge from the bank (HITAN).
	KindTANChallenge

	// KindOperationParams carries the parameter set of one advertised
	// business operation (the HIxxxS family).
	KindOperationParams
)

// String returns the wire-level segment name.
func (k Kind) String() string {
	switch k {
	case KindIdentification:
		return "HKIDN"
	case KindVersionAnnounce:
		return "HKVVB"
	case KindTANDeclaration:
		return "HKTAN"
	case KindSyncRequest:
		return "HKSYN"
	case KindSyncResponse:
		return "HISYN"
	case KindBankParams:
		return "HIBPA"
	case KindUserParams:
		return "HIUPA"
	case KindFeedback:
		return "HIRMS"
	case KindTANChallenge:
		return "HITAN"
	case KindOperationParams:
		return "OperationParams"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the kind is a defined segment kind.
func (k Kind) IsValid() bool {
	return k > KindUnknown && k <= KindOperationParams
}

// Segment is a typed protocol segment. Implementations are plain value
// structs; the wire encoding is owned by an external codec.
type Segment interface {
	Kind() Kind
	Version() int
}
