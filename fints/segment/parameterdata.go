package segment

// BankParams carries the bank parameter data (HIBPA): the bank-side
// description of the protocol features and operations it supports.
type BankParams struct {
	BPDVersion      int
	BankCode        string
	BankName        string
	MaxTransactions int
	// SupportedLanguages lists the dialog languages the bank accepts.
	SupportedLanguages []int
}

func (s *BankParams) Kind() Kind   { return KindBankParams }
func (s *BankParams) Version() int { return 3 }

// UserParams carries the user parameter data (HIUPA): which operations the
// authenticated user may actually execute.
type UserParams struct {
	UserID     string
	UPDVersion int
	// Usage indicates how to interpret missing operations (0: everything
	// not listed is forbidden, 1: allowed).
	Usage int
}

func (s *UserParams) Kind() Kind   { return KindUserParams }
func (s *UserParams) Version() int { return 4 }

// Operation is the parameter set of one advertised business operation (the
// HIxxxS segment family). Only the identity is modeled here; the
// operation-specific parameters stay with the codec until a concrete action
// needs them.
type Operation struct {
	// Name is the wire name of the parameter segment, e.g. "HIKAZS".
	Name string
	// Ver is the advertised operation version.
	Ver int
}

func (s *Operation) Kind() Kind   { return KindOperationParams }
func (s *Operation) Version() int { return s.Ver }
