package segment

// UnregisteredSystemID is the sentinel client system id sent while the
// client has not yet been assigned one via synchronization.
const UnregisteredSystemID = "0"

// CountryCode is the ISO 3166 numeric country code for Germany, fixed for
// FinTS bank identifications.
const CountryCode = 280

// Identification identifies the customer and client system to the bank
// (HKIDN). It is always the first segment of a dialog-initiation message.
type Identification struct {
	BankCode       string
	UserID         string
	ClientSystemID string
	// SystemIDRequired is 1 when the client participates in system id
	// management (PIN/TAN clients always do).
	SystemIDRequired int
}

// NewIdentification builds the identification segment. An empty
// clientSystemID is replaced by the unregistered sentinel.
func NewIdentification(bankCode, userID, clientSystemID string) *Identification {
	if clientSystemID == "" {
		clientSystemID = UnregisteredSystemID
	}
	return &Identification{
		BankCode:         bankCode,
		UserID:           userID,
		ClientSystemID:   clientSystemID,
		SystemIDRequired: 1,
	}
}

func (s *Identification) Kind() Kind   { return KindIdentification }
func (s *Identification) Version() int { return 2 }
