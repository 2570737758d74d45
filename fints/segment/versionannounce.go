package segment

// DefaultDialogLanguage is the "standard" dialog language indicator.
const DefaultDialogLanguage = 0

// VersionAnnounce announces the client's cached BPD/UPD versions and its
// registered product identification (HKVVB). A version of 0 tells the bank
// the client holds no cached copy and needs a fresh one.
type VersionAnnounce struct {
	BPDVersion     int
	UPDVersion     int
	DialogLanguage int
	ProductID      string
	ProductVersion string
}

// NewVersionAnnounce builds the version-announce segment from the cached
// parameter-data versions and the product registration.
func NewVersionAnnounce(productID, productVersion string, bpdVersion, updVersion int) *VersionAnnounce {
	return &VersionAnnounce{
		BPDVersion:     bpdVersion,
		UPDVersion:     updVersion,
		DialogLanguage: DefaultDialogLanguage,
		ProductID:      productID,
		ProductVersion: productVersion,
	}
}

func (s *VersionAnnounce) Kind() Kind   { return KindVersionAnnounce }
func (s *VersionAnnounce) Version() int { return 3 }
