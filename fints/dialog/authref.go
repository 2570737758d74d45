package dialog

// AuthKind enumerates the authentication strengths of an establishment
// attempt.
type AuthKind int

const (
	// AuthNone opens a weakly authenticated dialog, used to fetch bank
	// parameter data before the user authenticates. The TAN declaration
	// still advertises step-up capability, but binds no order.
	AuthNone AuthKind = iota

	// AuthIdentification binds the step-up challenge to the
	// identification segment: the standard strong dialog initiation.
	AuthIdentification

	// AuthSpecial binds the step-up challenge to an explicitly named
	// segment, for banks that demand a release on a specific order type.
	AuthSpecial
)

// String returns a human-readable name for the authentication kind.
func (k AuthKind) String() string {
	switch k {
	case AuthNone:
		return "None"
	case AuthIdentification:
		return "Identification"
	case AuthSpecial:
		return "Special"
	default:
		return "Invalid"
	}
}

// IsValid returns true if the kind is a defined value.
func (k AuthKind) IsValid() bool {
	return k == AuthNone || k == AuthIdentification || k == AuthSpecial
}

// AuthRef is the closed authentication reference of an attempt: none
// (weak), identification (strong), or a special segment binding. It is
// fixed for the attempt's lifetime.
type AuthRef struct {
	kind       AuthKind
	segmentRef string
}

// NoAuth returns the weak authentication reference.
func NoAuth() AuthRef { return AuthRef{kind: AuthNone} }

// IdentificationAuth returns the strong authentication reference bound to
// the identification segment.
func IdentificationAuth() AuthRef { return AuthRef{kind: AuthIdentification} }

// SpecialAuth returns an authentication reference bound to the named
// segment.
func SpecialAuth(segmentRef string) AuthRef {
	return AuthRef{kind: AuthSpecial, segmentRef: segmentRef}
}

// Kind returns the authentication strength.
func (a AuthRef) Kind() AuthKind { return a.kind }

// BoundSegment returns the wire name of the segment the step-up challenge
// is bound to, or "" for weak authentication.
func (a AuthRef) BoundSegment() string {
	switch a.kind {
	case AuthIdentification:
		return "HKIDN"
	case AuthSpecial:
		return a.segmentRef
	default:
		return ""
	}
}

// IsValid reports whether the reference is well formed: a special binding
// must name a segment, the other kinds must not.
func (a AuthRef) IsValid() bool {
	if !a.kind.IsValid() {
		return false
	}
	if a.kind == AuthSpecial {
		return a.segmentRef != ""
	}
	return a.segmentRef == ""
}
