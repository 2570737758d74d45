// Package tan provides the step-up authentication support types: TAN
// methods and media as advertised by the bank, and the challenge the bank
// issues when it demands a one-time code. Selecting a method or medium is
// the application's job; this package only carries the selection.
package tan

// Method is one TAN method the bank offers (e.g. photoTAN, pushTAN,
// chipTAN).
type Method struct {
	// ID is the bank-assigned method identifier (security function code).
	ID string
	// Name is the display name advertised by the bank.
	Name string
	// Version is the method version the bank advertises for this ID.
	Version int
	// Decoupled is true for methods where the release happens entirely on
	// a second device and the client polls for completion instead of
	// submitting a code.
	Decoupled bool
}

// Medium is one TAN medium the user owns for a method, e.g. a named mobile
// device or a TAN generator card.
type Medium struct {
	Name string
	// Phone is the masked phone number for SMS-delivered codes, empty
	// otherwise.
	Phone string
}
