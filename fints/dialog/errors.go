package dialog

import "errors"

// Establishment errors. All are terminal for the current attempt; the core
// never retries.
var (
	// ErrMissingClientSystemID is returned when the synchronization
	// response is present but carries no usable client system id.
	ErrMissingClientSystemID = errors.New("dialog: synchronization response carried no client system id")

	// ErrMissingParameterData is returned when a strongly authenticated
	// response carries no parameter data and none is cached client-side.
	// Proceeding silently would leave the client ignorant of the
	// operations available to it.
	ErrMissingParameterData = errors.New("dialog: no parameter data in response and none cached")

	// ErrClientSystemIDChanged is returned when a continued attempt
	// receives a synchronization response that disagrees with the client
	// system id assigned earlier. The id transitions at most once; it is
	// never overwritten.
	ErrClientSystemIDChanged = errors.New("dialog: bank returned a different client system id")

	// ErrInvalidAuthRef is returned when the authentication reference is
	// malformed.
	ErrInvalidAuthRef = errors.New("dialog: invalid authentication reference")
)
