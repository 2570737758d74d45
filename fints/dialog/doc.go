// Package dialog implements dialog establishment: the stateful handshake
// that opens a session with the bank before any business operation can run.
//
// Establishment reconciles three independent concerns into one correct
// request: the authentication strength (weak for fetching bank parameter
// data, strong for PSD2-style step-up), first-time client registration
// (synchronization of a client system id), and continuation of a
// challenge-response exchange after the bank demanded a one-time code.
//
// # Protocol Flow
//
//	Client                                  Bank
//	------                                  ----
//	New(ctx)                                |
//	segs = BuildRequest(cached)   ------>   |
//	                              <------   response
//	ProcessResponse(resp, cached)
//	  -> *Result, or
//	  -> suspend: Serialize(), persist, await one-time code,
//	     Restore(), continue with the pending message number
//
// The attempt is single-threaded and synchronous: one outstanding round
// trip at a time, no internal retries. Every failure ProcessResponse
// detects is terminal for the attempt; only the dialog id is recorded
// before failing, so the orchestrator can explicitly close the
// half-established dialog.
//
// Transient inputs (credentials, TAN selections) live in Context and are
// never serialized; the orchestrator re-supplies them on every
// construction, including after a restore.
package dialog
