// Package segment models the individual protocol segments exchanged during
// a FinTS PIN/TAN dialog as typed, structured values.
//
// A segment is a self-contained unit within a larger protocol message. This
// package only describes segment content; the textual wire encoding (DEG
// syntax, escaping, segment headers on the wire) is the job of an external
// codec and deliberately not part of this package.
//
// Request segments are built through factory constructors (NewIdentification,
// NewVersionAnnounce, NewTANDeclaration, NewSyncRequest) so that callers
// cannot produce half-initialized segments. Response segments (SyncResponse,
// Feedback, BankParams, UserParams, TANChallenge) are plain structs filled
// by the codec.
package segment
