// Package fints is the top-level facade of the FinTS/HBCI client library.
//
// It wires the dialog-establishment core (fints/dialog) to a transport and
// an external wire codec, and exposes the suspend/resume boundary to the
// application: EstablishDialog either completes and returns the dialog
// result, or hands back a serialized pending state plus the bank's
// challenge so the application can persist it, obtain the one-time code
// out of band, and continue with ResumeDialog - possibly in a different
// process.
package fints
