package fints

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "fints")

type bankKey struct{}
type userKey struct{}

// Context scopes a context to one bank/user pair, for log correlation.
func Context(ctx context.Context, bankCode, userID string) context.Context {
	ctx = context.WithValue(ctx, bankKey{}, bankCode)
	return context.WithValue(ctx, userKey{}, userID)
}

// BankFromContext returns the bank code set by Context.
func BankFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(bankKey{}).(string)
	return v, ok
}

// UserFromContext returns the user id set by Context.
func UserFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userKey{}).(string)
	return v, ok
}

var (
	// ErrMissingChallenge is returned when the bank signals a pending
	// security release but the response carries no challenge segment.
	ErrMissingChallenge = errors.New("fints: challenge pending but no challenge segment in response")
)
