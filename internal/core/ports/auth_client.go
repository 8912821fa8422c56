package ports

import (
	"context"

	"lytefood/internal/core/domain/model/session"
)

// AuthClient talks to the external auth service.
type AuthClient interface {
	// Login exchanges credentials for the account and its bearer token.
	// Returns an error wrapping errs.ErrObjectNotFound for rejected
	// credentials.
	Login(ctx context.Context, email, password string) (*session.User, error)

	// Logout invalidates a bearer token server-side. Best effort: the local
	// session is destroyed regardless of the outcome.
	Logout(ctx context.Context, token string) error
}
