// Package ports defines the contracts between the application core and the
// infrastructure: local persistence for sessions and carts, HTTP clients for
// the external Lytefood services, and the courier board cache. These
// interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/session"
)

// SessionRepository defines the persistence contract for server-side
// sessions. A session is keyed by the opaque identifier handed to the
// browser and stores the signed-in user together with the bearer token.
type SessionRepository interface {
	// Add persists a new session. The user must be valid.
	Add(ctx context.Context, id kernel.UUID, user *session.User) error

	// Get retrieves the user stored under a session identifier.
	// Returns an error wrapping errs.ErrObjectNotFound when the session
	// does not exist or its stored payload cannot be decoded; callers
	// treat either case as an anonymous session.
	Get(ctx context.Context, id kernel.UUID) (*session.User, error)

	// Delete removes a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, id kernel.UUID) error
}
