package ports

import (
	"context"

	"lytefood/internal/core/domain/model/session"
)

// UserClient talks to the external user service.
type UserClient interface {
	// GetUsers lists every account for the super-admin directory.
	GetUsers(ctx context.Context, token string) ([]session.Account, error)
}
