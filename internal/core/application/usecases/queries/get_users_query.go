package queries

import (
	"errors"

	"lytefood/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery retrieves the account directory for the super-admin
// user management screen.
type GetUsersQuery struct {
	token string

	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a query to retrieve the account directory.
func NewGetUsersQuery(token string) (GetUsersQuery, error) {
	if token == "" {
		return GetUsersQuery{}, errors.New("token is required")
	}

	return GetUsersQuery{token: token, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// Token returns the operator's bearer token.
func (q GetUsersQuery) Token() string {
	return q.token
}

// GetUsersQueryResponse represents one row of the account directory.
type GetUsersQueryResponse struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	PhoneNumber     string
	DeliveryAddress string
	Active          bool
	IsAdmin         bool
	IsSuperAdmin    bool
	IsCourier       bool
}
