package session

import "lytefood/internal/core/domain/model/kernel"

// Account is one row of the account directory as reported by the user
// service. Unlike User it carries no token: it is a read model for the
// super-admin administration screens, not a signed-in identity.
type Account struct {
	ID      kernel.UUID
	Email   string
	Active  bool
	Roles   Roles
	Profile Profile
}
