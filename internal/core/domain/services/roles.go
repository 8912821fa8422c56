package services

import (
	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/core/domain/model/session"
)

// ActingRole maps session capability flags onto the transition role used by
// the status model. The strongest capability wins, so a super-admin acts
// with the union table even when the admin or courier flag is unset.
func ActingRole(roles session.Roles) order.Role {
	switch {
	case roles.SuperAdmin:
		return order.RoleSuperAdmin
	case roles.Admin:
		return order.RoleAdmin
	case roles.Courier:
		return order.RoleCourier
	default:
		return order.RoleCustomer
	}
}
