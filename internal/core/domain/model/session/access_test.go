package session_test

import (
	"testing"
	"time"

	"lytefood/internal/core/domain/model/session"

	"github.com/stretchr/testify/assert"
)

func allRequirements() []session.Requirement {
	return []session.Requirement{
		session.RequireAuthenticated,
		session.RequireCourier,
		session.RequireAdmin,
		session.RequireSuperAdmin,
	}
}

func resolved(t *testing.T, roles session.Roles) session.Snapshot {
	t.Helper()
	return session.ResolvedSnapshot(mustUser(t, "tok", roles), time.Now())
}

func TestDecide_Loading(t *testing.T) {
	t.Run("loading yields placeholder with no redirect for every gate", func(t *testing.T) {
		for _, requirement := range allRequirements() {
			decision := session.Decide(session.LoadingSnapshot(), requirement)

			assert.Equal(t, session.StateLoading, decision.State)
			assert.Empty(t, decision.RedirectTo)
		}
	})
}

func TestDecide_Unauthenticated(t *testing.T) {
	now := time.Now()

	t.Run("anonymous is denied towards login for every gate", func(t *testing.T) {
		for _, requirement := range allRequirements() {
			decision := session.Decide(session.AnonymousSnapshot(now), requirement)

			assert.Equal(t, session.StateDenied, decision.State)
			assert.Equal(t, session.LoginPath, decision.RedirectTo)
		}
	})

	t.Run("user without token is denied towards login", func(t *testing.T) {
		snapshot := session.ResolvedSnapshot(mustUser(t, "", session.Roles{Admin: true}), now)

		decision := session.Decide(snapshot, session.RequireAdmin)

		assert.Equal(t, session.StateDenied, decision.State)
		assert.Equal(t, session.LoginPath, decision.RedirectTo)
	})
}

func TestDecide_Authenticated(t *testing.T) {
	t.Run("any signed-in user passes the authenticated gate", func(t *testing.T) {
		decision := session.Decide(resolved(t, session.Roles{}), session.RequireAuthenticated)

		assert.Equal(t, session.StateGranted, decision.State)
		assert.Empty(t, decision.RedirectTo)
	})
}

func TestDecide_CourierGate(t *testing.T) {
	t.Run("courier flag grants", func(t *testing.T) {
		decision := session.Decide(resolved(t, session.Roles{Courier: true}), session.RequireCourier)

		assert.Equal(t, session.StateGranted, decision.State)
	})

	t.Run("super-admin without courier flag still grants", func(t *testing.T) {
		decision := session.Decide(resolved(t, session.Roles{SuperAdmin: true}), session.RequireCourier)

		assert.Equal(t, session.StateGranted, decision.State)
	})

	t.Run("plain customer is sent back to the storefront", func(t *testing.T) {
		decision := session.Decide(resolved(t, session.Roles{}), session.RequireCourier)

		assert.Equal(t, session.StateDenied, decision.State)
		assert.Equal(t, session.HomePath, decision.RedirectTo)
	})

	t.Run("admin without courier capability is sent back too", func(t *testing.T) {
		decision := session.Decide(resolved(t, session.Roles{Admin: true}), session.RequireCourier)

		assert.Equal(t, session.StateDenied, decision.State)
		assert.Equal(t, session.HomePath, decision.RedirectTo)
	})
}

func TestDecide_AdminGate(t *testing.T) {
	t.Run("admin grants", func(t *testing.T) {
		decision := session.Decide(resolved(t, session.Roles{Admin: true}), session.RequireAdmin)

		assert.Equal(t, session.StateGranted, decision.State)
	})

	t.Run("super-admin without admin flag still grants", func(t *testing.T) {
		decision := session.Decide(resolved(t, session.Roles{SuperAdmin: true}), session.RequireAdmin)

		assert.Equal(t, session.StateGranted, decision.State)
	})

	t.Run("courier is denied towards login", func(t *testing.T) {
		decision := session.Decide(resolved(t, session.Roles{Courier: true}), session.RequireAdmin)

		assert.Equal(t, session.StateDenied, decision.State)
		assert.Equal(t, session.LoginPath, decision.RedirectTo)
	})
}

func TestDecide_SuperAdminGate(t *testing.T) {
	t.Run("super-admin grants", func(t *testing.T) {
		decision := session.Decide(resolved(t, session.Roles{SuperAdmin: true}), session.RequireSuperAdmin)

		assert.Equal(t, session.StateGranted, decision.State)
	})

	t.Run("plain admin is denied towards login", func(t *testing.T) {
		decision := session.Decide(resolved(t, session.Roles{Admin: true}), session.RequireSuperAdmin)

		assert.Equal(t, session.StateDenied, decision.State)
		assert.Equal(t, session.LoginPath, decision.RedirectTo)
	})
}

func TestDecide_Determinism(t *testing.T) {
	t.Run("same snapshot always decides the same way", func(t *testing.T) {
		snapshot := resolved(t, session.Roles{Courier: true})

		first := session.Decide(snapshot, session.RequireCourier)
		second := session.Decide(snapshot, session.RequireCourier)

		assert.Equal(t, first, second)
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "loading", session.StateLoading.String())
	assert.Equal(t, "denied", session.StateDenied.String())
	assert.Equal(t, "granted", session.StateGranted.String())
	assert.Equal(t, "denied", session.State(42).String())
}
