package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/session"
	"lytefood/internal/core/ports"
	"lytefood/internal/generated/servers"
	"lytefood/internal/pkg/errs"
)

// SessionCookieName is the cookie carrying the opaque session identifier.
const SessionCookieName = "lytefood_session"

// authContextKey is the echo context key under which the guard middleware
// stores the resolved authContext for granted requests.
const authContextKey = "lytefood.auth"

// authContext is what a granted request carries: the session identifier and
// the signed-in user.
type authContext struct {
	SessionID kernel.UUID
	User      *session.User
}

// routeRequirements maps guarded routes (method + echo route pattern) to the
// access level they demand. Routes not listed are public.
var routeRequirements = map[string]session.Requirement{
	"POST /api/v1/auth/logout":                     session.RequireAuthenticated,
	"GET /api/v1/cart":                             session.RequireAuthenticated,
	"POST /api/v1/cart/items":                      session.RequireAuthenticated,
	"DELETE /api/v1/cart/items/:menuItemId":        session.RequireAuthenticated,
	"POST /api/v1/checkout":                        session.RequireAuthenticated,
	"GET /api/v1/orders/:orderId":                  session.RequireAuthenticated,
	"GET /api/v1/orders/active":                    session.RequireAdmin,
	"PUT /api/v1/orders/:orderId/status":           session.RequireAdmin,
	"GET /api/v1/admin/users":                      session.RequireSuperAdmin,
	"GET /api/v1/courier/board":                    session.RequireCourier,
	"POST /api/v1/courier/orders/:orderId/claim":   session.RequireCourier,
	"POST /api/v1/courier/orders/:orderId/deliver": session.RequireCourier,
}

// GuardMiddleware resolves the caller's session snapshot and enforces the
// per-route access requirements via the pure session.Decide check.
type GuardMiddleware struct {
	sessions ports.SessionRepository
}

// NewGuardMiddleware creates the guard middleware on top of session storage.
func NewGuardMiddleware(sessions ports.SessionRepository) *GuardMiddleware {
	return &GuardMiddleware{sessions: sessions}
}

// Middleware returns the echo middleware enforcing route access:
//
//   - Loading decisions answer 503 with Retry-After, telling the caller to
//     render a placeholder and retry; no redirect is issued.
//   - Denied decisions answer 303 to the decision's target with
//     Cache-Control: no-store, so the redirect replaces rather than caches.
//   - Granted decisions store the authContext and pass through.
func (m *GuardMiddleware) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requirement, guarded := routeRequirements[ctx.Request().Method+" "+ctx.Path()]
			if !guarded {
				return next(ctx)
			}

			sessionID, snapshot := m.resolve(ctx)

			decision := session.Decide(snapshot, requirement)
			switch decision.State {
			case session.StateLoading:
				ctx.Response().Header().Set("Retry-After", "1")
				return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
					Code:    http.StatusServiceUnavailable,
					Message: "Session is not available yet",
				})
			case session.StateDenied:
				ctx.Response().Header().Set("Cache-Control", "no-store")
				return ctx.Redirect(http.StatusSeeOther, decision.RedirectTo)
			}

			ctx.Set(authContextKey, authContext{
				SessionID: sessionID,
				User:      snapshot.User(),
			})
			return next(ctx)
		}
	}
}

// resolve turns the request's session cookie into a snapshot. A missing or
// malformed cookie and an unknown or undecodable session all resolve to an
// anonymous snapshot; only an infrastructure failure yields a loading
// snapshot, which the guard treats as non-terminal.
func (m *GuardMiddleware) resolve(ctx echo.Context) (kernel.UUID, session.Snapshot) {
	now := time.Now()

	cookie, err := ctx.Cookie(SessionCookieName)
	if err != nil {
		return kernel.UUID{}, session.AnonymousSnapshot(now)
	}

	sessionID, err := kernel.UUIDFromString(cookie.Value)
	if err != nil {
		return kernel.UUID{}, session.AnonymousSnapshot(now)
	}

	user, err := m.sessions.Get(ctx.Request().Context(), sessionID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.UUID{}, session.AnonymousSnapshot(now)
		}
		return kernel.UUID{}, session.LoadingSnapshot()
	}

	return sessionID, session.ResolvedSnapshot(user, now)
}

// currentAuth returns the granted request's auth context. The guard
// middleware guarantees it is present on guarded routes.
func currentAuth(ctx echo.Context) (authContext, bool) {
	auth, ok := ctx.Get(authContextKey).(authContext)
	return auth, ok
}
