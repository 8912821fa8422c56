package session

// Requirement is the access level a guarded route demands.
type Requirement int

const (
	// RequireAuthenticated admits any signed-in user.
	RequireAuthenticated Requirement = iota
	// RequireCourier admits couriers and super-admins.
	RequireCourier
	// RequireAdmin admits admins and super-admins.
	RequireAdmin
	// RequireSuperAdmin admits super-admins only.
	RequireSuperAdmin
)

// State is the outcome of an access decision.
type State int

const (
	// StateLoading means the session was not resolved yet. The caller shows
	// a placeholder and must not redirect.
	StateLoading State = iota
	// StateDenied means access was refused. Decision.RedirectTo names where
	// to send the caller; the redirect replaces the current history entry so
	// back navigation cannot bounce off the guard.
	StateDenied
	// StateGranted means the guarded content may be served.
	StateGranted
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateDenied:
		return "denied"
	case StateGranted:
		return "granted"
	default:
		return "denied"
	}
}

// Redirect targets for denied decisions. Unauthenticated visitors and
// visitors failing the admin gates go to the login page; a signed-in
// non-courier hitting a courier route goes back to the storefront.
const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Decision is the result of evaluating a snapshot against a requirement.
// RedirectTo is set only when State is StateDenied.
type Decision struct {
	State      State
	RedirectTo string
}

func granted() Decision {
	return Decision{State: StateGranted}
}

func denied(redirectTo string) Decision {
	return Decision{State: StateDenied, RedirectTo: redirectTo}
}

// Decide evaluates an explicit session snapshot against a route requirement.
// It is pure: the outcome depends on the snapshot alone, never on live
// session state, so repeated calls with the same snapshot always agree.
//
// A loading snapshot yields StateLoading with no redirect. Unauthenticated
// snapshots, including users whose stored token expired, are denied towards
// the login page. Role gates then apply on top of authentication, with
// super-admin satisfying every gate.
func Decide(snapshot Snapshot, requirement Requirement) Decision {
	if snapshot.Loading() {
		return Decision{State: StateLoading}
	}
	if !snapshot.IsAuthenticated() {
		return denied(LoginPath)
	}

	roles := snapshot.User().Roles()
	switch requirement {
	case RequireAuthenticated:
		return granted()
	case RequireCourier:
		if roles.Courier || roles.SuperAdmin {
			return granted()
		}
		return denied(HomePath)
	case RequireAdmin:
		if roles.Admin || roles.SuperAdmin {
			return granted()
		}
		return denied(LoginPath)
	case RequireSuperAdmin:
		if roles.SuperAdmin {
			return granted()
		}
		return denied(LoginPath)
	default:
		return denied(LoginPath)
	}
}
