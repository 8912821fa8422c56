package session

import (
	"errors"
	"time"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/pkg/errs"
	"lytefood/internal/pkg/guard"

	"github.com/golang-jwt/jwt/v5"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser")

// Roles holds the capability flags reported by the auth service. SuperAdmin
// is a superset: it satisfies both the admin and the courier gates without
// the corresponding flag being set.
type Roles struct {
	Admin      bool
	SuperAdmin bool
	Courier    bool
}

// Profile holds the contact details of the account. All fields are optional
// free text owned by the auth service.
type Profile struct {
	FirstName       string
	LastName        string
	PhoneNumber     string
	DeliveryAddress string
}

// User is the locally cached account of the signed-in person, together with
// the bearer token issued at login. It is referenced, not owned: the auth
// service is the authority and this copy is only good enough for access
// decisions and display.
type User struct {
	id      kernel.UUID
	email   string
	token   string
	roles   Roles
	profile Profile

	guard guard.ConstructorGuard
}

// NewUser creates a user from the auth service payload. An empty token is
// allowed; such a user exists but never authenticates a session.
func NewUser(id kernel.UUID, email, token string, roles Roles, profile Profile) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	return &User{
		id:      id,
		email:   email,
		token:   token,
		roles:   roles,
		profile: profile,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the User was created through NewUser.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the account identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Email returns the login email.
func (u *User) Email() string { return u.email }

// Token returns the bearer token issued at login, or "" when absent.
func (u *User) Token() string { return u.token }

// Roles returns the capability flags.
func (u *User) Roles() Roles { return u.roles }

// Profile returns the contact details.
func (u *User) Profile() Profile { return u.profile }

// HasValidToken reports whether the stored token can still authenticate
// requests at the given instant. An empty token never can. A token that
// parses as a JWT with an expiry in the past is rejected locally; anything
// else, including opaque tokens and JWTs without a readable exp claim, is
// passed through and left for the auth service to judge.
func (u *User) HasValidToken(now time.Time) bool {
	if u == nil || u.token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(u.token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(now)
}

// Snapshot captures the session as it stood when an access decision was
// requested. Snapshots are immutable; deciding the same snapshot twice
// yields the same outcome regardless of what the live session does in
// between.
type Snapshot struct {
	loading bool
	user    *User
	takenAt time.Time
}

// LoadingSnapshot represents a session still being restored from storage.
func LoadingSnapshot() Snapshot {
	return Snapshot{loading: true}
}

// AnonymousSnapshot represents a resolved session with nobody signed in.
// Parse failures on stored sessions resolve here rather than erroring.
func AnonymousSnapshot(takenAt time.Time) Snapshot {
	return Snapshot{takenAt: takenAt}
}

// ResolvedSnapshot captures a resolved session. A nil user is equivalent to
// AnonymousSnapshot.
func ResolvedSnapshot(user *User, takenAt time.Time) Snapshot {
	return Snapshot{user: user, takenAt: takenAt}
}

// Loading reports whether the session was still being restored.
func (s Snapshot) Loading() bool { return s.loading }

// User returns the signed-in user, or nil for anonymous snapshots.
func (s Snapshot) User() *User { return s.user }

// TakenAt returns the instant the snapshot was captured.
func (s Snapshot) TakenAt() time.Time { return s.takenAt }

// IsAuthenticated reports whether the snapshot carries a signed-in user
// whose token was still valid at capture time.
func (s Snapshot) IsAuthenticated() bool {
	return !s.loading && s.user != nil && s.user.HasValidToken(s.takenAt)
}
