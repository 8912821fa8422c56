package commands

import (
	"errors"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

// LogoutCommand represents a request to destroy a server-side session.
type LogoutCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	token     string

	guard guard.ConstructorGuard
}

// NewLogoutCommand creates a command to sign out. The token may be empty
// when the stored session never carried one.
func NewLogoutCommand(sessionID kernel.UUID, token string) (LogoutCommand, error) {
	logoutCommand := LogoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := logoutCommand.setSessionID(sessionID); err != nil {
		return LogoutCommand{}, err
	}
	logoutCommand.token = token

	return logoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

// SessionID returns the session to destroy.
func (c LogoutCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Token returns the bearer token to invalidate with the auth service.
func (c LogoutCommand) Token() string {
	return c.token
}

func (c *LogoutCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
