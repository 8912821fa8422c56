package commands

import (
	"errors"

	"lytefood/internal/pkg/guard"
)

var ErrRefreshCourierBoardCommandIsNotConstructed = errors.New(
	"RefreshCourierBoardCommand must be created via NewRefreshCourierBoardCommand constructor",
)

// RefreshCourierBoardCommand represents a request to rebuild the cached
// courier board from the order service. Issued by the background job on
// every tick; it carries the service account token the job runs under.
type RefreshCourierBoardCommand struct { //nolint:recvcheck //using for validation
	token string

	guard guard.ConstructorGuard
}

// NewRefreshCourierBoardCommand creates a command to refresh the board.
func NewRefreshCourierBoardCommand(token string) (RefreshCourierBoardCommand, error) {
	refreshCommand := RefreshCourierBoardCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := refreshCommand.setToken(token); err != nil {
		return RefreshCourierBoardCommand{}, err
	}

	return refreshCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshCourierBoardCommand) Validate() error {
	return c.guard.Validate(ErrRefreshCourierBoardCommandIsNotConstructed)
}

// Token returns the service account token used for the refresh.
func (c RefreshCourierBoardCommand) Token() string {
	return c.token
}

func (c *RefreshCourierBoardCommand) setToken(token string) error {
	if token == "" {
		return ErrTokenIsRequired
	}

	c.token = token
	return nil
}
