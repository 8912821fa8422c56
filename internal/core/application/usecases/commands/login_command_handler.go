package commands

import (
	"context"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/session"
	"lytefood/internal/core/ports"
)

// LoginCommandHandler signs a user in: it exchanges credentials with the
// auth service and stores the returned account in a fresh server-side
// session. The new session identifier is what the HTTP layer hands to the
// browser as its cookie.
type LoginCommandHandler struct {
	uowFactory SessionUoWFactory
	authClient ports.AuthClient
}

// NewLoginCommandHandler creates a handler for sign-in operations.
func NewLoginCommandHandler(uowFactory SessionUoWFactory, authClient ports.AuthClient) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		authClient: authClient,
	}
}

// Handle processes the sign-in command. Returns the new session identifier
// and the signed-in user. Rejected credentials surface as an error from the
// auth client; no session is created in that case.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (kernel.UUID, *session.User, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, nil, err
	}

	user, err := h.authClient.Login(ctx, cmd.Email(), cmd.Password())
	if err != nil {
		return kernel.UUID{}, nil, err
	}

	sessionID := kernel.NewUUID()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.SessionRepository().Add(ctx, sessionID, user); err != nil {
		return kernel.UUID{}, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, nil, err
	}

	return sessionID, user, nil
}
