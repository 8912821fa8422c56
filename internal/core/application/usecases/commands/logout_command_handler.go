package commands

import (
	"context"
	"log/slog"

	"lytefood/internal/core/ports"
)

// LogoutCommandHandler destroys a server-side session. The auth service is
// told to invalidate the bearer token as well, but only best effort: the
// local session is gone even when that call fails, matching the rule that
// signing out always succeeds from the user's point of view.
type LogoutCommandHandler struct {
	uowFactory SessionUoWFactory
	authClient ports.AuthClient
	logger     *slog.Logger
}

// NewLogoutCommandHandler creates a handler for sign-out operations.
func NewLogoutCommandHandler(
	uowFactory SessionUoWFactory,
	authClient ports.AuthClient,
	logger *slog.Logger,
) LogoutCommandHandler {
	return LogoutCommandHandler{
		uowFactory: uowFactory,
		authClient: authClient,
		logger:     logger,
	}
}

// Handle processes the sign-out command.
func (h *LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SessionRepository().Delete(ctx, cmd.SessionID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if cmd.Token() != "" {
		if err := h.authClient.Logout(ctx, cmd.Token()); err != nil {
			h.logger.Warn("auth service logout failed", "error", err)
		}
	}

	return nil
}
