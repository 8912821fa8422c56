package queries

import (
	"context"

	"lytefood/internal/core/ports"
)

// GetUsersQueryHandler lists every account from the user service for the
// super-admin directory.
type GetUsersQueryHandler struct {
	userClient ports.UserClient
}

// NewGetUsersQueryHandler creates a handler for account directory queries.
func NewGetUsersQueryHandler(userClient ports.UserClient) GetUsersQueryHandler {
	return GetUsersQueryHandler{userClient: userClient}
}

// Handle executes the account directory query.
func (h GetUsersQueryHandler) Handle(ctx context.Context, query GetUsersQuery) ([]GetUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accounts, err := h.userClient.GetUsers(ctx, query.Token())
	if err != nil {
		return nil, err
	}

	responses := make([]GetUsersQueryResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, GetUsersQueryResponse{
			ID:              account.ID.String(),
			Email:           account.Email,
			FirstName:       account.Profile.FirstName,
			LastName:        account.Profile.LastName,
			PhoneNumber:     account.Profile.PhoneNumber,
			DeliveryAddress: account.Profile.DeliveryAddress,
			Active:          account.Active,
			IsAdmin:         account.Roles.Admin,
			IsSuperAdmin:    account.Roles.SuperAdmin,
			IsCourier:       account.Roles.Courier,
		})
	}

	return responses, nil
}
