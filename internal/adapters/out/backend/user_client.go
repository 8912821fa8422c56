package backend

import (
	"context"
	"net/http"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/session"
)

// HTTPUserClient implements ports.UserClient against the user service.
type HTTPUserClient struct {
	restClient
}

// NewHTTPUserClient creates a user service client.
func NewHTTPUserClient(baseURL string, client httpDoer) *HTTPUserClient {
	return &HTTPUserClient{restClient: newRestClient(baseURL, client)}
}

type accountResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number"`
	DeliveryAddress string `json:"delivery_address"`
	IsActive        bool   `json:"is_active"`
	IsAdmin         bool   `json:"is_admin"`
	IsSuperAdmin    bool   `json:"is_super_admin"`
	IsLivreur       bool   `json:"is_livreur"`
}

// GetUsers lists every account. The operator's token is forwarded; the
// user service enforces the super-admin gate on its side as well.
func (c *HTTPUserClient) GetUsers(ctx context.Context, token string) ([]session.Account, error) {
	var resp []accountResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/super_admin/users", token, nil, &resp); err != nil {
		return nil, err
	}

	accounts := make([]session.Account, 0, len(resp))
	for _, raw := range resp {
		id, err := kernel.UUIDFromString(raw.ID)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, session.Account{
			ID:     id,
			Email:  raw.Email,
			Active: raw.IsActive,
			Roles: session.Roles{
				Admin:      raw.IsAdmin,
				SuperAdmin: raw.IsSuperAdmin,
				Courier:    raw.IsLivreur,
			},
			Profile: session.Profile{
				FirstName:       raw.FirstName,
				LastName:        raw.LastName,
				PhoneNumber:     raw.PhoneNumber,
				DeliveryAddress: raw.DeliveryAddress,
			},
		})
	}

	return accounts, nil
}
