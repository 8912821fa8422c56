package backend

import (
	"context"
	"errors"
	"net/http"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/session"
	"lytefood/internal/pkg/errs"
)

// HTTPAuthClient implements ports.AuthClient against the auth service.
type HTTPAuthClient struct {
	restClient
}

// NewHTTPAuthClient creates an auth service client. A nil http client gets
// a default with a request timeout.
func NewHTTPAuthClient(baseURL string, client httpDoer) *HTTPAuthClient {
	return &HTTPAuthClient{restClient: newRestClient(baseURL, client)}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Token           string `json:"token"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number"`
	DeliveryAddress string `json:"delivery_address"`
	IsAdmin         bool   `json:"is_admin"`
	IsSuperAdmin    bool   `json:"is_super_admin"`
	IsLivreur       bool   `json:"is_livreur"`
}

// Login exchanges credentials for the account and its bearer token.
// A 401 from the auth service surfaces as an object-not-found error so the
// HTTP layer can answer with a uniform "invalid credentials" message.
func (c *HTTPAuthClient) Login(ctx context.Context, email, password string) (*session.User, error) {
	var resp loginResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusUnauthorized {
			return nil, errs.NewObjectNotFoundErrorWithCause("credentials", email, err)
		}
		return nil, err
	}

	userID, err := kernel.UUIDFromString(resp.ID)
	if err != nil {
		return nil, err
	}

	return session.NewUser(
		userID,
		resp.Email,
		resp.Token,
		session.Roles{
			Admin:      resp.IsAdmin,
			SuperAdmin: resp.IsSuperAdmin,
			Courier:    resp.IsLivreur,
		},
		session.Profile{
			FirstName:       resp.FirstName,
			LastName:        resp.LastName,
			PhoneNumber:     resp.PhoneNumber,
			DeliveryAddress: resp.DeliveryAddress,
		},
	)
}

// Logout invalidates a bearer token server-side.
func (c *HTTPAuthClient) Logout(ctx context.Context, token string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil)
}
