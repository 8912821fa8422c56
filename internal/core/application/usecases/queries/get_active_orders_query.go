package queries

import (
	"errors"
	"time"

	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/core/domain/model/session"
	"lytefood/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves the kitchen workload for the admin
// dashboard: orders that were paid for but not yet handed to a courier.
type GetActiveOrdersQuery struct {
	roles session.Roles
	token string

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve the active orders.
func NewGetActiveOrdersQuery(roles session.Roles, token string) (GetActiveOrdersQuery, error) {
	if token == "" {
		return GetActiveOrdersQuery{}, errors.New("token is required")
	}

	return GetActiveOrdersQuery{
		roles: roles,
		token: token,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Roles returns the operator's capability flags.
func (q GetActiveOrdersQuery) Roles() session.Roles {
	return q.roles
}

// Token returns the operator's bearer token.
func (q GetActiveOrdersQuery) Token() string {
	return q.token
}

// GetActiveOrdersQueryResponse represents one row of the admin dashboard.
// AllowedNext carries the raw codes the operator may move the order to,
// which is what the dashboard's status dropdown is built from.
type GetActiveOrdersQueryResponse struct {
	ID              string
	Status          string
	StatusLabel     string
	StatusCategory  string
	AllowedNext     []string
	Total           string
	DeliveryAddress string
	CreatedAt       time.Time
}

// buildStatusView fills the shared status fields of a dashboard row.
func buildStatusView(status order.Status, role order.Role) (label, category string, allowedNext []string) {
	next := status.AllowedNext(role)
	codes := make([]string, 0, len(next))
	for _, s := range next {
		codes = append(codes, string(s))
	}
	return status.DisplayLabel(), status.DisplayCategory().String(), codes
}
