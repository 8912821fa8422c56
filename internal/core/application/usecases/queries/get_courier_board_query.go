package queries

import (
	"errors"
	"time"

	"lytefood/internal/core/domain/model/session"
	"lytefood/internal/pkg/guard"
)

var ErrGetCourierBoardQueryIsNotConstructed = errors.New(
	"GetCourierBoardQuery must be created via NewGetCourierBoardQuery constructor",
)

// GetCourierBoardQuery retrieves the courier dashboard: orders ready to
// claim and orders on the road. Served from the cache the background job
// rebuilds every 30 seconds, so the dashboard stays fast and a slow order
// service never blocks a courier mid-shift.
type GetCourierBoardQuery struct {
	roles session.Roles

	guard guard.ConstructorGuard
}

// NewGetCourierBoardQuery creates a query to retrieve the courier board.
func NewGetCourierBoardQuery(roles session.Roles) GetCourierBoardQuery {
	return GetCourierBoardQuery{
		roles: roles,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCourierBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierBoardQueryIsNotConstructed)
}

// Roles returns the courier's capability flags.
func (q GetCourierBoardQuery) Roles() session.Roles {
	return q.roles
}

// GetCourierBoardQueryOrderResponse represents one order on the board.
type GetCourierBoardQueryOrderResponse struct {
	ID              string
	Status          string
	StatusLabel     string
	StatusCategory  string
	AllowedNext     []string
	DeliveryAddress string
}

// GetCourierBoardQueryResponse represents the courier dashboard.
// RefreshedAt tells the dashboard how stale its data is.
type GetCourierBoardQueryResponse struct {
	Available   []GetCourierBoardQueryOrderResponse
	EnRoute     []GetCourierBoardQueryOrderResponse
	RefreshedAt time.Time
}
