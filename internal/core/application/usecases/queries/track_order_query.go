package queries

import (
	"errors"
	"time"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves one order for the customer's tracking page.
type TrackOrderQuery struct {
	orderID kernel.UUID
	token   string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query to track an order.
func NewTrackOrderQuery(orderID kernel.UUID, token string) (TrackOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return TrackOrderQuery{}, err
	}

	return TrackOrderQuery{
		orderID: orderID,
		token:   token,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the order to track.
func (q TrackOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Token returns the customer's bearer token.
func (q TrackOrderQuery) Token() string {
	return q.token
}

// TrackOrderQueryResponse represents an order on the tracking page. Status
// carries the raw code for machine use; StatusLabel and StatusCategory are
// what the page shows, derived from the status model so an unrecognized
// code still renders instead of breaking the page.
type TrackOrderQueryResponse struct {
	ID              string
	Status          string
	StatusLabel     string
	StatusCategory  string
	Total           string
	DeliveryAddress string
	CreatedAt       time.Time
}
