package queries

import (
	"context"

	"lytefood/internal/core/ports"
)

// TrackOrderQueryHandler renders one order for the customer tracking page.
type TrackOrderQueryHandler struct {
	orderClient ports.OrderClient
}

// NewTrackOrderQueryHandler creates a handler for tracking queries.
func NewTrackOrderQueryHandler(orderClient ports.OrderClient) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{orderClient: orderClient}
}

// Handle executes the tracking query.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	aggregate, err := h.orderClient.Get(ctx, query.Token(), query.OrderID())
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}

	status := aggregate.Status()
	return TrackOrderQueryResponse{
		ID:              aggregate.ID().String(),
		Status:          string(status),
		StatusLabel:     status.DisplayLabel(),
		StatusCategory:  status.DisplayCategory().String(),
		Total:           aggregate.Total().String(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		CreatedAt:       aggregate.CreatedAt(),
	}, nil
}
