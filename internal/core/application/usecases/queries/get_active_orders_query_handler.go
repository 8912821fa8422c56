package queries

import (
	"context"

	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/core/domain/services"
	"lytefood/internal/core/ports"
)

// GetActiveOrdersQueryHandler lists paid and in-preparation orders for the
// admin dashboard, along with the transitions the operator may trigger on
// each of them.
type GetActiveOrdersQueryHandler struct {
	orderClient ports.OrderClient
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
func NewGetActiveOrdersQueryHandler(orderClient ports.OrderClient) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{orderClient: orderClient}
}

// Handle executes the active orders query.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderClient.GetByStatuses(ctx, query.Token(), order.Paid, order.InPreparation)
	if err != nil {
		return nil, err
	}

	role := services.ActingRole(query.Roles())
	responses := make([]GetActiveOrdersQueryResponse, 0, len(orders))
	for _, aggregate := range orders {
		status := aggregate.Status()
		label, category, allowedNext := buildStatusView(status, role)

		responses = append(responses, GetActiveOrdersQueryResponse{
			ID:              aggregate.ID().String(),
			Status:          string(status),
			StatusLabel:     label,
			StatusCategory:  category,
			AllowedNext:     allowedNext,
			Total:           aggregate.Total().String(),
			DeliveryAddress: aggregate.DeliveryAddress(),
			CreatedAt:       aggregate.CreatedAt(),
		})
	}

	return responses, nil
}
