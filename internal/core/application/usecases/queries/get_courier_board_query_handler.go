package queries

import (
	"context"

	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/core/domain/services"
	"lytefood/internal/core/ports"
)

// GetCourierBoardQueryHandler serves the courier dashboard from the cached
// board. Before the first refresh lands the handler returns an empty board
// rather than an error.
type GetCourierBoardQueryHandler struct {
	boardCache ports.CourierBoardCache
}

// NewGetCourierBoardQueryHandler creates a handler for courier board queries.
func NewGetCourierBoardQueryHandler(boardCache ports.CourierBoardCache) GetCourierBoardQueryHandler {
	return GetCourierBoardQueryHandler{boardCache: boardCache}
}

// Handle executes the courier board query.
func (h GetCourierBoardQueryHandler) Handle(
	_ context.Context,
	query GetCourierBoardQuery,
) (GetCourierBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierBoardQueryResponse{}, err
	}

	board, ok := h.boardCache.Get()
	if !ok {
		return GetCourierBoardQueryResponse{
			Available: make([]GetCourierBoardQueryOrderResponse, 0),
			EnRoute:   make([]GetCourierBoardQueryOrderResponse, 0),
		}, nil
	}

	role := services.ActingRole(query.Roles())
	return GetCourierBoardQueryResponse{
		Available:   boardOrders(board.Available, role),
		EnRoute:     boardOrders(board.EnRoute, role),
		RefreshedAt: board.RefreshedAt,
	}, nil
}

func boardOrders(orders []*order.Order, role order.Role) []GetCourierBoardQueryOrderResponse {
	responses := make([]GetCourierBoardQueryOrderResponse, 0, len(orders))
	for _, aggregate := range orders {
		status := aggregate.Status()
		label, category, allowedNext := buildStatusView(status, role)

		responses = append(responses, GetCourierBoardQueryOrderResponse{
			ID:              aggregate.ID().String(),
			Status:          string(status),
			StatusLabel:     label,
			StatusCategory:  category,
			AllowedNext:     allowedNext,
			DeliveryAddress: aggregate.DeliveryAddress(),
		})
	}
	return responses
}
