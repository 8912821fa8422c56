package commands

import (
	"context"
	"time"

	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/core/ports"
)

// RefreshCourierBoardCommandHandler rebuilds the courier board cache from
// the order service: orders ready to claim and orders on the road. The
// cache is last-write-wins; a refresh that fails leaves the previous board
// in place rather than publishing a partial one.
type RefreshCourierBoardCommandHandler struct {
	orderClient ports.OrderClient
	boardCache  ports.CourierBoardCache
}

// NewRefreshCourierBoardCommandHandler creates a handler for board refreshes.
func NewRefreshCourierBoardCommandHandler(
	orderClient ports.OrderClient,
	boardCache ports.CourierBoardCache,
) RefreshCourierBoardCommandHandler {
	return RefreshCourierBoardCommandHandler{
		orderClient: orderClient,
		boardCache:  boardCache,
	}
}

// Handle processes the refresh command.
func (h *RefreshCourierBoardCommandHandler) Handle(ctx context.Context, cmd RefreshCourierBoardCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orders, err := h.orderClient.GetByStatuses(ctx, cmd.Token(), order.Ready, order.EnRoute)
	if err != nil {
		return err
	}

	board := ports.CourierBoard{RefreshedAt: time.Now()}
	for _, o := range orders {
		switch o.Status() {
		case order.Ready:
			board.Available = append(board.Available, o)
		case order.EnRoute:
			board.EnRoute = append(board.EnRoute, o)
		}
	}

	h.boardCache.Set(board)
	return nil
}
