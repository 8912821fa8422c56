package queries

import (
	"context"

	"lytefood/internal/core/ports"
)

// GetMenuQueryHandler lists the menu from the menu service.
type GetMenuQueryHandler struct {
	menuClient ports.MenuClient
}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler(menuClient ports.MenuClient) GetMenuQueryHandler {
	return GetMenuQueryHandler{menuClient: menuClient}
}

// Handle executes the menu query.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.menuClient.GetMenu(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]GetMenuQueryResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, GetMenuQueryResponse{
			ID:          item.ID.String(),
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price.String(),
			ImageURL:    item.ImageURL,
			Available:   item.Available,
		})
	}

	return responses, nil
}
