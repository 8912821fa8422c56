package backend

import (
	"context"
	"net/http"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/menu"
)

// HTTPMenuClient implements ports.MenuClient against the menu service.
type HTTPMenuClient struct {
	restClient
}

// NewHTTPMenuClient creates a menu service client.
func NewHTTPMenuClient(baseURL string, client httpDoer) *HTTPMenuClient {
	return &HTTPMenuClient{restClient: newRestClient(baseURL, client)}
}

type menuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
	Available   bool   `json:"available"`
}

// GetMenu lists the current menu. The menu is public, no token needed.
func (c *HTTPMenuClient) GetMenu(ctx context.Context) ([]menu.Item, error) {
	var resp []menuItemResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/menu", "", nil, &resp); err != nil {
		return nil, err
	}

	items := make([]menu.Item, 0, len(resp))
	for _, raw := range resp {
		id, err := kernel.UUIDFromString(raw.ID)
		if err != nil {
			return nil, err
		}
		price, err := kernel.MoneyFromString(raw.Price)
		if err != nil {
			return nil, err
		}

		items = append(items, menu.Item{
			ID:          id,
			Name:        raw.Name,
			Description: raw.Description,
			Price:       price,
			ImageURL:    raw.ImageURL,
			Available:   raw.Available,
		})
	}

	return items, nil
}
