package ports

import (
	"context"

	"lytefood/internal/core/domain/model/menu"
)

// MenuClient talks to the external menu service.
type MenuClient interface {
	// GetMenu lists the current menu.
	GetMenu(ctx context.Context) ([]menu.Item, error)
}
