// Package menu holds the read model for the restaurant menu. Menu items are
// owned by the external menu service; this service only lists them and
// copies name and price into the cart when an item is added.
package menu

import (
	"lytefood/internal/core/domain/model/kernel"
)

// Item is one entry of the menu as reported by the menu service.
type Item struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	ImageURL    string
	Available   bool
}
