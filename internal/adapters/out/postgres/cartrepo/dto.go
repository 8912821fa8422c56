// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. This package implements the repository pattern for the
// cart aggregate, handling the conversion between domain entities and
// database representations.
package cartrepo

import (
	"time"

	"lytefood/internal/core/domain/model/cart"
	"lytefood/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// Each customer has at most one cart, enforced by the unique index.
type CartDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID     `gorm:"type:uuid;uniqueIndex"`
	Items      []CartItemDTO `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	UpdatedAt  time.Time
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one cart line. The unit price is stored as its
// decimal string so amounts round-trip without floating point drift.
type CartItemDTO struct {
	CartID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Quantity   int
	UnitPrice  string
}

// TableName specifies the database table name for cart lines.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	items := aggregate.Items()
	itemDTOs := make([]CartItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, CartItemDTO{
			CartID:     aggregate.ID().Value(),
			MenuItemID: item.MenuID().Value(),
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().String(),
		})
	}

	return CartDTO{
		ID:         aggregate.ID().Value(),
		CustomerID: aggregate.CustomerID().Value(),
		Items:      itemDTOs,
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a cart aggregate using RestoreCart.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		price, priceErr := kernel.MoneyFromString(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := cart.NewItem(menuID, itemDTO.Name, itemDTO.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return cart.RestoreCart(id, customerID, items, dto.UpdatedAt)
}
