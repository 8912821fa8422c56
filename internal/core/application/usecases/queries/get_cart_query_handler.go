package queries

import (
	"context"

	"lytefood/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetCartQueryHandler reads a customer's cart straight from the database,
// bypassing the aggregate for a cheap render of the cart page and the
// header badge.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart query. A customer without a cart gets an empty
// response rather than an error.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		Lines: make([]GetCartQueryLineResponse, 0),
		Total: kernel.ZeroMoney().String(),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.menu_item_id,
			ci.name,
			ci.quantity,
			ci.unit_price
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		WHERE c.customer_id = ?
		ORDER BY ci.name
	`, query.CustomerID().Value()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	total := kernel.ZeroMoney()

	for rows.Next() {
		var menuItemID, name, unitPrice string
		var quantity int

		if err = rows.Scan(&menuItemID, &name, &quantity, &unitPrice); err != nil {
			return GetCartQueryResponse{}, err
		}

		price, priceErr := kernel.MoneyFromString(unitPrice)
		if priceErr != nil {
			return GetCartQueryResponse{}, priceErr
		}
		subtotal := price.MulQuantity(quantity)
		total = total.Add(subtotal)

		response.Lines = append(response.Lines, GetCartQueryLineResponse{
			MenuItemID: menuItemID,
			Name:       name,
			Quantity:   quantity,
			UnitPrice:  price.String(),
			Subtotal:   subtotal.String(),
		})
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response.Total = total.String()
	return response, nil
}
