package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/pkg/errs"
)

// HTTPOrderClient implements ports.OrderClient against the order service.
type HTTPOrderClient struct {
	restClient
}

// NewHTTPOrderClient creates an order service client.
func NewHTTPOrderClient(baseURL string, client httpDoer) *HTTPOrderClient {
	return &HTTPOrderClient{restClient: newRestClient(baseURL, client)}
}

type orderItemPayload struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
}

type orderPayload struct {
	ID              string             `json:"id"`
	CustomerID      string             `json:"customer_id"`
	Items           []orderItemPayload `json:"items"`
	Total           string             `json:"total"`
	Status          string             `json:"status"`
	DeliveryAddress string             `json:"delivery_address"`
	CourierID       *string            `json:"courier_id"`
	CreatedAt       time.Time          `json:"created_at"`
}

type createOrderResponse struct {
	ID string `json:"id"`
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

type assignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

// Create submits a new order and returns the identifier assigned by the
// order service.
func (c *HTTPOrderClient) Create(ctx context.Context, token string, aggregate *order.Order) (kernel.UUID, error) {
	if err := aggregate.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var resp createOrderResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/orders", token, fromDomain(aggregate), &resp)
	if err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromString(resp.ID)
}

// Get retrieves one order by identifier.
func (c *HTTPOrderClient) Get(ctx context.Context, token string, id kernel.UUID) (*order.Order, error) {
	var resp orderPayload
	err := c.doJSON(ctx, http.MethodGet, "/api/orders/"+id.String(), token, nil, &resp)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, errs.NewObjectNotFoundErrorWithCause("order", id.String(), err)
		}
		return nil, err
	}

	return toDomain(resp)
}

// GetByCustomer retrieves all orders placed by a customer, newest first.
func (c *HTTPOrderClient) GetByCustomer(
	ctx context.Context,
	token string,
	customerID kernel.UUID,
) ([]*order.Order, error) {
	path := "/api/orders?customer_id=" + url.QueryEscape(customerID.String())
	return c.list(ctx, token, path)
}

// GetByStatuses retrieves all orders currently in any of the given statuses.
func (c *HTTPOrderClient) GetByStatuses(
	ctx context.Context,
	token string,
	statuses ...order.Status,
) ([]*order.Order, error) {
	codes := make([]string, 0, len(statuses))
	for _, status := range statuses {
		codes = append(codes, string(status))
	}
	path := "/api/orders?status=" + url.QueryEscape(strings.Join(codes, ","))
	return c.list(ctx, token, path)
}

// ChangeStatus asks the order service to move an order to a new status.
func (c *HTTPOrderClient) ChangeStatus(ctx context.Context, token string, id kernel.UUID, status order.Status) error {
	path := "/api/orders/" + id.String() + "/status"
	return c.doJSON(ctx, http.MethodPut, path, token, changeStatusRequest{Status: string(status)}, nil)
}

// AssignCourier records the courier on an order when it is claimed.
func (c *HTTPOrderClient) AssignCourier(ctx context.Context, token string, id, courierID kernel.UUID) error {
	path := "/api/orders/" + id.String() + "/courier"
	return c.doJSON(ctx, http.MethodPut, path, token, assignCourierRequest{CourierID: courierID.String()}, nil)
}

func (c *HTTPOrderClient) list(ctx context.Context, token, path string) ([]*order.Order, error) {
	var resp []orderPayload
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(resp))
	for _, payload := range resp {
		aggregate, err := toDomain(payload)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

// fromDomain converts an order aggregate to the order service's payload.
func fromDomain(aggregate *order.Order) orderPayload {
	items := aggregate.Items()
	itemPayloads := make([]orderItemPayload, 0, len(items))
	for _, item := range items {
		itemPayloads = append(itemPayloads, orderItemPayload{
			MenuItemID: item.MenuID().String(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().String(),
		})
	}

	var courierID *string
	if id := aggregate.Courier(); id != nil {
		raw := id.String()
		courierID = &raw
	}

	return orderPayload{
		ID:              aggregate.ID().String(),
		CustomerID:      aggregate.CustomerID().String(),
		Items:           itemPayloads,
		Total:           aggregate.Total().String(),
		Status:          string(aggregate.Status()),
		DeliveryAddress: aggregate.DeliveryAddress(),
		CourierID:       courierID,
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts an order service payload to an order aggregate.
// The status is kept verbatim, including codes this build does not know.
func toDomain(payload orderPayload) (*order.Order, error) {
	id, err := kernel.UUIDFromString(payload.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromString(payload.CustomerID)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if payload.CourierID != nil {
		parsed, courierErr := kernel.UUIDFromString(*payload.CourierID)
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &parsed
	}

	total, err := kernel.MoneyFromString(payload.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(payload.Items))
	for _, itemPayload := range payload.Items {
		menuID, itemErr := kernel.UUIDFromString(itemPayload.MenuItemID)
		if itemErr != nil {
			return nil, itemErr
		}
		price, priceErr := kernel.MoneyFromString(itemPayload.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.NewItem(menuID, itemPayload.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, customerID, items, total,
		order.Status(payload.Status),
		payload.DeliveryAddress,
		courierID,
		payload.CreatedAt,
	)
}
