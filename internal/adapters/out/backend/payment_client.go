package backend

import (
	"context"
	"net/http"

	"lytefood/internal/core/domain/model/kernel"
)

// HTTPPaymentClient implements ports.PaymentClient against the payment
// service.
type HTTPPaymentClient struct {
	restClient
}

// NewHTTPPaymentClient creates a payment service client.
func NewHTTPPaymentClient(baseURL string, client httpDoer) *HTTPPaymentClient {
	return &HTTPPaymentClient{restClient: newRestClient(baseURL, client)}
}

type paymentRequest struct {
	OrderID string `json:"order_id"`
}

type initiatePaymentResponse struct {
	PaymentURL string `json:"payment_url"`
}

// InitiatePayment starts the payment flow for a freshly created order.
func (c *HTTPPaymentClient) InitiatePayment(ctx context.Context, token string, orderID kernel.UUID) (string, error) {
	var resp initiatePaymentResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/payments/initiate", token,
		paymentRequest{OrderID: orderID.String()}, &resp)
	if err != nil {
		return "", err
	}

	return resp.PaymentURL, nil
}

// Refund asks the payment service to refund a cancelled order.
func (c *HTTPPaymentClient) Refund(ctx context.Context, token string, orderID kernel.UUID) error {
	return c.doJSON(ctx, http.MethodPost, "/api/payments/refund", token, paymentRequest{OrderID: orderID.String()}, nil)
}
