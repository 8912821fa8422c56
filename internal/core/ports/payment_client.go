package ports

import (
	"context"

	"lytefood/internal/core/domain/model/kernel"
)

// PaymentClient talks to the external payment service.
type PaymentClient interface {
	// InitiatePayment starts the payment flow for a freshly created order
	// and returns the URL the customer is sent to.
	InitiatePayment(ctx context.Context, token string, orderID kernel.UUID) (string, error)

	// Refund asks the payment service to refund a cancelled order whose
	// payment was already captured.
	Refund(ctx context.Context, token string, orderID kernel.UUID) error
}
