package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v81"

	stripeClient "github.com/nairmahesh/diwali-delights/pkg/stripe"
)

type Client struct {
	mock.Mock
}

func (m *Client) CreatePaymentIntent(amount int64, currency string, description string, orderID string) (*stripe.PaymentIntent, error) {
	args := m.Called(amount, currency, description, orderID)
	if intent, ok := args.Get(0).(*stripe.PaymentIntent); ok {
		return intent, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *Client) GetPaymentIntent(paymentIntentID string) (*stripe.PaymentIntent, error) {
	args := m.Called(paymentIntentID)
	if intent, ok := args.Get(0).(*stripe.PaymentIntent); ok {
		return intent, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *Client) RefundPayment(paymentIntentID string, amount int64) (*stripe.Refund, error) {
	args := m.Called(paymentIntentID, amount)
	if ref, ok := args.Get(0).(*stripe.Refund); ok {
		return ref, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *Client) VerifyWebhookSignature(payload []byte, signature string) (stripeClient.Event, error) {
	args := m.Called(payload, signature)

	return args.Get(0).(stripeClient.Event), args.Error(1)
}
