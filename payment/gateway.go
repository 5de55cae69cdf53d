package payment

import "fmt"

// CreateSessionRequest carries everything a provider needs to open a
// hosted checkout session.
type CreateSessionRequest struct {
	Amount     float64
	Currency   string
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// CheckoutSession is the provider's handle for one checkout attempt.
type CheckoutSession struct {
	SessionID string
	URL       string
}

// CheckoutStatus is the provider's view of a session, returned verbatim to
// callers polling for payment completion. AmountTotal is in minor units
// (cents).
type CheckoutStatus struct {
	Status        string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
}

// WebhookEvent is a verified provider notification reduced to the two
// fields reconciliation cares about.
type WebhookEvent struct {
	SessionID     string
	PaymentStatus string
}

// Gateway is the narrow contract every payment provider adapter satisfies.
// Reconciliation and the handlers depend on this interface only, never on
// provider SDK types.
type Gateway interface {
	CreateSession(req CreateSessionRequest) (*CheckoutSession, error)
	GetStatus(sessionID string) (*CheckoutStatus, error)
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

// PaidStatus is the provider-reported payment status that triggers
// reconciliation.
const PaidStatus = "paid"

var gateways = map[string]Gateway{}

// Register wires a gateway under a payment-method name ("stripe", ...).
func Register(method string, gw Gateway) {
	gateways[method] = gw
}

// Lookup returns the gateway for the given payment method.
func Lookup(method string) (Gateway, error) {
	gw, ok := gateways[method]
	if !ok {
		return nil, fmt.Errorf("unsupported payment method: %s", method)
	}
	return gw, nil
}
