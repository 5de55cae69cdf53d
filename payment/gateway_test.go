package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopGateway struct{}

func (nopGateway) CreateSession(CreateSessionRequest) (*CheckoutSession, error) { return nil, nil }
func (nopGateway) GetStatus(string) (*CheckoutStatus, error)                    { return nil, nil }
func (nopGateway) ParseWebhook([]byte, string) (*WebhookEvent, error)           { return nil, nil }

func TestRegistry(t *testing.T) {
	Register("test-method", nopGateway{})

	gw, err := Lookup("test-method")
	require.NoError(t, err)
	assert.NotNil(t, gw)

	_, err = Lookup("carrier-pigeon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported payment method")
}

func TestToMinorUnits(t *testing.T) {
	assert.EqualValues(t, 1300, toMinorUnits(13.00))
	assert.EqualValues(t, 3100, toMinorUnits(31.00))
	assert.EqualValues(t, 1, toMinorUnits(0.01))
	// 19.99 is not exactly representable; rounding must not lose a cent
	assert.EqualValues(t, 1999, toMinorUnits(19.99))
	assert.EqualValues(t, 0, toMinorUnits(0))
}
