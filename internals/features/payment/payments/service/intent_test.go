package service

import (
	"context"
	"io"
	"testing"

	"github.com/goccy/go-json"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureClient merekam body request Snap dan membalas token tetap.
type captureClient struct {
	url  string
	body map[string]any
}

func (c *captureClient) Call(_ string, url string, _ *string, _ *midtrans.ConfigOptions, body io.Reader, result interface{}) *midtrans.Error {
	c.url = url
	raw, err := io.ReadAll(body)
	if err != nil {
		return &midtrans.Error{Message: err.Error(), RawError: err}
	}
	if err := json.Unmarshal(raw, &c.body); err != nil {
		return &midtrans.Error{Message: err.Error(), RawError: err}
	}
	if resp, ok := result.(*snap.Response); ok {
		resp.Token = "snap-token"
		resp.RedirectURL = "https://app.sandbox.midtrans.com/snap/v2/vtweb/snap-token"
	}
	return nil
}

func newCapturingGateway(t *testing.T) (*MidtransGateway, *captureClient) {
	t.Helper()
	g, ok := NewMidtransGateway("SB-Mid-server-test", false).(*MidtransGateway)
	require.True(t, ok)
	fake := &captureClient{}
	g.client.HttpClient = fake
	return g, fake
}

func TestAmountFromFeeTruncates(t *testing.T) {
	cases := map[float64]int64{
		0:      0,
		25:     2500,
		19.999: 1999,
		100.5:  10050,
	}
	for fee, want := range cases {
		assert.Equal(t, want, AmountFromFee(fee), "fee %v", fee)
	}
}

func TestNewMidtransGatewayWithoutKey(t *testing.T) {
	g := NewMidtransGateway("", false)
	_, err := g.CreateIntent(context.Background(), IntentRequest{OrderID: "CLASS-1", Amount: 2500})
	assert.ErrorIs(t, err, ErrGatewayNotConfigured)
}

func TestNewMidtransGatewayWithKey(t *testing.T) {
	g := NewMidtransGateway("SB-Mid-server-test", false)
	assert.IsType(t, &MidtransGateway{}, g)
}

func TestMidtransGatewayHonoursCancelledContext(t *testing.T) {
	g := NewMidtransGateway("SB-Mid-server-test", false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.CreateIntent(ctx, IntentRequest{OrderID: "CLASS-1", Amount: 2500})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGrossAmountIDRIsWholeRupiah(t *testing.T) {
	assert.Equal(t, int64(150000), GrossAmountIDR(AmountFromFee(150000)))
	assert.Equal(t, int64(19), GrossAmountIDR(AmountFromFee(19.999)))
	assert.Equal(t, int64(0), GrossAmountIDR(0))
}

func TestMidtransGatewaySendsWholeRupiahToSnap(t *testing.T) {
	g, fake := newCapturingGateway(t)

	intent, err := g.CreateIntent(context.Background(), IntentRequest{
		OrderID: "CLASS-1",
		Amount:  AmountFromFee(150000),
		Email:   "a@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "snap-token", intent.ClientSecret)
	assert.Contains(t, fake.url, "/snap/v1/transactions")

	details, ok := fake.body["transaction_details"].(map[string]any)
	require.True(t, ok, fake.body)
	assert.Equal(t, "CLASS-1", details["order_id"])
	assert.Equal(t, float64(150000), details["gross_amount"])
	assert.Equal(t, []any{"credit_card"}, fake.body["enabled_payments"])

	customer, ok := fake.body["customer_details"].(map[string]any)
	require.True(t, ok, fake.body)
	assert.Equal(t, "a@x.com", customer["email"])
}
