package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var ErrGatewayNotConfigured = errors.New("payment gateway: server key not configured")

type IntentRequest struct {
	OrderID string
	Amount  int64 // minor unit
	Email   string
}

type Intent struct {
	ClientSecret string
	RedirectURL  string
}

// IntentGateway membuat payment intent di gateway pihak ketiga.
type IntentGateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}

// AmountFromFee: fee × 100 lalu dipotong (bukan dibulatkan).
func AmountFromFee(fee float64) int64 {
	return int64(math.Trunc(fee * 100))
}

// Snap membaca gross_amount IDR dalam rupiah utuh, bukan minor unit.
const idrMinorPerUnit = 100

// GrossAmountIDR mengubah minor unit dari AmountFromFee ke rupiah utuh untuk Snap.
func GrossAmountIDR(minor int64) int64 {
	return minor / idrMinorPerUnit
}

// MidtransGateway: Snap transaction, hanya kartu kredit.
type MidtransGateway struct {
	client snap.Client
}

func NewMidtransGateway(serverKey string, useProd bool) IntentGateway {
	if serverKey == "" {
		return unconfiguredGateway{}
	}
	env := midtrans.Sandbox
	if useProd {
		env = midtrans.Production
	}
	g := &MidtransGateway{}
	g.client.New(serverKey, env)
	return g
}

func (g *MidtransGateway) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: GrossAmountIDR(req.Amount),
		},
		EnabledPayments: []snap.SnapPaymentType{snap.PaymentTypeCreditCard},
		CreditCard:      &snap.CreditCardDetails{Secure: true},
	}
	if req.Email != "" {
		snapReq.CustomerDetail = &midtrans.CustomerDetails{Email: req.Email}
	}

	resp, merr := g.client.CreateTransaction(snapReq)
	if merr != nil {
		return nil, fmt.Errorf("create snap transaction: %w", merr)
	}
	return &Intent{ClientSecret: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

type unconfiguredGateway struct{}

func (unconfiguredGateway) CreateIntent(context.Context, IntentRequest) (*Intent, error) {
	return nil, ErrGatewayNotConfigured
}
