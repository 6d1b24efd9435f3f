package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"craftedshots_backend/internals/features/payment/payments/model"
)

// CreatePaymentIntentRequest: POST /create-payment-intent.
type CreatePaymentIntentRequest struct {
	CourseFee float64 `json:"courseFee"`
}

type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CompletePaymentRequest: POST /payments. Dipercaya apa adanya: tidak dicek
// ke gateway apakah transaksi benar-benar berhasil.
type CompletePaymentRequest struct {
	Email           string     `json:"email"`
	TransactionID   string     `json:"transactionId"`
	Price           float64    `json:"price"`
	SelectedClassID uuid.UUID  `json:"selectedClassId"`
	ClassID         uuid.UUID  `json:"classId"`
	ClassTitle      string     `json:"classTitle"`
	Date            *time.Time `json:"date"`
}

// ToModel: email kosong diisi email token, date kosong diisi now.
func (r *CompletePaymentRequest) ToModel(tokenEmail string, now time.Time) *model.PaymentModel {
	email := strings.TrimSpace(r.Email)
	if email == "" {
		email = tokenEmail
	}
	date := now
	if r.Date != nil && !r.Date.IsZero() {
		date = *r.Date
	}
	return &model.PaymentModel{
		Email:           email,
		TransactionID:   r.TransactionID,
		Price:           r.Price,
		Currency:        model.PaymentCurrency,
		SelectedClassID: r.SelectedClassID,
		ClassID:         r.ClassID,
		ClassTitle:      r.ClassTitle,
		Date:            date,
	}
}
