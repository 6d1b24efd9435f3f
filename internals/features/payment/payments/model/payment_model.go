package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu-satunya mata uang yang dipakai payment intent.
const PaymentCurrency = "IDR"

// PaymentModel immutable setelah dibuat. History diurutkan by date desc.
//
// SelectedClassID menunjuk class listing (kursi yang dikurangi) dan ClassID
// menunjuk dokumen selected_classes yang dihapus; penamaan ini mengikuti
// payload yang dikirim client.
type PaymentModel struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Email           string    `gorm:"column:email;type:varchar(255);index;not null"            json:"email"`
	TransactionID   string    `gorm:"column:transaction_id;type:varchar(120)"                  json:"transactionId"`
	Price           float64   `gorm:"column:price;type:numeric(12,2)"                          json:"price"`
	Currency        string    `gorm:"column:currency;type:varchar(8);default:'IDR'"            json:"currency"`
	SelectedClassID uuid.UUID `gorm:"column:selected_class_id;type:uuid"                       json:"selectedClassId"`
	ClassID         uuid.UUID `gorm:"column:class_id;type:uuid"                                json:"classId"`
	ClassTitle      string    `gorm:"column:class_title;type:varchar(200)"                     json:"classTitle,omitempty"`
	Date            time.Time `gorm:"column:date;index"                                        json:"date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (PaymentModel) TableName() string { return "payments" }
