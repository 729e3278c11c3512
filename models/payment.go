package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods.
const (
	PaymentMethodCash         = "cash"
	PaymentMethodCard         = "card"
	PaymentMethodUPI          = "upi"
	PaymentMethodBankTransfer = "bank_transfer"
)

// PaymentSplit is one operator-entered slice of a checkout settlement. Splits
// exist only inside the checkout request; once reconciled they are persisted
// as Payment rows and discarded.
type PaymentSplit struct {
	Method    string          `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Reference string          `json:"reference,omitempty"`
}

// Payment is one realized split of a checkout settlement. All splits of a
// single checkout share a BatchID.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`

	GuestID       uint            `gorm:"index;column:guest_id" json:"guest_id"`
	Method        string          `gorm:"size:32" json:"method"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Reference     string          `gorm:"size:128" json:"reference,omitempty"`
	BatchID       string          `gorm:"column:batch_id;size:64;index" json:"batchId"`
	InvoiceNumber string          `gorm:"column:invoice_number;size:64" json:"invoiceNumber"`
}
