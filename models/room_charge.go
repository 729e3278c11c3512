package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RoomCharge categories.
const (
	ChargeCategoryRestaurant = "Restaurant"
	ChargeCategoryService    = "Service"
	ChargeCategoryOther      = "Other"
)

// RoomCharge is an ancillary charge posted to a checked-in guest's folio.
// Append-only; after checkout the guest's RestaurantChargesPaid is the
// authoritative figure and these rows are no longer consulted.
type RoomCharge struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	GuestID     uint            `gorm:"index;column:guest_id" json:"guest_id"`
	Category    string          `gorm:"size:32;index" json:"category"`
	Description string          `gorm:"size:255" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`

	BillGenerated bool `gorm:"column:bill_generated;default:false" json:"billGenerated"`
}
