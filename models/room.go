package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room statuses. A room is Occupied iff exactly one checked-in guest references it.
const (
	RoomStatusFree         = "Free"
	RoomStatusOccupied     = "Occupied"
	RoomStatusHousekeeping = "Housekeeping"
	RoomStatusMaintenance  = "Maintenance"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Category   string `json:"category" gorm:"size:64"`
	Floor      string `json:"floor" gorm:"type:varchar(10)"`

	PricePerDay decimal.Decimal `json:"pricePerDay" gorm:"column:price_per_day;type:decimal(10,2)"`

	Status string `json:"status" gorm:"size:32;default:'Free';index"`

	// Set while a checked-in guest holds the room, cleared at checkout.
	CurrentGuestID *uint `json:"currentGuestId,omitempty" gorm:"column:current_guest_id;index"`

	Description string `json:"description" gorm:"type:text"`
}
