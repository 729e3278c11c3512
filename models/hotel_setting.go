package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type HotelSetting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Email     string    `gorm:"size:150" json:"email"`
	GSTIN     string    `gorm:"size:15" json:"gstin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Penalty rate per hour stayed beyond the booked duration.
	ExtraHourRate decimal.Decimal `gorm:"column:extra_hour_rate;type:decimal(10,2)" json:"extraHourRate"`
}
