package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Billing modes.
const (
	ModeDaily          = "daily"
	ModeHourly         = "hourly"
	ModeComplimentary  = "complimentary"
	ModeManualOverride = "manual"
)

// Bill is the computed folio handed to payment reconciliation and to the
// rendering collaborators. It is never persisted as a whole; a JSON snapshot
// of it is frozen on the guest at checkout.
type Bill struct {
	GuestID       uint      `json:"guestId"`
	GuestName     string    `json:"guestName"`
	GuestCategory string    `json:"guestCategory"`
	Mode          string    `json:"mode"`
	InvoiceNumber string    `json:"invoiceNumber,omitempty"`
	RoomNumbers   []string  `json:"roomNumbers,omitempty"`
	CheckIn       time.Time `json:"checkIn"`
	CheckOut      time.Time `json:"checkOut"`

	BookedDays  int `json:"bookedDays"`
	HoursStayed int `json:"hoursStayed"`
	ExtraHours  int `json:"extraHours"`

	// HourlyRate is set only when extra hours were billed at a derived rate.
	HourlyRate decimal.Decimal `json:"hourlyRate"`

	BaseTotal     decimal.Decimal `json:"baseTotal"`
	ExtraCharge   decimal.Decimal `json:"extraCharge"`
	ComputedTotal decimal.Decimal `json:"computedTotal"`

	RestaurantCharges decimal.Decimal `json:"restaurantCharges"`
	MealPlanCharge    decimal.Decimal `json:"mealPlanCharge"`
	DamageCharges     decimal.Decimal `json:"damageCharges"`
	Discount          decimal.Decimal `json:"discount"`

	TotalBeforeAdjustments decimal.Decimal `json:"totalBeforeAdjustments"`
	TotalAfterDiscount     decimal.Decimal `json:"totalAfterDiscount"`
	Advance                decimal.Decimal `json:"advance"`
	BalanceDue             decimal.Decimal `json:"balanceDue"`

	// Set by Reconstruct when the frozen aggregates do not round-trip through
	// the forward computation; nil for live bills.
	ReconciliationDiscrepancy *decimal.Decimal `json:"reconciliationDiscrepancy,omitempty"`
}
