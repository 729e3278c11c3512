package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Guest statuses.
const (
	GuestStatusCheckedIn  = "Checked-In"
	GuestStatusCheckedOut = "Checked-Out"
)

// Guest categories. FreshenUp bills by the hour, Complimentary zeroes the room
// rent and meal plan; everything else bills by the day.
const (
	CategoryWalkIn        = "Walk-In"
	CategoryCorporate     = "Corporate"
	CategoryComplimentary = "Complimentary"
	CategorySingleLady    = "Single-Lady"
	CategoryGroup         = "Group"
	CategoryRegular       = "Regular"
	CategoryVIP           = "VIP"
	CategoryFreshenUp     = "Freshen-Up"
	CategoryOther         = "Other"
)

type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FullName string `json:"fullName" gorm:"size:255"`
	Phone    string `json:"phone" gorm:"size:50"`
	Email    string `json:"email" gorm:"size:150"`
	Address  string `json:"address" gorm:"type:text"`
	Pax      int    `json:"pax" gorm:"default:1"`

	GuestCategory string    `json:"guestCategory" gorm:"column:guest_category;size:32;index"`
	CheckIn       time.Time `json:"checkIn" gorm:"column:check_in"`
	BookedDays    int       `json:"bookedDays" gorm:"column:booked_days;default:1"`

	// BaseAmount overrides the per-room tariff; for Freshen-Up it is the charge
	// for the whole booked window. ManualPriceOverride replaces the base total
	// outright in daily mode.
	BaseAmount          *decimal.Decimal `json:"baseAmount,omitempty" gorm:"column:base_amount;type:decimal(10,2)"`
	ManualPriceOverride *decimal.Decimal `json:"manualPriceOverride,omitempty" gorm:"column:manual_price_override;type:decimal(10,2)"`

	MealPlan       string          `json:"mealPlan" gorm:"column:meal_plan;size:32"`
	MealPlanCharge decimal.Decimal `json:"mealPlanCharge" gorm:"column:meal_plan_charge;type:decimal(10,2)"`

	AdvancePayment decimal.Decimal `json:"advancePayment" gorm:"column:advance_payment;type:decimal(10,2)"`

	// 4-digit access PIN issued at check-in, cleared at checkout.
	AccessPIN string `json:"accessPin,omitempty" gorm:"column:access_pin;size:8"`

	Status string `json:"status" gorm:"size:32;default:'Checked-In';index"`

	// Checkout aggregates — write-once when the guest checks out. They freeze
	// the bill so an invoice can be reconstructed without the itemized charges.
	CheckOut              *time.Time      `json:"checkOut,omitempty" gorm:"column:check_out"`
	ExtraHours            int             `json:"extraHours" gorm:"column:extra_hours"`
	ExtraCharge           decimal.Decimal `json:"extraCharge" gorm:"column:extra_charge;type:decimal(10,2)"`
	TotalCharge           decimal.Decimal `json:"totalCharge" gorm:"column:total_charge;type:decimal(10,2)"`
	DiscountAmount        decimal.Decimal `json:"discountAmount" gorm:"column:discount_amount;type:decimal(10,2)"`
	DamageCharges         decimal.Decimal `json:"damageCharges" gorm:"column:damage_charges;type:decimal(10,2)"`
	RestaurantChargesPaid decimal.Decimal `json:"restaurantChargesPaid" gorm:"column:restaurant_charges_paid;type:decimal(10,2)"`
	InvoiceNumber         string          `json:"invoiceNumber,omitempty" gorm:"column:invoice_number;size:64"`

	// Exact bill as computed at checkout, for rendering collaborators.
	BillSnapshot datatypes.JSON `json:"billSnapshot,omitempty" gorm:"column:bill_snapshot"`

	Rooms []GuestRoom `gorm:"foreignKey:GuestID" json:"rooms"`

	// Used to send room numbers to the frontend (not stored).
	RoomNumbers []string `gorm:"-" json:"roomNumbers,omitempty"`
}
