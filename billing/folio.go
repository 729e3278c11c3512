package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"frontdesk-backend/models"
)

// DefaultExtraHourRate is the fixed overstay penalty per hour, in currency
// units, used whenever no hourly rate is derivable from the booking itself.
const DefaultExtraHourRate = 200

// Adjustment types.
const (
	AdjustmentDiscount = "discount"
	AdjustmentDamage   = "damage"
)

// Adjustment is an operator-entered discount or damage line. Adjustments live
// only inside the checkout request; their sums are frozen onto the guest.
type Adjustment struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

// BillInput is everything BuildBill reads. AsOf is the checkout instant: wall
// clock for a live checkout, the frozen checkout time for recomputation.
type BillInput struct {
	Guest       models.Guest
	Rooms       []models.Room
	Charges     []models.RoomCharge
	Adjustments []Adjustment
	AsOf        time.Time

	// Zero means DefaultExtraHourRate.
	ExtraHourRate decimal.Decimal
}

// BuildBill computes the full folio for a guest. Pure and deterministic:
// identical inputs always produce an identical Bill.
func BuildBill(in BillInput) Bill {
	g := in.Guest

	rate := in.ExtraHourRate
	if rate.IsZero() {
		rate = decimal.NewFromInt(DefaultExtraHourRate)
	}

	bookedDays := g.BookedDays
	if bookedDays < 1 {
		bookedDays = 1
	}
	bookedHours := bookedDays * 24

	hoursStayed := ceilHours(in.AsOf.Sub(g.CheckIn))
	extraHours := hoursStayed - bookedHours
	if extraHours < 0 {
		extraHours = 0
	}

	roomPerDay := decimal.Zero
	roomNumbers := make([]string, 0, len(in.Rooms))
	for _, r := range in.Rooms {
		roomPerDay = roomPerDay.Add(r.PricePerDay)
		roomNumbers = append(roomNumbers, r.RoomNumber)
	}

	mi := modeInputs{
		bookedDays:     bookedDays,
		bookedHours:    bookedHours,
		extraHours:     extraHours,
		roomPerDay:     roomPerDay,
		baseAmount:     g.BaseAmount,
		manualOverride: g.ManualPriceOverride,
		overageRate:    rate,
	}
	mode := modeFor(g)

	baseTotal := money(mode.baseTotal(mi))
	extraCharge, hourlyRate := mode.extraCharge(mi)
	extraCharge = money(extraCharge)
	computedTotal := baseTotal.Add(extraCharge)

	// Restaurant charges: the frozen aggregate is authoritative once the guest
	// has checked out; itemized lines are only trusted while the stay is live.
	restaurant := decimal.Zero
	if g.Status == models.GuestStatusCheckedOut {
		restaurant = g.RestaurantChargesPaid
	} else {
		for _, ch := range in.Charges {
			if ch.Category == models.ChargeCategoryRestaurant {
				restaurant = restaurant.Add(ch.Amount)
			}
		}
	}
	restaurant = money(restaurant)

	mealPlan := decimal.Zero
	if g.GuestCategory != models.CategoryComplimentary && g.GuestCategory != models.CategoryFreshenUp {
		mealPlan = money(g.MealPlanCharge)
	}

	discount := decimal.Zero
	damages := decimal.Zero
	if g.Status == models.GuestStatusCheckedOut {
		discount = g.DiscountAmount
		damages = g.DamageCharges
	} else {
		for _, a := range in.Adjustments {
			switch a.Type {
			case AdjustmentDiscount:
				discount = discount.Add(a.Amount)
			case AdjustmentDamage:
				damages = damages.Add(a.Amount)
			}
		}
	}
	discount = money(discount)
	damages = money(damages)

	totalBefore := computedTotal.Add(restaurant).Add(damages).Add(mealPlan)
	totalAfter := money(totalBefore.Sub(discount))

	advance := money(g.AdvancePayment)
	balanceDue := money(totalAfter.Sub(advance))

	return Bill{
		GuestID:       g.ID,
		GuestName:     g.FullName,
		GuestCategory: g.GuestCategory,
		Mode:          mode.name(),
		InvoiceNumber: g.InvoiceNumber,
		RoomNumbers:   roomNumbers,
		CheckIn:       g.CheckIn,
		CheckOut:      in.AsOf,

		BookedDays:  bookedDays,
		HoursStayed: hoursStayed,
		ExtraHours:  extraHours,
		HourlyRate:  hourlyRate.Round(2),

		BaseTotal:     baseTotal,
		ExtraCharge:   extraCharge,
		ComputedTotal: computedTotal,

		RestaurantCharges: restaurant,
		MealPlanCharge:    mealPlan,
		DamageCharges:     damages,
		Discount:          discount,

		TotalBeforeAdjustments: totalBefore,
		TotalAfterDiscount:     totalAfter,
		Advance:                advance,
		BalanceDue:             balanceDue,
	}
}

// ceilHours rounds a stay duration up to whole hours, never negative.
func ceilHours(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	h := int(d / time.Hour)
	if d%time.Hour != 0 {
		h++
	}
	return h
}

// money rounds to 2 decimal places and clamps at zero: no negative charges.
func money(d decimal.Decimal) decimal.Decimal {
	d = d.Round(2)
	if d.IsNegative() {
		return decimal.Zero.Round(2)
	}
	return d
}
