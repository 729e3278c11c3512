package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"frontdesk-backend/models"
)

// Reconstruct derives an equivalent Bill for an already-checked-out guest from
// the aggregates frozen at checkout, without re-querying itemized charges.
//
// The base total is recovered by inverting the checkout arithmetic:
//
//	baseTotal = totalCharge - extraCharge - restaurantCharges - damageCharges + discount
//
// This inversion assumes the fixed adjustment precedence of the live
// computation (additive charges first, discount last) and folds any meal-plan
// charge into the recovered base. The forward recomputation is cross-checked
// against the frozen total; a divergence beyond 0.01 is reported in
// ReconciliationDiscrepancy rather than silently accepted.
func Reconstruct(g models.Guest, roomNumbers []string) (Bill, error) {
	if g.Status != models.GuestStatusCheckedOut || g.CheckOut == nil {
		return Bill{}, &ConflictError{
			Entity: "guest",
			ID:     g.ID,
			State:  g.Status,
			Reason: "invoice reconstruction requires a checked-out guest",
		}
	}
	checkOut := *g.CheckOut

	bookedDays := ceilDays(checkOut.Sub(g.CheckIn))
	if bookedDays < 1 {
		bookedDays = 1
	}

	restaurant := money(g.RestaurantChargesPaid)
	damages := money(g.DamageCharges)
	discount := money(g.DiscountAmount)
	extraCharge := money(g.ExtraCharge)

	baseTotal := money(g.TotalCharge.
		Sub(extraCharge).
		Sub(restaurant).
		Sub(damages).
		Add(discount))

	computedTotal := baseTotal.Add(extraCharge)
	totalBefore := computedTotal.Add(restaurant).Add(damages)
	totalAfter := money(totalBefore.Sub(discount))

	advance := money(g.AdvancePayment)
	balanceDue := money(totalAfter.Sub(advance))

	bill := Bill{
		GuestID:       g.ID,
		GuestName:     g.FullName,
		GuestCategory: g.GuestCategory,
		Mode:          modeFor(g).name(),
		InvoiceNumber: g.InvoiceNumber,
		RoomNumbers:   roomNumbers,
		CheckIn:       g.CheckIn,
		CheckOut:      checkOut,

		BookedDays:  bookedDays,
		HoursStayed: ceilHours(checkOut.Sub(g.CheckIn)),
		ExtraHours:  g.ExtraHours,

		BaseTotal:     baseTotal,
		ExtraCharge:   extraCharge,
		ComputedTotal: computedTotal,

		RestaurantCharges: restaurant,
		DamageCharges:     damages,
		Discount:          discount,
		// The meal plan cannot be split back out of the frozen total; it is
		// part of the reconstructed base.
		MealPlanCharge: decimal.Zero,

		TotalBeforeAdjustments: totalBefore,
		TotalAfterDiscount:     totalAfter,
		Advance:                advance,
		BalanceDue:             balanceDue,
	}

	if diff := totalAfter.Sub(money(g.TotalCharge)); diff.Abs().GreaterThan(reconcileTolerance) {
		bill.ReconciliationDiscrepancy = &diff
	}

	return bill, nil
}

// ceilDays rounds a stay duration up to whole days, never negative.
func ceilDays(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
