package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/models"
)

func frozenGuest() models.Guest {
	out := checkIn.Add(48 * time.Hour)
	return models.Guest{
		ID:                    9,
		FullName:              "B. Historical",
		GuestCategory:         models.CategoryRegular,
		CheckIn:               checkIn,
		CheckOut:              &out,
		BookedDays:            2,
		Status:                models.GuestStatusCheckedOut,
		ExtraHours:            1,
		ExtraCharge:           d("200"),
		TotalCharge:           d("7000"),
		RestaurantChargesPaid: d("500"),
		DamageCharges:         d("0"),
		DiscountAmount:        d("100"),
		AdvancePayment:        d("1000"),
		InvoiceNumber:         "INV-AB12CD34",
	}
}

func TestReconstruct_InverseBaseTotal(t *testing.T) {
	bill, err := Reconstruct(frozenGuest(), []string{"201"})
	require.NoError(t, err)

	// 7000 - 200 - 500 - 0 + 100
	eq(t, "6400", bill.BaseTotal, "baseTotal")
	eq(t, "200", bill.ExtraCharge, "extraCharge")
	eq(t, "500", bill.RestaurantCharges, "restaurantCharges")
	eq(t, "100", bill.Discount, "discount")
	assert.Equal(t, 1, bill.ExtraHours)
	assert.Equal(t, []string{"201"}, bill.RoomNumbers)
	assert.Equal(t, "INV-AB12CD34", bill.InvoiceNumber)

	// forward recomputation round-trips: no discrepancy flagged
	eq(t, "7000", bill.TotalAfterDiscount, "totalAfterDiscount")
	eq(t, "6000", bill.BalanceDue, "balanceDue")
	assert.Nil(t, bill.ReconciliationDiscrepancy)
}

func TestReconstruct_BookedDaysFromStay(t *testing.T) {
	g := frozenGuest()
	out := checkIn.Add(49 * time.Hour)
	g.CheckOut = &out

	bill, err := Reconstruct(g, nil)
	require.NoError(t, err)
	// 49h rounds up to 3 days
	assert.Equal(t, 3, bill.BookedDays)
	assert.Equal(t, 49, bill.HoursStayed)
}

func TestReconstruct_BookedDaysClampedToOne(t *testing.T) {
	g := frozenGuest()
	out := g.CheckIn.Add(30 * time.Minute)
	g.CheckOut = &out

	bill, err := Reconstruct(g, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, bill.BookedDays)
}

func TestReconstruct_RequiresCheckedOutGuest(t *testing.T) {
	g := frozenGuest()
	g.Status = models.GuestStatusCheckedIn
	g.CheckOut = nil

	_, err := Reconstruct(g, nil)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, models.GuestStatusCheckedIn, conflict.State)
}

func TestReconstruct_FlagsDiscrepancy(t *testing.T) {
	// Aggregates that cannot round-trip: the derived base clamps at zero, so
	// the forward total comes out above the frozen one.
	g := frozenGuest()
	g.TotalCharge = d("100")
	g.ExtraCharge = d("900")

	bill, err := Reconstruct(g, nil)
	require.NoError(t, err)
	eq(t, "0", bill.BaseTotal, "baseTotal")
	require.NotNil(t, bill.ReconciliationDiscrepancy)
	// forward: 0 + 900 + 500 + 0 - 100 = 1300, frozen says 100
	eq(t, "1200", *bill.ReconciliationDiscrepancy, "discrepancy")
}

func TestReconstruct_HourlyModeTagged(t *testing.T) {
	g := frozenGuest()
	g.GuestCategory = models.CategoryFreshenUp

	bill, err := Reconstruct(g, nil)
	require.NoError(t, err)
	assert.Equal(t, ModeHourly, bill.Mode)
}
