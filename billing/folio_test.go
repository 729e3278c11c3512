package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func eq(t *testing.T, want string, got decimal.Decimal, label string) {
	t.Helper()
	assert.True(t, got.Equal(d(want)), "%s: want %s, got %s", label, want, got)
}

var checkIn = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func dailyGuest() models.Guest {
	return models.Guest{
		ID:            1,
		FullName:      "A. Traveller",
		GuestCategory: models.CategoryWalkIn,
		CheckIn:       checkIn,
		BookedDays:    2,
		Status:        models.GuestStatusCheckedIn,
	}
}

func deluxeRoom() models.Room {
	return models.Room{ID: 7, RoomNumber: "201", PricePerDay: d("2800")}
}

func TestBuildBill_DailyNoExtras(t *testing.T) {
	g := dailyGuest()
	g.AdvancePayment = d("500")

	bill := BuildBill(BillInput{
		Guest: g,
		Rooms: []models.Room{deluxeRoom()},
		AsOf:  checkIn.Add(48 * time.Hour),
	})

	assert.Equal(t, ModeDaily, bill.Mode)
	assert.Equal(t, 48, bill.HoursStayed)
	assert.Equal(t, 0, bill.ExtraHours)
	eq(t, "5600", bill.BaseTotal, "baseTotal")
	eq(t, "0", bill.ExtraCharge, "extraCharge")
	eq(t, "5600", bill.TotalAfterDiscount, "totalAfterDiscount")
	eq(t, "5100", bill.BalanceDue, "balanceDue")
}

func TestBuildBill_DailyOverstayFixedRate(t *testing.T) {
	g := dailyGuest()

	// 50h for a 48h booking: 2 extra hours at the fixed 200/h rate.
	bill := BuildBill(BillInput{
		Guest: g,
		Rooms: []models.Room{deluxeRoom()},
		AsOf:  checkIn.Add(50 * time.Hour),
	})

	assert.Equal(t, 2, bill.ExtraHours)
	eq(t, "400", bill.ExtraCharge, "extraCharge")
	eq(t, "6000", bill.ComputedTotal, "computedTotal")
}

func TestBuildBill_PartialHourRoundsUp(t *testing.T) {
	g := dailyGuest()
	g.BookedDays = 1

	bill := BuildBill(BillInput{
		Guest: g,
		Rooms: []models.Room{deluxeRoom()},
		AsOf:  checkIn.Add(24*time.Hour + time.Minute),
	})

	assert.Equal(t, 25, bill.HoursStayed)
	assert.Equal(t, 1, bill.ExtraHours)
}

func TestBuildBill_AsOfBeforeCheckIn(t *testing.T) {
	g := dailyGuest()

	bill := BuildBill(BillInput{
		Guest: g,
		Rooms: []models.Room{deluxeRoom()},
		AsOf:  checkIn.Add(-2 * time.Hour),
	})

	assert.Equal(t, 0, bill.HoursStayed)
	assert.Equal(t, 0, bill.ExtraHours)
}

func TestBuildBill_BaseAmountOverridesRoomTariff(t *testing.T) {
	g := dailyGuest()
	g.BookedDays = 3
	g.BaseAmount = dp("1000")

	bill := BuildBill(BillInput{
		Guest: g,
		Rooms: []models.Room{deluxeRoom()},
		AsOf:  checkIn.Add(72 * time.Hour),
	})

	eq(t, "3000", bill.BaseTotal, "baseTotal")
}

func TestBuildBill_ManualPriceOverride(t *testing.T) {
	g := dailyGuest()
	g.BaseAmount = dp("1000")
	g.ManualPriceOverride = dp("2500")

	bill := BuildBill(BillInput{
		Guest: g,
		Rooms: []models.Room{deluxeRoom()},
		AsOf:  checkIn.Add(48 * time.Hour),
	})

	assert.Equal(t, ModeManualOverride, bill.Mode)
	eq(t, "2500", bill.BaseTotal, "baseTotal")
}

func TestBuildBill_FreshenUpHourly(t *testing.T) {
	g := dailyGuest()
	g.GuestCategory = models.CategoryFreshenUp
	g.BookedDays = 1
	g.BaseAmount = dp("1200")
	g.MealPlanCharge = d("350")

	bill := BuildBill(BillInput{
		Guest: g,
		Rooms: []models.Room{deluxeRoom()},
		AsOf:  checkIn.Add(30 * time.Hour),
	})

	assert.Equal(t, ModeHourly, bill.Mode)
	assert.Equal(t, 6, bill.ExtraHours)
	eq(t, "50", bill.HourlyRate, "hourlyRate")
	eq(t, "1200", bill.BaseTotal, "baseTotal")
	eq(t, "300", bill.ExtraCharge, "extraCharge")
	eq(t, "1500", bill.ComputedTotal, "computedTotal")
	// freshen-up never pays a meal plan
	eq(t, "0", bill.MealPlanCharge, "mealPlanCharge")
}

func TestBuildBill_FreshenUpWithoutBaseAmount(t *testing.T) {
	g := dailyGuest()
	g.GuestCategory = models.CategoryFreshenUp
	g.BookedDays = 1

	// no base amount: room tariff / 24 is the hourly rate
	bill := BuildBill(BillInput{
		Guest: g,
		Rooms: []models.Room{{RoomNumber: "101", PricePerDay: d("2400")}},
		AsOf:  checkIn.Add(27 * time.Hour),
	})

	eq(t, "2400", bill.BaseTotal, "baseTotal")
	eq(t, "100", bill.HourlyRate, "hourlyRate")
	eq(t, "300", bill.ExtraCharge, "extraCharge")
}

func TestBuildBill_ComplimentaryOverstayOnly(t *testing.T) {
	g := dailyGuest()
	g.GuestCategory = models.CategoryComplimentary
	g.BookedDays = 1
	g.MealPlanCharge = d("350")

	bill := BuildBill(BillInput{
		Guest: g,
		Rooms: []models.Room{deluxeRoom()},
		AsOf:  checkIn.Add(27 * time.Hour),
	})

	assert.Equal(t, ModeComplimentary, bill.Mode)
	eq(t, "0", bill.BaseTotal, "baseTotal")
	eq(t, "0", bill.MealPlanCharge, "mealPlanCharge")
	eq(t, "600", bill.ExtraCharge, "extraCharge")
	eq(t, "600", bill.TotalAfterDiscount, "totalAfterDiscount")
}

func TestBuildBill_ComplimentaryManualOverrideStands(t *testing.T) {
	g := dailyGuest()
	g.GuestCategory = models.CategoryComplimentary
	g.ManualPriceOverride = dp("999")

	bill := BuildBill(BillInput{
		Guest: g,
		Rooms: []models.Room{deluxeRoom()},
		AsOf:  checkIn.Add(48 * time.Hour),
	})

	eq(t, "999", bill.BaseTotal, "baseTotal")
}

func TestBuildBill_RestaurantChargesLive(t *testing.T) {
	g := dailyGuest()

	bill := BuildBill(BillInput{
		Guest: g,
		Rooms: []models.Room{deluxeRoom()},
		Charges: []models.RoomCharge{
			{Category: models.ChargeCategoryRestaurant, Amount: d("450")},
			{Category: models.ChargeCategoryRestaurant, Amount: d("150")},
			{Category: models.ChargeCategoryService, Amount: d("9999")},
		},
		AsOf: checkIn.Add(48 * time.Hour),
	})

	eq(t, "600", bill.RestaurantCharges, "restaurantCharges")
	eq(t, "6200", bill.TotalAfterDiscount, "totalAfterDiscount")
}

func TestBuildBill_FrozenAggregatesForCheckedOutGuest(t *testing.T) {
	out := checkIn.Add(48 * time.Hour)
	g := dailyGuest()
	g.Status = models.GuestStatusCheckedOut
	g.CheckOut = &out
	g.RestaurantChargesPaid = d("500")
	g.DiscountAmount = d("100")
	g.DamageCharges = d("250")

	// itemized lines and pending adjustments must be ignored for history
	bill := BuildBill(BillInput{
		Guest:       g,
		Rooms:       []models.Room{deluxeRoom()},
		Charges:     []models.RoomCharge{{Category: models.ChargeCategoryRestaurant, Amount: d("7777")}},
		Adjustments: []Adjustment{{Type: AdjustmentDiscount, Amount: d("7777")}},
		AsOf:        out,
	})

	eq(t, "500", bill.RestaurantCharges, "restaurantCharges")
	eq(t, "100", bill.Discount, "discount")
	eq(t, "250", bill.DamageCharges, "damageCharges")
}

func TestBuildBill_AdjustmentsAndMealPlan(t *testing.T) {
	g := dailyGuest()
	g.MealPlanCharge = d("400")

	bill := BuildBill(BillInput{
		Guest: g,
		Rooms: []models.Room{deluxeRoom()},
		Adjustments: []Adjustment{
			{Type: AdjustmentDiscount, Amount: d("300"), Reason: "corporate"},
			{Type: AdjustmentDamage, Amount: d("150"), Reason: "broken glass"},
		},
		AsOf: checkIn.Add(48 * time.Hour),
	})

	eq(t, "400", bill.MealPlanCharge, "mealPlanCharge")
	eq(t, "150", bill.DamageCharges, "damageCharges")
	eq(t, "300", bill.Discount, "discount")
	// 5600 + 400 + 150 = 6150, minus 300 discount
	eq(t, "6150", bill.TotalBeforeAdjustments, "totalBeforeAdjustments")
	eq(t, "5850", bill.TotalAfterDiscount, "totalAfterDiscount")
}

func TestBuildBill_NeverNegative(t *testing.T) {
	g := dailyGuest()
	g.AdvancePayment = d("100000")

	bill := BuildBill(BillInput{
		Guest:       g,
		Rooms:       []models.Room{deluxeRoom()},
		Adjustments: []Adjustment{{Type: AdjustmentDiscount, Amount: d("100000")}},
		AsOf:        checkIn.Add(48 * time.Hour),
	})

	assert.False(t, bill.TotalAfterDiscount.IsNegative())
	eq(t, "0", bill.TotalAfterDiscount, "totalAfterDiscount")
	eq(t, "0", bill.BalanceDue, "balanceDue")
}

func TestBuildBill_NoRoomsFallsBackToBaseAmount(t *testing.T) {
	g := dailyGuest()
	g.BaseAmount = dp("1500")

	bill := BuildBill(BillInput{Guest: g, AsOf: checkIn.Add(48 * time.Hour)})

	eq(t, "3000", bill.BaseTotal, "baseTotal")
	assert.Empty(t, bill.RoomNumbers)
}

func TestBuildBill_ConfiguredOverageRate(t *testing.T) {
	g := dailyGuest()
	g.BookedDays = 1

	bill := BuildBill(BillInput{
		Guest:         g,
		Rooms:         []models.Room{deluxeRoom()},
		AsOf:          checkIn.Add(26 * time.Hour),
		ExtraHourRate: d("150"),
	})

	eq(t, "300", bill.ExtraCharge, "extraCharge")
}

func TestBuildBill_Idempotent(t *testing.T) {
	in := BillInput{
		Guest: dailyGuest(),
		Rooms: []models.Room{deluxeRoom()},
		Charges: []models.RoomCharge{
			{Category: models.ChargeCategoryRestaurant, Amount: d("123.45")},
		},
		Adjustments: []Adjustment{{Type: AdjustmentDiscount, Amount: d("10")}},
		AsOf:        checkIn.Add(53*time.Hour + 17*time.Minute),
	}

	first := BuildBill(in)
	second := BuildBill(in)
	require.Equal(t, first, second)
}
