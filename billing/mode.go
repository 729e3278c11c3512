package billing

import (
	"github.com/shopspring/decimal"

	"frontdesk-backend/models"
)

// modeInputs are the already-normalized figures every billing mode computes
// from: durations in whole hours/days, tariffs as decimals.
type modeInputs struct {
	bookedDays  int
	bookedHours int
	extraHours  int

	// Combined per-day tariff of all assigned rooms.
	roomPerDay decimal.Decimal

	baseAmount     *decimal.Decimal
	manualOverride *decimal.Decimal

	overageRate decimal.Decimal
}

// billingMode is selected once per bill from the guest category. Each mode
// owns the base-total and overstay arithmetic for its kind of stay.
type billingMode interface {
	name() string
	baseTotal(in modeInputs) decimal.Decimal
	extraCharge(in modeInputs) (charge, hourlyRate decimal.Decimal)
}

func modeFor(g models.Guest) billingMode {
	switch g.GuestCategory {
	case models.CategoryFreshenUp:
		return hourlyMode{}
	case models.CategoryComplimentary:
		return complimentaryMode{}
	}
	if g.ManualPriceOverride != nil {
		return manualMode{}
	}
	return dailyMode{}
}

// dailyMode: per-day tariff times booked days, overstay at the fixed rate.
type dailyMode struct{}

func (dailyMode) name() string { return ModeDaily }

func (dailyMode) baseTotal(in modeInputs) decimal.Decimal {
	days := decimal.NewFromInt(int64(in.bookedDays))
	if in.baseAmount != nil {
		return in.baseAmount.Mul(days)
	}
	return in.roomPerDay.Mul(days)
}

func (dailyMode) extraCharge(in modeInputs) (decimal.Decimal, decimal.Decimal) {
	return decimal.NewFromInt(int64(in.extraHours)).Mul(in.overageRate), decimal.Zero
}

// manualMode: operator-entered total replaces the base computation outright;
// overstay still accrues at the fixed rate.
type manualMode struct{}

func (manualMode) name() string { return ModeManualOverride }

func (manualMode) baseTotal(in modeInputs) decimal.Decimal {
	return *in.manualOverride
}

func (manualMode) extraCharge(in modeInputs) (decimal.Decimal, decimal.Decimal) {
	return decimal.NewFromInt(int64(in.extraHours)).Mul(in.overageRate), decimal.Zero
}

// hourlyMode (freshen-up): the base amount covers the whole booked window and
// overstay bills at the window's effective hourly rate.
type hourlyMode struct{}

func (hourlyMode) name() string { return ModeHourly }

func (hourlyMode) baseTotal(in modeInputs) decimal.Decimal {
	if in.baseAmount != nil {
		return *in.baseAmount
	}
	return in.roomPerDay.Mul(decimal.NewFromInt(int64(in.bookedDays)))
}

func (hourlyMode) extraCharge(in modeInputs) (decimal.Decimal, decimal.Decimal) {
	rate := hourlyRate(in)
	return decimal.NewFromInt(int64(in.extraHours)).Mul(rate), rate
}

// complimentaryMode: room rent and meal plan are written off; only overstay
// survives, and an explicit manual override still stands.
type complimentaryMode struct{}

func (complimentaryMode) name() string { return ModeComplimentary }

func (complimentaryMode) baseTotal(in modeInputs) decimal.Decimal {
	if in.manualOverride != nil {
		return *in.manualOverride
	}
	return decimal.Zero
}

func (complimentaryMode) extraCharge(in modeInputs) (decimal.Decimal, decimal.Decimal) {
	if in.baseAmount != nil {
		rate := hourlyRate(in)
		return decimal.NewFromInt(int64(in.extraHours)).Mul(rate), rate
	}
	return decimal.NewFromInt(int64(in.extraHours)).Mul(in.overageRate), decimal.Zero
}

func hourlyRate(in modeInputs) decimal.Decimal {
	if in.baseAmount != nil && in.bookedHours > 0 {
		return in.baseAmount.Div(decimal.NewFromInt(int64(in.bookedHours)))
	}
	return in.roomPerDay.Div(decimal.NewFromInt(24))
}
