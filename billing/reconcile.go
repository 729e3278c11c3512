package billing

import (
	"strings"

	"github.com/shopspring/decimal"

	"frontdesk-backend/models"
)

// Tolerance for settling the balance due, in currency units.
var reconcileTolerance = decimal.RequireFromString("0.01")

// Reconcile validates operator-entered payment splits against the balance due.
// It is the gate before checkout is allowed to commit: at least one split, a
// reference on every non-cash split, and the split total must equal the
// balance within 0.01. On success the splits are returned in entry order,
// ready to persist as Payment rows. Any violation fails fast with the
// specific reason; nothing is applied.
func Reconcile(splits []models.PaymentSplit, balanceDue decimal.Decimal) ([]models.PaymentSplit, error) {
	if len(splits) == 0 {
		return nil, &ValidationError{Field: "splits", Reason: "at least one payment split is required"}
	}

	total := decimal.Zero
	for i, s := range splits {
		switch s.Method {
		case models.PaymentMethodCash, models.PaymentMethodCard,
			models.PaymentMethodUPI, models.PaymentMethodBankTransfer:
		default:
			return nil, &ValidationError{Field: "splits", Reason: "unknown payment method " + s.Method}
		}
		if s.Amount.IsNegative() {
			return nil, &ValidationError{Field: "splits", Reason: "split amount must not be negative"}
		}
		if s.Method != models.PaymentMethodCash && strings.TrimSpace(s.Reference) == "" {
			return nil, &MissingReferenceError{Index: i, Method: s.Method}
		}
		total = total.Add(s.Amount)
	}

	if total.Sub(balanceDue).Abs().GreaterThan(reconcileTolerance) {
		return nil, &AmountMismatchError{Expected: balanceDue, Got: total}
	}

	out := make([]models.PaymentSplit, len(splits))
	copy(out, splits)
	return out, nil
}
