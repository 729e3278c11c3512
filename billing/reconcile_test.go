package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/models"
)

func TestReconcile_SplitsSettleBalance(t *testing.T) {
	splits := []models.PaymentSplit{
		{Method: models.PaymentMethodCash, Amount: d("300")},
		{Method: models.PaymentMethodUPI, Amount: d("5300"), Reference: "upi-9917"},
	}

	out, err := Reconcile(splits, d("5600"))
	require.NoError(t, err)
	require.Len(t, out, 2)
	// entry order is preserved for persistence
	assert.Equal(t, models.PaymentMethodCash, out[0].Method)
	assert.Equal(t, models.PaymentMethodUPI, out[1].Method)
}

func TestReconcile_AmountMismatch(t *testing.T) {
	splits := []models.PaymentSplit{
		{Method: models.PaymentMethodCash, Amount: d("300")},
		{Method: models.PaymentMethodUPI, Amount: d("5200"), Reference: "upi-9917"},
	}

	_, err := Reconcile(splits, d("5600"))
	var mismatch *AmountMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.True(t, mismatch.Expected.Equal(d("5600")))
	assert.True(t, mismatch.Got.Equal(d("5500")))
}

func TestReconcile_WithinTolerance(t *testing.T) {
	splits := []models.PaymentSplit{
		{Method: models.PaymentMethodCash, Amount: d("5599.99")},
	}
	_, err := Reconcile(splits, d("5600"))
	assert.NoError(t, err)

	splits[0].Amount = d("5599.98")
	_, err = Reconcile(splits, d("5600"))
	assert.Error(t, err)
}

func TestReconcile_NoSplits(t *testing.T) {
	_, err := Reconcile(nil, d("100"))
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestReconcile_NonCashNeedsReference(t *testing.T) {
	splits := []models.PaymentSplit{
		{Method: models.PaymentMethodCash, Amount: d("100")},
		{Method: models.PaymentMethodCard, Amount: d("200"), Reference: "   "},
	}

	_, err := Reconcile(splits, d("300"))
	var missing *MissingReferenceError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 1, missing.Index)
	assert.Equal(t, models.PaymentMethodCard, missing.Method)
}

func TestReconcile_CashNeedsNoReference(t *testing.T) {
	splits := []models.PaymentSplit{
		{Method: models.PaymentMethodCash, Amount: d("300")},
	}
	_, err := Reconcile(splits, d("300"))
	assert.NoError(t, err)
}

func TestReconcile_RejectsUnknownMethod(t *testing.T) {
	splits := []models.PaymentSplit{
		{Method: "cheque", Amount: d("300")},
	}
	_, err := Reconcile(splits, d("300"))
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestReconcile_RejectsNegativeSplit(t *testing.T) {
	splits := []models.PaymentSplit{
		{Method: models.PaymentMethodCash, Amount: d("-5")},
	}
	_, err := Reconcile(splits, d("-5"))
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestReconcile_ZeroBalance(t *testing.T) {
	splits := []models.PaymentSplit{
		{Method: models.PaymentMethodCash, Amount: d("0")},
	}
	_, err := Reconcile(splits, d("0"))
	assert.NoError(t, err)
}
