package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk-backend/billing"
	"frontdesk-backend/models"
)

func TestMaintenanceTarget(t *testing.T) {
	target, err := MaintenanceTarget(models.RoomStatusFree)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusMaintenance, target)

	target, err = MaintenanceTarget(models.RoomStatusMaintenance)
	require.NoError(t, err)
	assert.Equal(t, models.RoomStatusFree, target)
}

func TestMaintenanceTarget_RejectsOccupiedAndHousekeeping(t *testing.T) {
	for _, status := range []string{models.RoomStatusOccupied, models.RoomStatusHousekeeping} {
		_, err := MaintenanceTarget(status)
		var conflict *billing.ConflictError
		require.ErrorAs(t, err, &conflict, "status %s", status)
		assert.Equal(t, status, conflict.State)
	}
}

func validCheckIn() CheckInRequest {
	return CheckInRequest{
		FullName:      "C. Arrival",
		Pax:           2,
		RoomIDs:       []uint{1},
		GuestCategory: models.CategoryWalkIn,
		BookedDays:    1,
	}
}

func TestCheckInRequest_Validate(t *testing.T) {
	req := validCheckIn()
	assert.NoError(t, req.validate())
}

func TestCheckInRequest_ValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CheckInRequest)
	}{
		{"empty name", func(r *CheckInRequest) { r.FullName = "  " }},
		{"pax below one", func(r *CheckInRequest) { r.Pax = 0 }},
		{"no rooms", func(r *CheckInRequest) { r.RoomIDs = nil }},
		{"booked days below one", func(r *CheckInRequest) { r.BookedDays = 0 }},
		{"unknown category", func(r *CheckInRequest) { r.GuestCategory = "Stowaway" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCheckIn()
			tc.mutate(&req)
			err := req.validate()
			var validation *billing.ValidationError
			require.ErrorAs(t, err, &validation)
		})
	}
}

func TestNewInvoiceNumber(t *testing.T) {
	n := newInvoiceNumber()
	assert.Len(t, n, len("INV-")+8)
	assert.Equal(t, "INV-", n[:4])
	assert.NotEqual(t, n, newInvoiceNumber())
}
