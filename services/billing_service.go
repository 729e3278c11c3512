package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"frontdesk-backend/billing"
	"frontdesk-backend/models"
)

// BillingService produces folios outside of the checkout transaction: live
// previews for the front desk and reconstructed invoices for guests whose
// itemized charges are no longer consulted.
type BillingService struct {
	DB *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{DB: db}
}

func (s *BillingService) loadGuest(guestID uint) (*models.Guest, []models.Room, error) {
	var guest models.Guest
	err := s.DB.
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Rooms.Room").
		First(&guest, guestID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrGuestNotFound
		}
		return nil, nil, &PersistenceError{Op: "load guest", Err: err}
	}

	rooms := make([]models.Room, 0, len(guest.Rooms))
	for _, l := range guest.Rooms {
		if l.Room.ID != 0 {
			rooms = append(rooms, l.Room)
		}
	}
	return &guest, rooms, nil
}

// PreviewBill computes what the guest owes right now. For a checked-out guest
// it falls through to reconstruction so the preview matches the invoice that
// was actually charged.
func (s *BillingService) PreviewBill(guestID uint, adjustments []billing.Adjustment) (*billing.Bill, error) {
	guest, rooms, err := s.loadGuest(guestID)
	if err != nil {
		return nil, err
	}

	if guest.Status == models.GuestStatusCheckedOut {
		return s.reconstruct(guest, rooms)
	}

	var charges []models.RoomCharge
	if err := s.DB.Where("guest_id = ?", guest.ID).Order("id ASC").Find(&charges).Error; err != nil {
		return nil, &PersistenceError{Op: "load room charges", Err: err}
	}

	bill := billing.BuildBill(billing.BillInput{
		Guest:         *guest,
		Rooms:         rooms,
		Charges:       charges,
		Adjustments:   adjustments,
		AsOf:          time.Now().UTC(),
		ExtraHourRate: extraHourRate(s.DB),
	})
	return &bill, nil
}

// ReissueInvoice regenerates the invoice of an already-checked-out guest from
// the aggregates frozen at checkout.
func (s *BillingService) ReissueInvoice(guestID uint) (*billing.Bill, error) {
	guest, rooms, err := s.loadGuest(guestID)
	if err != nil {
		return nil, err
	}
	return s.reconstruct(guest, rooms)
}

func (s *BillingService) reconstruct(guest *models.Guest, rooms []models.Room) (*billing.Bill, error) {
	numbers := make([]string, 0, len(rooms))
	for _, r := range rooms {
		numbers = append(numbers, r.RoomNumber)
	}
	bill, err := billing.Reconstruct(*guest, numbers)
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

// PaymentsByGuest lists the realized splits of a guest's settlements.
func (s *BillingService) PaymentsByGuest(guestID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.DB.Where("guest_id = ?", guestID).Order("id ASC").Find(&payments).Error; err != nil {
		return nil, &PersistenceError{Op: "list payments", Err: err}
	}
	return payments, nil
}
