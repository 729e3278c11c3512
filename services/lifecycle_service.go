// services/lifecycle_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"frontdesk-backend/billing"
	"frontdesk-backend/models"
	"frontdesk-backend/utils"
)

// LifecycleService owns the room/guest status transitions: check-in, checkout,
// housekeeping and maintenance. Checkout is the only multi-row transition and
// runs as a single transaction with conditional writes, so two workstations
// racing on the same guest cannot both commit.
type LifecycleService struct {
	DB *gorm.DB
}

func NewLifecycleService(db *gorm.DB) *LifecycleService {
	return &LifecycleService{DB: db}
}

// CheckInRequest carries everything the front desk enters at arrival.
type CheckInRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Pax      int    `json:"pax"`

	RoomIDs       []uint `json:"roomIds"`
	GuestCategory string `json:"guestCategory"`
	BookedDays    int    `json:"bookedDays"`

	BaseAmount          *decimal.Decimal `json:"baseAmount,omitempty"`
	ManualPriceOverride *decimal.Decimal `json:"manualPriceOverride,omitempty"`

	MealPlan       string          `json:"mealPlan"`
	MealPlanCharge decimal.Decimal `json:"mealPlanCharge"`
	AdvancePayment decimal.Decimal `json:"advancePayment"`
}

func validCategory(cat string) bool {
	switch cat {
	case models.CategoryWalkIn, models.CategoryCorporate, models.CategoryComplimentary,
		models.CategorySingleLady, models.CategoryGroup, models.CategoryRegular,
		models.CategoryVIP, models.CategoryFreshenUp, models.CategoryOther:
		return true
	}
	return false
}

func (r *CheckInRequest) validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return &billing.ValidationError{Field: "fullName", Reason: "guest name is required"}
	}
	if r.Pax < 1 {
		return &billing.ValidationError{Field: "pax", Reason: "pax must be at least 1"}
	}
	if len(r.RoomIDs) == 0 {
		return &billing.ValidationError{Field: "roomIds", Reason: "at least one room is required"}
	}
	if r.BookedDays < 1 {
		return &billing.ValidationError{Field: "bookedDays", Reason: "booked days must be at least 1"}
	}
	if !validCategory(r.GuestCategory) {
		return &billing.ValidationError{Field: "guestCategory", Reason: "unknown guest category " + r.GuestCategory}
	}
	return nil
}

// CheckIn creates the guest, occupies every requested room and issues the
// access PIN. Room acquisition is a conditional write (free rooms only); any
// already-taken room rolls the whole check-in back.
func (s *LifecycleService) CheckIn(req CheckInRequest) (*models.Guest, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	pin, err := utils.GenerateAccessPIN(utils.PINLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access pin: %w", err)
	}

	guest := models.Guest{
		FullName:            strings.TrimSpace(req.FullName),
		Phone:               strings.TrimSpace(req.Phone),
		Email:               strings.TrimSpace(req.Email),
		Address:             strings.TrimSpace(req.Address),
		Pax:                 req.Pax,
		GuestCategory:       req.GuestCategory,
		CheckIn:             time.Now().UTC(),
		BookedDays:          req.BookedDays,
		BaseAmount:          req.BaseAmount,
		ManualPriceOverride: req.ManualPriceOverride,
		MealPlan:            strings.TrimSpace(req.MealPlan),
		MealPlanCharge:      req.MealPlanCharge,
		AdvancePayment:      req.AdvancePayment,
		AccessPIN:           pin,
		Status:              models.GuestStatusCheckedIn,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&guest).Error; err != nil {
			return &PersistenceError{Op: "create guest", Err: err}
		}

		for i, rid := range req.RoomIDs {
			res := tx.Model(&models.Room{}).
				Where("id = ? AND status = ?", rid, models.RoomStatusFree).
				Updates(map[string]interface{}{
					"status":           models.RoomStatusOccupied,
					"current_guest_id": guest.ID,
				})
			if res.Error != nil {
				return &PersistenceError{Op: fmt.Sprintf("occupy room %d", rid), Err: res.Error}
			}
			if res.RowsAffected == 0 {
				var room models.Room
				if err := tx.First(&room, rid).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrRoomNotFound
					}
					return &PersistenceError{Op: fmt.Sprintf("load room %d", rid), Err: err}
				}
				return &billing.ConflictError{
					Entity: "room",
					ID:     rid,
					State:  room.Status,
					Reason: "check-in requires a free room",
				}
			}

			gr := models.GuestRoom{GuestID: guest.ID, RoomID: rid, Position: i}
			if err := tx.Create(&gr).Error; err != nil {
				return &PersistenceError{Op: fmt.Sprintf("link room %d", rid), Err: err}
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Printf("✅ Checked in guest %d (%s) into rooms %v", guest.ID, guest.FullName, req.RoomIDs)
	return &guest, nil
}

// CheckoutRequest carries the operator-entered settlement: payment splits,
// ad-hoc discount/damage lines and an optional corrected advance figure.
type CheckoutRequest struct {
	Splits          []models.PaymentSplit `json:"splits"`
	Adjustments     []billing.Adjustment  `json:"adjustments"`
	AdvanceOverride *decimal.Decimal      `json:"advanceOverride,omitempty"`
}

// Checkout computes the folio, reconciles the splits against it, then commits
// the transition atomically: the guest-status flip and every room-status flip
// succeed together or not at all. The guest update is conditional on the row
// still being Checked-In, so a concurrent checkout loses cleanly.
func (s *LifecycleService) Checkout(guestID uint, req CheckoutRequest) (*billing.Bill, error) {
	now := time.Now().UTC()
	var bill billing.Bill

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&guest, guestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGuestNotFound
			}
			return &PersistenceError{Op: "load guest", Err: err}
		}
		if guest.Status != models.GuestStatusCheckedIn {
			return &billing.ConflictError{
				Entity: "guest",
				ID:     guest.ID,
				State:  guest.Status,
				Reason: "checkout requires a checked-in guest",
			}
		}

		var links []models.GuestRoom
		if err := tx.Preload("Room").
			Where("guest_id = ?", guest.ID).
			Order("position ASC").
			Find(&links).Error; err != nil {
			return &PersistenceError{Op: "load guest rooms", Err: err}
		}
		rooms := make([]models.Room, 0, len(links))
		for _, l := range links {
			rooms = append(rooms, l.Room)
		}

		var charges []models.RoomCharge
		if err := tx.Where("guest_id = ?", guest.ID).
			Order("id ASC").
			Find(&charges).Error; err != nil {
			return &PersistenceError{Op: "load room charges", Err: err}
		}

		if req.AdvanceOverride != nil {
			guest.AdvancePayment = *req.AdvanceOverride
		}

		bill = billing.BuildBill(billing.BillInput{
			Guest:         guest,
			Rooms:         rooms,
			Charges:       charges,
			Adjustments:   req.Adjustments,
			AsOf:          now,
			ExtraHourRate: extraHourRate(tx),
		})

		splits, err := billing.Reconcile(req.Splits, bill.BalanceDue)
		if err != nil {
			return err
		}

		bill.InvoiceNumber = newInvoiceNumber()
		snapshot, err := json.Marshal(bill)
		if err != nil {
			return fmt.Errorf("failed to snapshot bill: %w", err)
		}

		// Atomic conditional write: freezes the bill onto the guest only if it
		// is still checked in. RowsAffected 0 means another workstation won.
		res := tx.Model(&models.Guest{}).
			Where("id = ? AND status = ?", guest.ID, models.GuestStatusCheckedIn).
			Updates(map[string]interface{}{
				"status":                  models.GuestStatusCheckedOut,
				"check_out":               now,
				"extra_hours":             bill.ExtraHours,
				"extra_charge":            bill.ExtraCharge,
				"total_charge":            bill.TotalAfterDiscount,
				"discount_amount":         bill.Discount,
				"damage_charges":          bill.DamageCharges,
				"restaurant_charges_paid": bill.RestaurantCharges,
				"advance_payment":         bill.Advance,
				"invoice_number":          bill.InvoiceNumber,
				"bill_snapshot":           datatypes.JSON(snapshot),
				"access_pin":              "",
			})
		if res.Error != nil {
			return &PersistenceError{Op: "freeze guest", Err: res.Error}
		}
		if res.RowsAffected == 0 {
			return &billing.ConflictError{
				Entity: "guest",
				ID:     guest.ID,
				State:  models.GuestStatusCheckedOut,
				Reason: "guest was checked out concurrently",
			}
		}

		for _, l := range links {
			res := tx.Model(&models.Room{}).
				Where("id = ? AND current_guest_id = ?", l.RoomID, guest.ID).
				Updates(map[string]interface{}{
					"status":           models.RoomStatusHousekeeping,
					"current_guest_id": nil,
				})
			if res.Error != nil {
				return &PersistenceError{Op: fmt.Sprintf("release room %d", l.RoomID), Err: res.Error}
			}
			if res.RowsAffected == 0 {
				return &PersistenceError{
					Op:  fmt.Sprintf("release room %d", l.RoomID),
					Err: fmt.Errorf("room no longer held by guest %d", guest.ID),
				}
			}
		}

		if err := tx.Model(&models.RoomCharge{}).
			Where("guest_id = ?", guest.ID).
			Update("bill_generated", true).Error; err != nil {
			return &PersistenceError{Op: "flag room charges", Err: err}
		}

		batchID := uuid.NewString()
		for _, sp := range splits {
			payment := models.Payment{
				GuestID:       guest.ID,
				Method:        sp.Method,
				Amount:        sp.Amount,
				Reference:     sp.Reference,
				BatchID:       batchID,
				InvoiceNumber: bill.InvoiceNumber,
			}
			if err := tx.Create(&payment).Error; err != nil {
				return &PersistenceError{Op: "record payment", Err: err}
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	log.Printf("✅ Checked out guest %d, invoice %s, balance %s settled", guestID, bill.InvoiceNumber, bill.BalanceDue)
	return &bill, nil
}

// CleanRoom releases a housekeeping room back to the free pool.
func (s *LifecycleService) CleanRoom(roomID uint) (*models.Room, error) {
	res := s.DB.Model(&models.Room{}).
		Where("id = ? AND status = ?", roomID, models.RoomStatusHousekeeping).
		Update("status", models.RoomStatusFree)
	if res.Error != nil {
		return nil, &PersistenceError{Op: "clean room", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		var room models.Room
		if err := s.DB.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRoomNotFound
			}
			return nil, &PersistenceError{Op: "load room", Err: err}
		}
		return nil, &billing.ConflictError{
			Entity: "room",
			ID:     roomID,
			State:  room.Status,
			Reason: "only housekeeping rooms can be cleaned",
		}
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		return nil, &PersistenceError{Op: "reload room", Err: err}
	}
	return &room, nil
}

// MaintenanceTarget returns the status a maintenance toggle moves a room to.
// Occupied and housekeeping rooms reject the toggle; they must be freed or
// cleaned first.
func MaintenanceTarget(status string) (string, error) {
	switch status {
	case models.RoomStatusFree:
		return models.RoomStatusMaintenance, nil
	case models.RoomStatusMaintenance:
		return models.RoomStatusFree, nil
	}
	return "", &billing.ConflictError{
		Entity: "room",
		State:  status,
		Reason: "maintenance toggles only between free and maintenance",
	}
}

// ToggleMaintenance flips a room between free and maintenance. The write is
// conditional on the status it was read at, so a concurrent transition makes
// the toggle fail instead of clobbering it.
func (s *LifecycleService) ToggleMaintenance(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, &PersistenceError{Op: "load room", Err: err}
	}

	target, err := MaintenanceTarget(room.Status)
	if err != nil {
		if conflict, ok := err.(*billing.ConflictError); ok {
			conflict.ID = roomID
		}
		return nil, err
	}

	res := s.DB.Model(&models.Room{}).
		Where("id = ? AND status = ?", roomID, room.Status).
		Update("status", target)
	if res.Error != nil {
		return nil, &PersistenceError{Op: "toggle maintenance", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, &billing.ConflictError{
			Entity: "room",
			ID:     roomID,
			State:  room.Status,
			Reason: "room status changed concurrently",
		}
	}

	room.Status = target
	return &room, nil
}

// newInvoiceNumber derives a short printable invoice number.
func newInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}

// extraHourRate reads the configured overstay rate; zero tells the folio
// builder to fall back to the fixed default.
func extraHourRate(tx *gorm.DB) decimal.Decimal {
	var setting models.HotelSetting
	if err := tx.First(&setting).Error; err != nil {
		return decimal.Zero
	}
	return setting.ExtraHourRate
}
