package services

import (
	"errors"
	"log"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"frontdesk-backend/billing"
	"frontdesk-backend/models"
)

type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

// ----------------------------------------------------
// ✅ GetAll (front-desk view)
// - preload rooms
// - fill RoomNumbers for the frontend
// ----------------------------------------------------
func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest

	err := s.DB.
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Rooms.Room").
		Order("guests.id DESC").
		Find(&guests).Error
	if err != nil {
		log.Printf("⬅️ GuestService.GetAll error: %v", err)
		return nil, &PersistenceError{Op: "list guests", Err: err}
	}

	for i := range guests {
		fillRoomNumbers(&guests[i])
	}
	return guests, nil
}

// ----------------------------------------------------
// GET BY ID
// ----------------------------------------------------
func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	err := s.DB.
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Rooms.Room").
		First(&guest, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, &PersistenceError{Op: "load guest", Err: err}
	}
	fillRoomNumbers(&guest)
	return &guest, nil
}

func fillRoomNumbers(g *models.Guest) {
	if len(g.Rooms) == 0 {
		return
	}
	nums := make([]string, 0, len(g.Rooms))
	for _, l := range g.Rooms {
		if l.Room.ID != 0 {
			nums = append(nums, l.Room.RoomNumber)
		}
	}
	g.RoomNumbers = nums
}

// ----------------------------------------------------
// ROOM CHARGES (folio lines)
// ----------------------------------------------------

func validChargeCategory(cat string) bool {
	switch cat {
	case models.ChargeCategoryRestaurant, models.ChargeCategoryService, models.ChargeCategoryOther:
		return true
	}
	return false
}

// AddCharge appends a folio line to a checked-in guest. Charges on a
// checked-out guest are rejected; the frozen aggregates are final.
func (s *GuestService) AddCharge(guestID uint, category, description string, amount decimal.Decimal) (*models.RoomCharge, error) {
	if !validChargeCategory(category) {
		return nil, &billing.ValidationError{Field: "category", Reason: "unknown charge category " + category}
	}
	if !amount.IsPositive() {
		return nil, &billing.ValidationError{Field: "amount", Reason: "charge amount must be positive"}
	}

	var guest models.Guest
	if err := s.DB.First(&guest, guestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, &PersistenceError{Op: "load guest", Err: err}
	}
	if guest.Status != models.GuestStatusCheckedIn {
		return nil, &billing.ConflictError{
			Entity: "guest",
			ID:     guestID,
			State:  guest.Status,
			Reason: "charges can only be posted to a checked-in guest",
		}
	}

	charge := models.RoomCharge{
		GuestID:     guestID,
		Category:    category,
		Description: strings.TrimSpace(description),
		Amount:      amount,
	}
	if err := s.DB.Create(&charge).Error; err != nil {
		return nil, &PersistenceError{Op: "create room charge", Err: err}
	}
	return &charge, nil
}

func (s *GuestService) GetCharges(guestID uint) ([]models.RoomCharge, error) {
	var charges []models.RoomCharge
	if err := s.DB.Where("guest_id = ?", guestID).Order("id ASC").Find(&charges).Error; err != nil {
		return nil, &PersistenceError{Op: "list room charges", Err: err}
	}
	return charges, nil
}

// ----------------------------------------------------
// ADVANCE PAYMENT
// ----------------------------------------------------

// RecordAdvance replaces the collected advance on a checked-in guest. The
// write is conditional on the guest still being checked in; the frozen value
// of a checked-out guest never moves.
func (s *GuestService) RecordAdvance(guestID uint, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return &billing.ValidationError{Field: "amount", Reason: "advance must not be negative"}
	}

	res := s.DB.Model(&models.Guest{}).
		Where("id = ? AND status = ?", guestID, models.GuestStatusCheckedIn).
		Update("advance_payment", amount)
	if res.Error != nil {
		return &PersistenceError{Op: "record advance", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		var guest models.Guest
		if err := s.DB.First(&guest, guestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGuestNotFound
			}
			return &PersistenceError{Op: "load guest", Err: err}
		}
		return &billing.ConflictError{
			Entity: "guest",
			ID:     guestID,
			State:  guest.Status,
			Reason: "advance can only change while the guest is checked in",
		}
	}
	return nil
}
