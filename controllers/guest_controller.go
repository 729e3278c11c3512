package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

type GuestController struct {
	Service *services.GuestService
}

func NewGuestController(s *services.GuestService) *GuestController {
	return &GuestController{Service: s}
}

// GetGuests handles GET /api/guests
func (gc *GuestController) GetGuests(c *gin.Context) {
	guests, err := gc.Service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guests)
}

// GetGuestByID handles GET /api/guests/:id
func (gc *GuestController) GetGuestByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	guest, err := gc.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

type chargePayload struct {
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// AddCharge handles POST /api/guests/:id/charges
func (gc *GuestController) AddCharge(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload chargePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	charge, err := gc.Service.AddCharge(id, payload.Category, payload.Description, payload.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, charge)
}

// GetCharges handles GET /api/guests/:id/charges
func (gc *GuestController) GetCharges(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	charges, err := gc.Service.GetCharges(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, charges)
}

type advancePayload struct {
	Amount decimal.Decimal `json:"amount"`
}

// RecordAdvance handles PUT /api/guests/:id/advance
func (gc *GuestController) RecordAdvance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload advancePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := gc.Service.RecordAdvance(id, payload.Amount); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Advance recorded"})
}
