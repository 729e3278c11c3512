package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

// LifecycleController exposes the room/guest state transitions: check-in,
// checkout, housekeeping and maintenance.
type LifecycleController struct {
	Service *services.LifecycleService
}

func NewLifecycleController(s *services.LifecycleService) *LifecycleController {
	return &LifecycleController{Service: s}
}

// CheckIn handles POST /api/checkin
func (lc *LifecycleController) CheckIn(c *gin.Context) {
	var req services.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	guest, err := lc.Service.CheckIn(req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

// Checkout handles POST /api/guests/:id/checkout
func (lc *LifecycleController) Checkout(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	bill, err := lc.Service.Checkout(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

// CleanRoom handles POST /api/rooms/:id/clean
func (lc *LifecycleController) CleanRoom(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	room, err := lc.Service.CleanRoom(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// ToggleMaintenance handles POST /api/rooms/:id/maintenance
func (lc *LifecycleController) ToggleMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	room, err := lc.Service.ToggleMaintenance(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}
