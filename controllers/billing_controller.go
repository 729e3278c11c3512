package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"frontdesk-backend/billing"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

type BillingController struct {
	Service *services.BillingService
}

func NewBillingController(s *services.BillingService) *BillingController {
	return &BillingController{Service: s}
}

type previewPayload struct {
	Adjustments []billing.Adjustment `json:"adjustments"`
}

// PreviewBill handles POST /api/guests/:id/bill — POST so the front desk can
// include not-yet-persisted discount/damage lines in the preview.
func (bc *BillingController) PreviewBill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload previewPayload
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
			return
		}
	}

	bill, err := bc.Service.PreviewBill(id, payload.Adjustments)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

// ReissueInvoice handles GET /api/guests/:id/invoice
func (bc *BillingController) ReissueInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	bill, err := bc.Service.ReissueInvoice(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

// GetPayments handles GET /api/guests/:id/payments
func (bc *BillingController) GetPayments(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	payments, err := bc.Service.PaymentsByGuest(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}
