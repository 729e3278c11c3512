package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"frontdesk-backend/billing"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

// respondError maps the service error taxonomy onto HTTP statuses:
// validation 400, not-found 404, conflicts 409, amount mismatch 422,
// persistence (retryable) 503, anything else 500.
func respondError(c *gin.Context, err error) {
	var (
		validation *billing.ValidationError
		missing    *billing.MissingReferenceError
		conflict   *billing.ConflictError
		mismatch   *billing.AmountMismatchError
		persist    *services.PersistenceError
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &missing):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrGuestNotFound), errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.As(err, &mismatch):
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &persist):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success":   false,
			"error":     err.Error(),
			"retryable": true,
		})
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
