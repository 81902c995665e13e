package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketwise/pocketwise/internal/api/dto"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/service"
)

type CreditBillHandler struct {
	service service.CreditBillService
	log     *logger.Logger
}

func NewCreditBillHandler(service service.CreditBillService, log *logger.Logger) *CreditBillHandler {
	return &CreditBillHandler{
		service: service,
		log:     log,
	}
}

// @Summary Get a bill with its line items
// @Tags CreditBills
// @Produce json
// @Security BearerAuth
// @Param id path string true "Credit bill ID"
// @Success 200 {object} dto.CreditBillResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /credit-bills/{id} [get]
func (h *CreditBillHandler) GetCreditBill(c *gin.Context) {
	resp, err := h.service.GetCreditBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Register a bill payment
// @Tags CreditBills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Credit bill ID"
// @Param payment body dto.PayCreditBillRequest true "Payment"
// @Success 200 {object} dto.CreditBillResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /credit-bills/{id}/pay [post]
func (h *CreditBillHandler) PayCreditBill(c *gin.Context) {
	var req dto.PayCreditBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.PayCreditBill(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Recalculate a bill
// @Description Rebuilds the bill total from its line items and refreshes its status
// @Tags CreditBills
// @Produce json
// @Security BearerAuth
// @Param id path string true "Credit bill ID"
// @Success 200 {object} dto.CreditBillResponse
// @Router /credit-bills/{id}/recalculate [post]
func (h *CreditBillHandler) RecalculateCreditBill(c *gin.Context) {
	bill, err := h.service.RecalculateBillTotal(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.CreditBillResponse{CreditBill: bill})
}
