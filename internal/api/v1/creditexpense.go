package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketwise/pocketwise/internal/api/dto"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/service"
	"github.com/pocketwise/pocketwise/internal/types"
)

type CreditExpenseHandler struct {
	service       service.CreditExpenseService
	refundService service.RefundService
	log           *logger.Logger
}

func NewCreditExpenseHandler(
	service service.CreditExpenseService,
	refundService service.RefundService,
	log *logger.Logger,
) *CreditExpenseHandler {
	return &CreditExpenseHandler{
		service:       service,
		refundService: refundService,
		log:           log,
	}
}

// @Summary Record a purchase
// @Description Records a card purchase and schedules its installments on the card statements
// @Tags CreditExpenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param credit_expense body dto.CreateCreditExpenseRequest true "Purchase"
// @Success 201 {object} dto.CreditExpenseResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /credit-expenses [post]
func (h *CreditExpenseHandler) CreateCreditExpense(c *gin.Context) {
	var req dto.CreateCreditExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCreditExpense(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a purchase with its installments and refunds
// @Tags CreditExpenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Credit expense ID"
// @Success 200 {object} dto.CreditExpenseResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /credit-expenses/{id} [get]
func (h *CreditExpenseHandler) GetCreditExpense(c *gin.Context) {
	resp, err := h.service.GetCreditExpense(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List purchases
// @Tags CreditExpenses
// @Produce json
// @Security BearerAuth
// @Param filter query types.CreditExpenseFilter false "Filter"
// @Success 200 {object} dto.ListCreditExpensesResponse
// @Router /credit-expenses [get]
func (h *CreditExpenseHandler) ListCreditExpenses(c *gin.Context) {
	filter := types.NewCreditExpenseFilter()
	if !bindFilter(c, filter) {
		return
	}

	resp, err := h.service.ListCreditExpenses(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List the refund history of a purchase
// @Tags CreditExpenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Credit expense ID"
// @Success 200 {object} dto.ListRefundEventsResponse
// @Router /credit-expenses/{id}/refunds [get]
func (h *CreditExpenseHandler) ListRefundEvents(c *gin.Context) {
	resp, err := h.service.ListRefundEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Refund a purchase
// @Description Refunds a purchase FULLY, PARTIALLY or per INSTALLMENT
// @Tags CreditExpenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Credit expense ID"
// @Param refund body dto.RefundCreditExpenseRequest true "Refund"
// @Success 200 {object} dto.RefundCreditExpenseResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /credit-expenses/{id}/refund [post]
func (h *CreditExpenseHandler) RefundCreditExpense(c *gin.Context) {
	var req dto.RefundCreditExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.refundService.RefundCreditExpense(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
