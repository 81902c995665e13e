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

type CreditCardHandler struct {
	service     service.CreditCardService
	billService service.CreditBillService
	log         *logger.Logger
}

func NewCreditCardHandler(
	service service.CreditCardService,
	billService service.CreditBillService,
	log *logger.Logger,
) *CreditCardHandler {
	return &CreditCardHandler{
		service:     service,
		billService: billService,
		log:         log,
	}
}

// @Summary Create a credit card
// @Tags CreditCards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param credit_card body dto.CreateCreditCardRequest true "Credit card"
// @Success 201 {object} dto.CreditCardResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /credit-cards [post]
func (h *CreditCardHandler) CreateCreditCard(c *gin.Context) {
	var req dto.CreateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCreditCard(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a credit card
// @Tags CreditCards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Credit card ID"
// @Success 200 {object} dto.CreditCardResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /credit-cards/{id} [get]
func (h *CreditCardHandler) GetCreditCard(c *gin.Context) {
	resp, err := h.service.GetCreditCard(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List credit cards
// @Tags CreditCards
// @Produce json
// @Security BearerAuth
// @Param filter query types.CreditCardFilter false "Filter"
// @Success 200 {object} dto.ListCreditCardsResponse
// @Router /credit-cards [get]
func (h *CreditCardHandler) ListCreditCards(c *gin.Context) {
	filter := types.NewCreditCardFilter()
	if !bindFilter(c, filter) {
		return
	}

	resp, err := h.service.ListCreditCards(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a credit card
// @Description New closing and due days only apply to statements created afterwards
// @Tags CreditCards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Credit card ID"
// @Param credit_card body dto.UpdateCreditCardRequest true "Changes"
// @Success 200 {object} dto.CreditCardResponse
// @Router /credit-cards/{id} [put]
func (h *CreditCardHandler) UpdateCreditCard(c *gin.Context) {
	var req dto.UpdateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateCreditCard(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a credit card
// @Tags CreditCards
// @Security BearerAuth
// @Param id path string true "Credit card ID"
// @Success 204
// @Router /credit-cards/{id} [delete]
func (h *CreditCardHandler) DeleteCreditCard(c *gin.Context) {
	if err := h.service.DeleteCreditCard(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List the bills of a credit card
// @Tags CreditCards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Credit card ID"
// @Param filter query types.CreditBillFilter false "Filter"
// @Success 200 {object} dto.ListCreditBillsResponse
// @Router /credit-cards/{id}/bills [get]
func (h *CreditCardHandler) ListCreditBills(c *gin.Context) {
	filter := types.NewCreditBillFilter()
	if !bindFilter(c, filter) {
		return
	}
	filter.CreditCardID = c.Param("id")

	resp, err := h.billService.ListCreditBills(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
