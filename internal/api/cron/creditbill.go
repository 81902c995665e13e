package cron

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/logger"
	"github.com/pocketwise/pocketwise/internal/service"
	"github.com/pocketwise/pocketwise/internal/types"
)

type CreditBillCronHandler struct {
	logger      *logger.Logger
	billService service.CreditBillService
}

func NewCreditBillCronHandler(logger *logger.Logger, billService service.CreditBillService) *CreditBillCronHandler {
	return &CreditBillCronHandler{
		logger:      logger,
		billService: billService,
	}
}

// RefreshStatuses re-evaluates the status of every unpaid bill of the caller.
// Scheduled jobs authenticated with the cron key refresh every user; users
// asking for all_users=true are refused.
func (h *CreditBillCronHandler) RefreshStatuses(c *gin.Context) {
	allUsers := false
	if raw := c.Query("all_users"); raw != "" {
		var err error
		allUsers, err = strconv.ParseBool(raw)
		if err != nil {
			c.Error(ierr.WithError(err).
				WithHint("all_users must be true or false").
				Mark(ierr.ErrValidation))
			return
		}
	}

	ctx := c.Request.Context()
	cronCaller := types.IsCronCaller(ctx)
	if allUsers && !cronCaller {
		c.Error(ierr.NewError("all_users requires the cron key").
			WithHint("Only scheduled jobs may refresh the bills of every user").
			Mark(ierr.ErrPermissionDenied))
		return
	}
	allUsers = allUsers || cronCaller

	var userIDs []string
	if !allUsers {
		userIDs = []string{types.GetUserID(ctx)}
	}

	h.logger.Infow("starting credit bill status refresh", "all_users", allUsers)

	resp, err := h.billService.RefreshBillStatuses(ctx, userIDs)
	if err != nil {
		h.logger.Errorw("failed to refresh credit bill statuses", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
