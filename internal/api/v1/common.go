package v1

import (
	"github.com/gin-gonic/gin"
	ierr "github.com/pocketwise/pocketwise/internal/errors"
)

// bindFilter binds query parameters over a filter that already carries the
// default page
func bindFilter(c *gin.Context, filter any) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return false
	}
	return true
}
