package types

import (
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/samber/lo"
)

// RefundType selects how a purchase is refunded
type RefundType string

const (
	// RefundTypeFull reverses a purchase none of whose installments was paid
	RefundTypeFull RefundType = "FULL"
	// RefundTypePartial injects credits for an arbitrary amount into open bills
	RefundTypePartial RefundType = "PARTIAL"
	// RefundTypeInstallment reverses individual installments
	RefundTypeInstallment RefundType = "INSTALLMENT"
)

func (r RefundType) String() string {
	return string(r)
}

func (r RefundType) Validate() error {
	allowed := []RefundType{
		RefundTypeFull,
		RefundTypePartial,
		RefundTypeInstallment,
	}
	if !lo.Contains(allowed, r) {
		return ierr.NewError("invalid refund type").
			WithHint("Refund type must be one of FULL, PARTIAL or INSTALLMENT").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
