package types

import (
	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/samber/lo"
)

// CreditBillStatus is the payment status of a statement
type CreditBillStatus string

const (
	CreditBillStatusPending CreditBillStatus = "PENDING"
	CreditBillStatusPartial CreditBillStatus = "PARTIAL"
	CreditBillStatusOverdue CreditBillStatus = "OVERDUE"
	CreditBillStatusPaid    CreditBillStatus = "PAID"
)

func (s CreditBillStatus) String() string {
	return string(s)
}

func (s CreditBillStatus) Validate() error {
	allowed := []CreditBillStatus{
		CreditBillStatusPending,
		CreditBillStatusPartial,
		CreditBillStatusOverdue,
		CreditBillStatusPaid,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid credit bill status").
			WithHint("Please provide a valid credit bill status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CreditBillFilter filters statements of the current user
type CreditBillFilter struct {
	*QueryFilter
	CreditCardID  string             `json:"credit_card_id,omitempty" form:"credit_card_id"`
	CreditBillIDs []string           `json:"credit_bill_ids,omitempty" form:"credit_bill_ids"`
	BillStatus    []CreditBillStatus `json:"bill_status,omitempty" form:"bill_status"`
}

func NewCreditBillFilter() *CreditBillFilter {
	return &CreditBillFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitCreditBillFilter() *CreditBillFilter {
	return &CreditBillFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *CreditBillFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	for _, s := range f.BillStatus {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
