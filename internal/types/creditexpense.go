package types

import (
	"fmt"
	"strconv"
	"strings"

	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/samber/lo"
)

// CreditExpenseType discriminates purchases from refund records
type CreditExpenseType string

const (
	CreditExpenseTypeExpense CreditExpenseType = "EXPENSE"
	CreditExpenseTypeRefund  CreditExpenseType = "REFUND"
)

func (t CreditExpenseType) String() string {
	return string(t)
}

func (t CreditExpenseType) Validate() error {
	allowed := []CreditExpenseType{
		CreditExpenseTypeExpense,
		CreditExpenseTypeRefund,
	}
	if !lo.Contains(allowed, t) {
		return ierr.NewError("invalid credit expense type").
			WithHint("Please provide a valid credit expense type").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Audit tags written on purchases. Tags are only ever appended.
const (
	TagRefundedFull                 = "refunded_full"
	TagRefundOfPrefix               = "refund_of_"
	TagRefundedPartialPrefix        = "refunded_partial_"
	TagRefundedInstallmentPrefix    = "refunded_installment_"
	MaxInstallments                 = 72
	DefaultCreditExpenseInstallment = 1
)

func RefundOfTag(expenseID string) string {
	return TagRefundOfPrefix + expenseID
}

func RefundedPartialTag(n int) string {
	return fmt.Sprintf("%s%d", TagRefundedPartialPrefix, n)
}

func RefundedInstallmentTag(n int) string {
	return fmt.Sprintf("%s%d", TagRefundedInstallmentPrefix, n)
}

// CountPartialRefundTags returns how many partial refunds a tag set records
func CountPartialRefundTags(tags []string) int {
	return lo.CountBy(tags, func(tag string) bool {
		return strings.HasPrefix(tag, TagRefundedPartialPrefix)
	})
}

// RefundedInstallmentNumbers returns the installment numbers already refunded
// individually according to the tag set
func RefundedInstallmentNumbers(tags []string) []int {
	numbers := make([]int, 0)
	for _, tag := range tags {
		if !strings.HasPrefix(tag, TagRefundedInstallmentPrefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(tag, TagRefundedInstallmentPrefix))
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}

// AppendTags appends tags that are not already present, keeping order
func AppendTags(tags []string, add ...string) []string {
	out := append(make([]string, 0, len(tags)+len(add)), tags...)
	for _, tag := range add {
		if !lo.Contains(out, tag) {
			out = append(out, tag)
		}
	}
	return out
}

// CreditExpenseFilter filters credit expenses of the current user
type CreditExpenseFilter struct {
	*QueryFilter
	CreditCardID     string              `json:"credit_card_id,omitempty" form:"credit_card_id"`
	ParentExpenseIDs []string            `json:"parent_expense_ids,omitempty" form:"parent_expense_ids"`
	CreditBillIDs    []string            `json:"credit_bill_ids,omitempty" form:"credit_bill_ids"`
	Types            []CreditExpenseType `json:"types,omitempty" form:"types"`
	// RootOnly restricts the result to purchases (rows without a parent)
	RootOnly bool `json:"root_only,omitempty" form:"root_only"`
}

func NewCreditExpenseFilter() *CreditExpenseFilter {
	return &CreditExpenseFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitCreditExpenseFilter() *CreditExpenseFilter {
	return &CreditExpenseFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *CreditExpenseFilter) Validate() error {
	if err := f.QueryFilter.Validate(); err != nil {
		return err
	}
	for _, t := range f.Types {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}
