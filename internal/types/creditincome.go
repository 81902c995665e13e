package types

// CreditIncomeFilter filters credit lines of the current user
type CreditIncomeFilter struct {
	*QueryFilter
	CreditCardID     string   `json:"credit_card_id,omitempty" form:"credit_card_id"`
	CreditBillIDs    []string `json:"credit_bill_ids,omitempty" form:"credit_bill_ids"`
	CreditExpenseIDs []string `json:"credit_expense_ids,omitempty" form:"credit_expense_ids"`
}

func NewNoLimitCreditIncomeFilter() *CreditIncomeFilter {
	return &CreditIncomeFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *CreditIncomeFilter) Validate() error {
	return f.QueryFilter.Validate()
}
