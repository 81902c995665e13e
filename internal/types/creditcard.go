package types

// CreditCardFilter filters the cards of the current user
type CreditCardFilter struct {
	*QueryFilter
	CreditCardIDs []string `json:"credit_card_ids,omitempty" form:"credit_card_ids"`
}

func NewCreditCardFilter() *CreditCardFilter {
	return &CreditCardFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitCreditCardFilter() *CreditCardFilter {
	return &CreditCardFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *CreditCardFilter) Validate() error {
	return f.QueryFilter.Validate()
}
