package billingcycle

import (
	"time"

	ierr "github.com/pocketwise/pocketwise/internal/errors"
	"github.com/pocketwise/pocketwise/internal/types"
	"github.com/shopspring/decimal"
)

// Installment is one scheduled slice of a purchase
type Installment struct {
	Number int             `json:"installment_number"`
	Amount decimal.Decimal `json:"amount"`
	Statement
}

// ScheduleInstallments splits total into count installments, one per
// statement, starting with the statement open on purchaseDate. The last
// installment absorbs the rounding remainder so the amounts always add up to
// total.
func (c Cycle) ScheduleInstallments(purchaseDate time.Time, count int, total decimal.Decimal) ([]Installment, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if count < 1 || count > types.MaxInstallments {
		return nil, ierr.NewError("invalid installment count").
			WithHintf("Installments must be between 1 and %d", types.MaxInstallments).
			WithReportableDetails(map[string]any{"installments": count}).
			Mark(ierr.ErrValidation)
	}
	if !total.IsPositive() {
		return nil, ierr.NewError("invalid purchase amount").
			WithHint("Amount must be greater than zero").
			Mark(ierr.ErrValidation)
	}

	amounts := SplitAmount(total, count)
	first := c.PeriodFor(purchaseDate)

	installments := make([]Installment, count)
	for i := 0; i < count; i++ {
		installments[i] = Installment{
			Number:    i + 1,
			Amount:    amounts[i],
			Statement: c.Statement(first.Add(i)),
		}
	}
	return installments, nil
}

// SplitAmount divides total in n parts rounded to the cent. All parts but the
// last are equal; the last one takes whatever is left.
func SplitAmount(total decimal.Decimal, n int) []decimal.Decimal {
	if n < 1 {
		return nil
	}
	total = types.RoundMoney(total)
	base := total.DivRound(decimal.NewFromInt(int64(n)), types.MoneyPrecision)

	parts := make([]decimal.Decimal, n)
	for i := 0; i < n-1; i++ {
		parts[i] = base
	}
	parts[n-1] = total.Sub(base.Mul(decimal.NewFromInt(int64(n - 1))))
	return parts
}
