// Package billingcycle holds the statement calendar of a credit card: when
// a statement closes, when it is due, which statement a purchase falls in and
// how purchases and refunds are spread over consecutive statements.
//
// Every other component derives dates from here instead of doing its own
// calendar arithmetic.
package billingcycle

import (
	"fmt"
	"time"

	ierr "github.com/pocketwise/pocketwise/internal/errors"
)

// Cycle is the statement configuration of a card. Days above the length of a
// month are clamped to the month's last day.
type Cycle struct {
	ClosingDay int
	DueDay     int
}

func NewCycle(closingDay, dueDay int) (Cycle, error) {
	c := Cycle{ClosingDay: closingDay, DueDay: dueDay}
	if err := c.Validate(); err != nil {
		return Cycle{}, err
	}
	return c, nil
}

func (c Cycle) Validate() error {
	if c.ClosingDay < 1 || c.ClosingDay > 31 {
		return ierr.NewError("closing day out of range").
			WithHint("Closing day must be between 1 and 31").
			WithReportableDetails(map[string]any{"closing_day": c.ClosingDay}).
			Mark(ierr.ErrValidation)
	}
	if c.DueDay < 1 || c.DueDay > 31 {
		return ierr.NewError("due day out of range").
			WithHint("Due day must be between 1 and 31").
			WithReportableDetails(map[string]any{"due_day": c.DueDay}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Period identifies a statement by the calendar month it closes in
type Period struct {
	Year  int
	Month time.Month
}

func NewPeriod(year int, month time.Month) Period {
	// time.Date normalizes out of range months
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Period{Year: t.Year(), Month: t.Month()}
}

// Add moves the period by n months, rolling the year as needed
func (p Period) Add(months int) Period {
	return NewPeriod(p.Year, p.Month+time.Month(months))
}

func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// DaysInMonth returns the number of days of the given month
func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clampedDate(year int, month time.Month, day int) time.Time {
	p := NewPeriod(year, month)
	if last := DaysInMonth(p.Year, p.Month); day > last {
		day = last
	}
	return time.Date(p.Year, p.Month, day, 0, 0, 0, 0, time.UTC)
}

// ClosingDate returns the day the statement of (year, month) closes
func (c Cycle) ClosingDate(year int, month time.Month) time.Time {
	return clampedDate(year, month, c.ClosingDay)
}

// DueDate returns the payment date of the statement closing in (year, month).
// It always falls in the following calendar month.
func (c Cycle) DueDate(year int, month time.Month) time.Time {
	next := NewPeriod(year, month).Add(1)
	return clampedDate(next.Year, next.Month, c.DueDay)
}

// BillPeriod maps a due date back to the statement it pays
func BillPeriod(dueDate time.Time) Period {
	return NewPeriod(dueDate.Year(), dueDate.Month()).Add(-1)
}

// PeriodFor returns the statement that is open on date. A charge made on the
// closing day still belongs to that month's statement; anything after it
// rolls into the next one.
func (c Cycle) PeriodFor(date time.Time) Period {
	p := NewPeriod(date.Year(), date.Month())
	if c.IsAfterClosing(date) {
		return p.Add(1)
	}
	return p
}

// IsAfterClosing reports whether date is strictly after the closing day of
// its month
func (c Cycle) IsAfterClosing(date time.Time) bool {
	return date.Day() > c.ClosingDay
}

// Statement is a fully resolved statement period
type Statement struct {
	Period      Period
	ClosingDate time.Time
	DueDate     time.Time
}

func (c Cycle) Statement(p Period) Statement {
	return Statement{
		Period:      p,
		ClosingDate: c.ClosingDate(p.Year, p.Month),
		DueDate:     c.DueDate(p.Year, p.Month),
	}
}
