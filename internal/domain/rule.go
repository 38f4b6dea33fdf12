package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AmountRange is an inclusive [Min, Max] bound a transaction amount is
// sampled from. Min == Max degenerates to a constant, which fixed-amount
// rules (rent, salary) rely on.
type AmountRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// Amount returns a constant amount range.
func Amount(value int64) AmountRange {
	v := decimal.NewFromInt(value)
	return AmountRange{Min: v, Max: v}
}

// AmountBetween returns an inclusive amount range.
func AmountBetween(min, max int64) AmountRange {
	return AmountRange{Min: decimal.NewFromInt(min), Max: decimal.NewFromInt(max)}
}

// Validate ensures the range is not inverted.
func (r AmountRange) Validate() error {
	if r.Min.GreaterThan(r.Max) {
		return fmt.Errorf("%w: amount min %s exceeds max %s", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Contains reports whether amount lies within the inclusive bound.
func (r AmountRange) Contains(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(r.Min) && amount.LessThanOrEqual(r.Max)
}

// IsConstant reports whether the range degenerates to a single value.
func (r AmountRange) IsConstant() bool {
	return r.Min.Equal(r.Max)
}

// IncomeRule fires once per month, on months that have its exact day
// number, producing a CREDIT candidate. A day-31 rule never fires in a
// 30-day month; there is no last-day-of-month fallback.
type IncomeRule struct {
	DayOfMonth  int
	AccountRef  int
	Merchant    string
	Description string
	Amount      AmountRange
}

// MonthlyRule has the same cadence as IncomeRule but produces a DEBIT
// candidate tagged with its category (rent, utilities, groceries).
type MonthlyRule struct {
	DayOfMonth  int
	AccountRef  int
	Category    string
	Merchant    string
	Description string
	Amount      AmountRange
}

// DailyRule is evaluated every day of the range as an independent
// Bernoulli trial with the rule's probability.
type DailyRule struct {
	Probability float64
	AccountRef  int
	Category    string
	Merchant    string
	Description string
	Amount      AmountRange
}

// OccasionalRule has the same mechanics as DailyRule but models rarer,
// usually larger discretionary purchases. Kept as a distinct tier so the
// two rule sets stay separately declared and separately ordered.
type OccasionalRule struct {
	Probability float64
	AccountRef  int
	Category    string
	Merchant    string
	Description string
	Amount      AmountRange
}

// RareDateRule fires at most once, on exactly its configured calendar
// date, with an explicit direction (a bonus is a CREDIT, a trip a DEBIT).
type RareDateRule struct {
	Date        time.Time
	AccountRef  int
	Category    string
	Merchant    string
	Description string
	Amount      AmountRange
	Direction   Direction
}

// OnDate reports whether the rule fires on the given calendar day.
// Both sides are compared at day granularity in UTC.
func (r RareDateRule) OnDate(day time.Time) bool {
	return midnightUTC(r.Date).Equal(midnightUTC(day))
}

func validDayOfMonth(day int) error {
	if day < 1 || day > 31 {
		return fmt.Errorf("day of month %d out of range 1..31", day)
	}
	return nil
}

func validProbability(p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("probability %v out of range [0, 1]", p)
	}
	return nil
}

func (r IncomeRule) validate() error {
	if err := validDayOfMonth(r.DayOfMonth); err != nil {
		return err
	}
	return r.Amount.Validate()
}

func (r MonthlyRule) validate() error {
	if err := validDayOfMonth(r.DayOfMonth); err != nil {
		return err
	}
	return r.Amount.Validate()
}

func (r DailyRule) validate() error {
	if err := validProbability(r.Probability); err != nil {
		return err
	}
	return r.Amount.Validate()
}

func (r OccasionalRule) validate() error {
	if err := validProbability(r.Probability); err != nil {
		return err
	}
	return r.Amount.Validate()
}

func (r RareDateRule) validate() error {
	if r.Date.IsZero() {
		return errors.New("rare date rule must have a date")
	}
	if r.Direction != DirectionDebit && r.Direction != DirectionCredit {
		return fmt.Errorf("rare date rule direction must be %s or %s", DirectionDebit, DirectionCredit)
	}
	return r.Amount.Validate()
}
