package engine

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/finpersona/seedgen/internal/domain"
)

// Waking window for randomized time-of-day stamps. Same-day transactions
// land between 07:00:00 and 22:59:59 instead of all at midnight.
const (
	wakingHourFirst = 7
	wakingHourLast  = 22
)

// EmitFunc receives candidates in the order the engine produces them:
// ascending by day, tier order within a day.
type EmitFunc func(domain.Candidate) error

// Engine walks a calendar day by day and evaluates a persona's five rule
// tiers per day, in fixed precedence: rare-date, income, monthly, daily,
// occasional. The structural output (number and placement of candidates
// from the deterministic tiers) depends only on the rule set and range;
// amounts, time-of-day stamps, and the probabilistic tiers depend on the
// injected random source.
type Engine struct {
	rng     *rand.Rand
	sampler *AmountSampler
}

// New creates an engine backed by the given random source. The engine
// never touches the process-global generator, so reproducibility is a
// caller-controlled property: a fixed-seed source replays identically.
func New(rng *rand.Rand) *Engine {
	return &Engine{
		rng:     rng,
		sampler: NewAmountSampler(rng),
	}
}

// Run evaluates the persona's rules over the inclusive date range and
// passes each candidate to emit. The first failure (unresolvable account
// reference, inverted amount range, emit error) aborts the walk; there is
// no partial silent skip.
func (e *Engine) Run(p *domain.Persona, dr domain.DateRange, emit EmitFunc) error {
	return dr.Each(func(day time.Time) error {
		// Tier 1: rare, date-specific events with explicit direction.
		for _, rule := range p.RareDateRules {
			if !rule.OnDate(day) {
				continue
			}
			err := e.emit(p, day, emit, domain.Candidate{
				Direction:   rule.Direction,
				Description: rule.Description,
				Merchant:    rule.Merchant,
				Category:    rule.Category,
			}, rule.AccountRef, rule.Amount)
			if err != nil {
				return fmt.Errorf("rare date rule on %s: %w", day.Format("2006-01-02"), err)
			}
		}

		// Tier 2: income, fixed day of month, always a credit. A day-31
		// rule simply never matches in a shorter month.
		for _, rule := range p.IncomeRules {
			if day.Day() != rule.DayOfMonth {
				continue
			}
			err := e.emit(p, day, emit, domain.Candidate{
				Direction:   domain.DirectionCredit,
				Description: rule.Description,
				Merchant:    rule.Merchant,
				Category:    "Income",
			}, rule.AccountRef, rule.Amount)
			if err != nil {
				return fmt.Errorf("income rule day %d: %w", rule.DayOfMonth, err)
			}
		}

		// Tier 3: regular monthly debits, same cadence as income.
		for _, rule := range p.MonthlyRules {
			if day.Day() != rule.DayOfMonth {
				continue
			}
			err := e.emit(p, day, emit, domain.Candidate{
				Direction:   domain.DirectionDebit,
				Description: rule.Description,
				Merchant:    rule.Merchant,
				Category:    rule.Category,
			}, rule.AccountRef, rule.Amount)
			if err != nil {
				return fmt.Errorf("monthly rule day %d: %w", rule.DayOfMonth, err)
			}
		}

		// Tier 4: daily habits, one independent Bernoulli trial per rule
		// per day. No mutual exclusion between rules.
		for _, rule := range p.DailyRules {
			if e.rng.Float64() >= rule.Probability {
				continue
			}
			err := e.emit(p, day, emit, domain.Candidate{
				Direction:   domain.DirectionDebit,
				Description: rule.Description,
				Merchant:    rule.Merchant,
				Category:    rule.Category,
			}, rule.AccountRef, rule.Amount)
			if err != nil {
				return fmt.Errorf("daily rule %q: %w", rule.Description, err)
			}
		}

		// Tier 5: occasional discretionary spend, same mechanics as the
		// daily tier over its own rule set.
		for _, rule := range p.OccasionalRules {
			if e.rng.Float64() >= rule.Probability {
				continue
			}
			err := e.emit(p, day, emit, domain.Candidate{
				Direction:   domain.DirectionDebit,
				Description: rule.Description,
				Merchant:    rule.Merchant,
				Category:    rule.Category,
			}, rule.AccountRef, rule.Amount)
			if err != nil {
				return fmt.Errorf("occasional rule %q: %w", rule.Description, err)
			}
		}

		return nil
	})
}

// emit resolves the account, samples the amount, stamps a randomized
// time of day and hands the completed candidate to the caller.
func (e *Engine) emit(p *domain.Persona, day time.Time, emit EmitFunc, c domain.Candidate, accountRef int, amount domain.AmountRange) error {
	accountID, err := p.AccountID(accountRef)
	if err != nil {
		return err
	}
	sampled, err := e.sampler.Sample(amount)
	if err != nil {
		return err
	}

	c.AccountID = accountID
	c.Amount = sampled
	c.Timestamp = e.timeOfDay(day)
	c.Currency = domain.DefaultCurrency
	c.Status = domain.StatusCompleted
	return emit(c)
}

// timeOfDay places a timestamp within the waking window of the given day.
func (e *Engine) timeOfDay(day time.Time) time.Time {
	hour := wakingHourFirst + e.rng.Intn(wakingHourLast-wakingHourFirst+1)
	minute := e.rng.Intn(60)
	second := e.rng.Intn(60)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, 0, time.UTC)
}
