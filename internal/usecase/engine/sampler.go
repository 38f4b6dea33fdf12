package engine

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/finpersona/seedgen/internal/domain"
)

// AmountSampler draws monetary amounts uniformly from inclusive ranges.
// The draw may carry more than 2 decimal places; rounding to currency
// precision happens at serialization, not here.
type AmountSampler struct {
	rng *rand.Rand
}

// NewAmountSampler creates a sampler backed by the given random source.
func NewAmountSampler(rng *rand.Rand) *AmountSampler {
	return &AmountSampler{rng: rng}
}

// Sample returns an amount in [r.Min, r.Max]. When the range degenerates
// to a constant the result is exactly that constant, which fixed-amount
// rules (salary, rent) depend on.
func (s *AmountSampler) Sample(r domain.AmountRange) (decimal.Decimal, error) {
	if err := r.Validate(); err != nil {
		return decimal.Zero, fmt.Errorf("sample amount: %w", err)
	}
	if r.IsConstant() {
		return r.Min, nil
	}
	span := r.Max.Sub(r.Min)
	factor := decimal.NewFromFloat(s.rng.Float64())
	return r.Min.Add(span.Mul(factor)), nil
}
