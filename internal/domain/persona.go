package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Identity is the user seeded alongside a persona's dataset.
type Identity struct {
	ID       uuid.UUID
	Email    string
	FullName string
}

// Account is one of a persona's bank accounts or wallets. The balance is
// a seed value only; the generator never updates it.
type Account struct {
	ID             uuid.UUID
	BankName       string
	NumberMasked   string
	AccountType    string
	OpeningBalance decimal.Decimal
}

// StockHolding is a seeded portfolio position, independent of the
// transaction stream.
type StockHolding struct {
	Symbol          string
	Name            string
	Quantity        decimal.Decimal // 6-decimal precision
	AverageBuyPrice decimal.Decimal
	CurrentPrice    decimal.Decimal
	Currency        string
}

// Persona is a declarative financial-identity profile: one user, their
// accounts and holdings, and the five rule tiers that drive a simulated
// year of transactions. Immutable once registered.
type Persona struct {
	Name            string
	Identity        Identity
	Accounts        []Account
	StockHoldings   []StockHolding
	IncomeRules     []IncomeRule
	MonthlyRules    []MonthlyRule
	DailyRules      []DailyRule
	OccasionalRules []OccasionalRule
	RareDateRules   []RareDateRule
}

// AccountID resolves a rule's account reference (an index into Accounts)
// to the concrete account id. Returns ErrUnknownAccount when the index is
// out of bounds.
func (p *Persona) AccountID(ref int) (uuid.UUID, error) {
	if ref < 0 || ref >= len(p.Accounts) {
		return uuid.Nil, fmt.Errorf("%w: index %d for persona %q with %d accounts",
			ErrUnknownAccount, ref, p.Name, len(p.Accounts))
	}
	return p.Accounts[ref].ID, nil
}

// Username derives the seeded username from the identity email: the local
// part, truncated to 32 characters.
func (p *Persona) Username() string {
	username := p.Identity.Email
	if at := strings.Index(username, "@"); at >= 0 {
		username = username[:at]
	}
	if len(username) > 32 {
		username = username[:32]
	}
	return username
}

// PhoneNumber derives a stable ten-digit phone number from the user id,
// so reseeding the same persona never collides with itself.
func (p *Persona) PhoneNumber() string {
	var seed uint64
	for _, b := range p.Identity.ID {
		seed = seed*256 + uint64(b)
		seed %= 100000000
	}
	return fmt.Sprintf("98%08d", seed)
}

// Validate checks the persona against domain rules, in particular that
// every rule's account reference resolves and every amount range is not
// inverted. Run at registry construction so generation never starts on a
// broken profile.
func (p *Persona) Validate() error {
	if p.Name == "" {
		return errors.New("persona name cannot be empty")
	}
	if p.Identity.ID == uuid.Nil {
		return fmt.Errorf("persona %q must have a user id", p.Name)
	}
	if p.Identity.Email == "" {
		return fmt.Errorf("persona %q must have an email", p.Name)
	}
	if len(p.Accounts) == 0 {
		return fmt.Errorf("persona %q must have at least one account", p.Name)
	}
	for i, acct := range p.Accounts {
		if acct.ID == uuid.Nil {
			return fmt.Errorf("persona %q account %d must have an id", p.Name, i)
		}
	}

	for i, rule := range p.IncomeRules {
		if err := p.checkRule(rule.AccountRef, rule.validate()); err != nil {
			return fmt.Errorf("persona %q income rule %d: %w", p.Name, i, err)
		}
	}
	for i, rule := range p.MonthlyRules {
		if err := p.checkRule(rule.AccountRef, rule.validate()); err != nil {
			return fmt.Errorf("persona %q monthly rule %d: %w", p.Name, i, err)
		}
	}
	for i, rule := range p.DailyRules {
		if err := p.checkRule(rule.AccountRef, rule.validate()); err != nil {
			return fmt.Errorf("persona %q daily rule %d: %w", p.Name, i, err)
		}
	}
	for i, rule := range p.OccasionalRules {
		if err := p.checkRule(rule.AccountRef, rule.validate()); err != nil {
			return fmt.Errorf("persona %q occasional rule %d: %w", p.Name, i, err)
		}
	}
	for i, rule := range p.RareDateRules {
		if err := p.checkRule(rule.AccountRef, rule.validate()); err != nil {
			return fmt.Errorf("persona %q rare date rule %d: %w", p.Name, i, err)
		}
	}
	return nil
}

// checkRule combines the rule's own validation with account resolution.
func (p *Persona) checkRule(accountRef int, ruleErr error) error {
	if ruleErr != nil {
		return ruleErr
	}
	if _, err := p.AccountID(accountRef); err != nil {
		return err
	}
	return nil
}

// Price returns a decimal from a literal such as "205.50". Panics on
// malformed literals, which are programmer errors in static persona
// definitions.
func Price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
