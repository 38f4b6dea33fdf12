package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/finpersona/seedgen/internal/domain"
	"github.com/finpersona/seedgen/internal/usecase/engine"
	"github.com/finpersona/seedgen/internal/usecase/registry"
)

// Seeded user rows are stamped at 10:00 UTC on the range start day, same
// as the seeded bcrypt hash a constant: the identity is fixture data, not
// simulated history.
const identitySeedHour = 10

// Result summarizes one persona's generation run.
type Result struct {
	Persona      string
	Days         int
	Transactions int
	Duration     time.Duration
}

// Service drives one generation run: look up the persona, seed its
// identity rows into the sink, then stream the rule engine's candidates
// through it, assigning each a fresh id at emission.
type Service struct {
	Registry *registry.Registry
	Engine   *engine.Engine
	Log      logrus.FieldLogger

	// NewID mints transaction identifiers at emission time. Defaults to
	// uuid.New; replayable runs swap in a generator derived from the
	// seeded random source.
	NewID func() uuid.UUID
}

// NewService creates a new generation service.
func NewService(reg *registry.Registry, eng *engine.Engine, log logrus.FieldLogger) *Service {
	return &Service{
		Registry: reg,
		Engine:   eng,
		Log:      log,
		NewID:    uuid.New,
	}
}

// Generate produces the full dataset for the named persona over the
// inclusive date range and writes it to sink. The persona lookup happens
// before any sink call, so an unknown name produces no output at all.
// Close is only called on success; aborted runs leave the sink unsealed
// and nothing durable behind.
func (s *Service) Generate(ctx context.Context, personaName string, dr domain.DateRange, sink domain.DatasetSink) (*Result, error) {
	started := time.Now()

	persona, err := s.Registry.Lookup(personaName)
	if err != nil {
		return nil, err
	}

	log := s.Log.WithField("persona", persona.Name)
	log.WithFields(logrus.Fields{
		"start": dr.Start.Format("2006-01-02"),
		"end":   dr.End.Format("2006-01-02"),
		"days":  dr.Days(),
	}).Info("generating dataset")

	if err := sink.WriteSchema(ctx); err != nil {
		return nil, fmt.Errorf("write schema: %w", err)
	}

	createdAt := dr.Start.Add(identitySeedHour * time.Hour)
	if err := sink.SeedIdentity(ctx, persona, createdAt); err != nil {
		return nil, fmt.Errorf("seed identity: %w", err)
	}
	for _, acct := range persona.Accounts {
		if err := sink.SeedAccount(ctx, persona.Identity.ID, acct); err != nil {
			return nil, fmt.Errorf("seed account %s: %w", acct.ID, err)
		}
	}
	for _, holding := range persona.StockHoldings {
		if err := sink.SeedStockHolding(ctx, persona.Identity.ID, holding); err != nil {
			return nil, fmt.Errorf("seed stock holding %s: %w", holding.Symbol, err)
		}
	}

	count := 0
	err = s.Engine.Run(persona, dr, func(c domain.Candidate) error {
		tx := &domain.Transaction{
			ID:        s.NewID(),
			Candidate: c,
		}
		if err := sink.WriteTransaction(ctx, tx); err != nil {
			return fmt.Errorf("write transaction: %w", err)
		}
		count++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("generate %q: %w", persona.Name, err)
	}

	if err := sink.Close(ctx); err != nil {
		return nil, fmt.Errorf("finalize dataset for %q: %w", persona.Name, err)
	}

	result := &Result{
		Persona:      persona.Name,
		Days:         dr.Days(),
		Transactions: count,
		Duration:     time.Since(started),
	}
	log.WithFields(logrus.Fields{
		"transactions": result.Transactions,
		"duration":     result.Duration.String(),
	}).Info("dataset complete")

	return result, nil
}
