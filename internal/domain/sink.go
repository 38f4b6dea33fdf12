package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DatasetSink consumes one persona's generated dataset in emission order:
// schema, identity, accounts, stock holdings, then the transaction stream
// in ascending-date order. Implementations decide the storage format (a
// SQL script file, direct database writes); the generation service only
// speaks this contract.
//
// Close finalizes the artifact. For buffered sinks nothing is durable
// until Close returns nil; a failed Close must leave no partial output.
type DatasetSink interface {
	// WriteSchema emits idempotent table-definition statements ahead of
	// any data.
	WriteSchema(ctx context.Context) error

	// SeedIdentity emits the persona's user row. createdAt is the
	// timestamp recorded for the seeded user. Insert-if-absent semantics:
	// reseeding an already-seeded target is safe.
	SeedIdentity(ctx context.Context, p *Persona, createdAt time.Time) error

	// SeedAccount emits one account row owned by userID, with the same
	// insert-if-absent semantics as SeedIdentity.
	SeedAccount(ctx context.Context, userID uuid.UUID, acct Account) error

	// SeedStockHolding emits one portfolio position owned by userID.
	SeedStockHolding(ctx context.Context, userID uuid.UUID, holding StockHolding) error

	// WriteTransaction appends one generated transaction.
	WriteTransaction(ctx context.Context, tx *Transaction) error

	// Close finalizes and durably writes the artifact.
	Close(ctx context.Context) error
}
