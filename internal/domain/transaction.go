package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction is the side of a transaction from the account's point of view.
type Direction string

const (
	DirectionDebit  Direction = "DEBIT"
	DirectionCredit Direction = "CREDIT"
)

// Status is the settlement status stamped on generated transactions.
// The generator only produces settled history.
type Status string

const (
	StatusCompleted Status = "COMPLETED"
)

// DefaultCurrency is the ISO 4217 code stamped on generated transactions.
const DefaultCurrency = "NPR"

// Candidate is an in-memory, not-yet-persisted transaction produced by
// the rule engine. It carries no identity; a unique id is assigned at
// emission time, never before.
type Candidate struct {
	AccountID   uuid.UUID
	Timestamp   time.Time // date plus randomized time of day, UTC
	Amount      decimal.Decimal
	Currency    string
	Direction   Direction
	Status      Status
	Description string
	Merchant    string
	Category    string
}

// Transaction is a candidate that has been assigned its identity and is
// ready for serialization. Never mutated after emission.
type Transaction struct {
	ID uuid.UUID
	Candidate
}
