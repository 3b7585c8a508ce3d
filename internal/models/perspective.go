package models

import (
	"github.com/google/uuid"
)

// Polarity is the direction of a transaction relative to one account.
type Polarity string

const (
	PolarityIncome  Polarity = "income"
	PolarityExpense Polarity = "expense"
)

// Perspective describes a transaction as seen from one account.
type Perspective struct {
	Polarity     Polarity
	Counterparty uuid.UUID
}

// PerspectiveOf classifies the transaction for the account.
//
// This is the only place deciding whether a transaction is income or
// expense. Ledger, budget aggregation and transaction listing all use it
// so that their totals cannot disagree.
func PerspectiveOf(accountID uuid.UUID, t Transaction) (Perspective, error) {
	sender := t.SenderAccountID == accountID
	recipient := t.RecipientAccountID == accountID

	switch {
	case sender && recipient:
		return Perspective{}, ErrSelfTransaction
	case sender:
		return Perspective{Polarity: PolarityExpense, Counterparty: t.RecipientAccountID}, nil
	case recipient:
		return Perspective{Polarity: PolarityIncome, Counterparty: t.SenderAccountID}, nil
	}

	return Perspective{}, ErrNotParticipant
}
