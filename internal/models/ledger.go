package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Balance is the state of an account derived from its transactions.
type Balance struct {
	CurrentBalance decimal.Decimal `json:"currentBalance" example:"1730.42"`
	Incomes        decimal.Decimal `json:"incomes" example:"3200"`
	Expenses       decimal.Decimal `json:"expenses" example:"1569.58"`
}

// ComputeBalance folds the transactions into the balance of the account.
//
// Transactions the account does not participate in are ignored. The fold
// is commutative, the order of transactions does not matter. An empty
// list yields the initial balance.
func ComputeBalance(accountID uuid.UUID, initialBalance decimal.Decimal, transactions []Transaction) (Balance, error) {
	incomes := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		p, err := PerspectiveOf(accountID, t)
		if errors.Is(err, ErrNotParticipant) {
			continue
		} else if err != nil {
			return Balance{}, err
		}

		if p.Polarity == PolarityExpense {
			expenses = expenses.Add(t.Amount)
		} else {
			incomes = incomes.Add(t.Amount)
		}
	}

	return Balance{
		CurrentBalance: incomes.Sub(expenses).Add(initialBalance),
		Incomes:        incomes,
		Expenses:       expenses,
	}, nil
}
