package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

// Budget is a spending limit for one category.
//
// A user has at most one budget per category.
type Budget struct {
	DefaultModel
	UserID     uuid.UUID       `json:"userId" gorm:"uniqueIndex:budget_user_category;not null"`
	CategoryID uuid.UUID       `json:"categoryId" gorm:"uniqueIndex:budget_user_category"`
	Category   Category        `json:"-"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"250"`
	ThemeID    *uuid.UUID      `json:"themeId"`
	Theme      *Theme          `json:"-"`
}

func (b *Budget) BeforeSave(_ *gorm.DB) error {
	if b.ThemeID != nil && *b.ThemeID == uuid.Nil {
		b.ThemeID = nil
	}

	if !b.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return nil
}

// BudgetDetails is the spend of a budget derived from the transactions.
type BudgetDetails struct {
	AmountSpent     decimal.Decimal `json:"amountSpent" example:"312.5"`
	BudgetLimit     decimal.Decimal `json:"budgetLimit" example:"250"`
	PercentageSpent decimal.Decimal `json:"percentageSpent" example:"125"`
	Free            decimal.Decimal `json:"free" example:"-62.5"`
}

// ComputeBudgetDetails sums the amounts the account spent in the category of the budget.
//
// Transactions in other categories and transactions the account received
// do not count. The percentage is neither rounded nor clamped, it exceeds
// 100 when the budget is overspent. Free is negative in that case.
func ComputeBudgetDetails(accountID uuid.UUID, budget Budget, transactions []Transaction) (BudgetDetails, error) {
	spent := decimal.Zero

	for _, t := range transactions {
		if t.CategoryID == nil || *t.CategoryID != budget.CategoryID {
			continue
		}

		p, err := PerspectiveOf(accountID, t)
		if errors.Is(err, ErrNotParticipant) {
			continue
		} else if err != nil {
			return BudgetDetails{}, err
		}

		if p.Polarity == PolarityExpense {
			spent = spent.Add(t.Amount)
		}
	}

	percentage := decimal.Zero
	if !budget.Amount.IsZero() {
		percentage = spent.Div(budget.Amount).Mul(hundred)
	}

	return BudgetDetails{
		AmountSpent:     spent,
		BudgetLimit:     budget.Amount,
		PercentageSpent: percentage,
		Free:            budget.Amount.Sub(spent),
	}, nil
}

// ClampPercentage limits a percentage to the range from 0 to 100 for progress displays.
func ClampPercentage(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}

	if p.GreaterThan(hundred) {
		return hundred
	}

	return p
}

// Details derives the spend of the budget for the account.
func (b Budget) Details(db *gorm.DB, account Account) (BudgetDetails, error) {
	var transactions []Transaction

	err := db.
		Where("sender_account_id = ? AND category_id = ?", account.ID, b.CategoryID).
		Find(&transactions).Error
	if err != nil {
		return BudgetDetails{}, err
	}

	return ComputeBudgetDetails(account.ID, b, transactions)
}
