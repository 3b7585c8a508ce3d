package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
	ErrInvalidState     = errors.New("invalid state")
	ErrValidation       = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
)

var (
	ErrMissingRecurrence        = fmt.Errorf("%w: missing recurrence information", ErrInvalidState)
	ErrSelfTransaction          = fmt.Errorf("%w: sender and recipient of a transaction must be different", ErrInvalidState)
	ErrNotParticipant           = fmt.Errorf("%w transaction for this account", ErrResourceNotFound)
	ErrGeneratedNotRecurring    = fmt.Errorf("%w: a paid occurrence of a recurring bill cannot be made recurring itself", ErrInvalidState)
	ErrOwnAccountExists         = fmt.Errorf("%w: you already have an account", ErrConflict)
	ErrAccountNameNotUnique     = fmt.Errorf("%w: the account name must be unique", ErrConflict)
	ErrBudgetCategoryNotUnique  = fmt.Errorf("%w: there already is a budget for this category", ErrConflict)
	ErrAmountNotPositive        = fmt.Errorf("%w: the amount must be larger than zero", ErrValidation)
	ErrAmountZero               = fmt.Errorf("%w: the amount must not be zero", ErrValidation)
	ErrRecurrenceDayRange       = fmt.Errorf("%w: the recurrence day must be between 1 and 31", ErrValidation)
	ErrRecurrenceFrequency      = fmt.Errorf("%w: the recurrence frequency must be one of weekly, monthly, yearly", ErrValidation)
	ErrTransactionTypeInvalid   = fmt.Errorf("%w: the transaction type must be one of income, expense, transfer", ErrValidation)
	ErrBillTypeInvalid          = fmt.Errorf("%w: the recurring bill type must be one of income, expense", ErrValidation)
	ErrCatalogKeyEmpty          = fmt.Errorf("%w: a name must be set", ErrValidation)
	ErrContactNameEmpty         = fmt.Errorf("%w: the contact name must be set", ErrValidation)
	ErrTransferRecipientMissing = fmt.Errorf("%w: transfers need a recipient account", ErrValidation)
	ErrMatchRuleEmpty           = fmt.Errorf("%w: the match pattern must not be empty", ErrValidation)
)

// ErrInsufficientFunds is matched by every InsufficientFundsError.
var ErrInsufficientFunds = errors.New("insufficient funds")

// InsufficientFundsError is returned when a payment exceeds the current balance.
type InsufficientFundsError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: the payment requires %s, but only %s is available", e.Required.StringFixed(2), e.Available.StringFixed(2))
}

func (e InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
