package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the label a user gives to a transaction.
//
// It is stored as entered. Whether a transaction is income or expense for
// a specific account is always derived with PerspectiveOf.
type TransactionType string

const (
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeTransfer TransactionType = "transfer"
)

// Valid reports if the type is known.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense || t == TransactionTypeTransfer
}

// Transaction is a movement of money from the sender to the recipient account.
type Transaction struct {
	DefaultModel
	UserID               uuid.UUID       `json:"userId" gorm:"index;not null"`
	SenderAccountID      uuid.UUID       `json:"senderAccountId" gorm:"check:sender_recipient_different,sender_account_id != recipient_account_id"`
	SenderAccount        Account         `json:"-"`
	RecipientAccountID   uuid.UUID       `json:"recipientAccountId"`
	RecipientAccount     Account         `json:"-"`
	CategoryID           *uuid.UUID      `json:"categoryId"`
	Category             *Category       `json:"-"`
	Amount               decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Date                 time.Time       `json:"date"`
	Note                 string          `json:"note"`
	Type                 TransactionType `json:"type"`
	ContactName          string          `json:"contactName"`
	ContactAvatar        string          `json:"contactAvatar"`
	IsRecurring          bool            `json:"isRecurring"`
	IsRecurringGenerated bool            `json:"isRecurringGenerated"`
	RecurringBillID      *uuid.UUID      `json:"recurringBillId" gorm:"index"`
	RecurringBill        *RecurringBill  `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
}

// AfterFind enforces dates to be in UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - trims whitespace from string fields
//   - verifies the amount, the type and the recurring flags
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)
	t.ContactName = strings.TrimSpace(t.ContactName)
	t.ContactAvatar = strings.TrimSpace(t.ContactAvatar)

	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.RecurringBillID != nil && *t.RecurringBillID == uuid.Nil {
		t.RecurringBillID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.Type == "" {
		t.Type = TransactionTypeExpense
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	return t.checkLinkage()
}

// checkLinkage verifies that the recurring flags agree with the
// link to the recurring bill.
//
// Templates are linked if and only if they are recurring. Generated
// occurrences are never recurring themselves, but always linked.
func (t Transaction) checkLinkage() error {
	if t.IsRecurringGenerated {
		if t.IsRecurring || t.RecurringBillID == nil {
			return ErrGeneratedNotRecurring
		}
		return nil
	}

	if t.IsRecurring != (t.RecurringBillID != nil) {
		return ErrMissingRecurrence
	}

	return nil
}
