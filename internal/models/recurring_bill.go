package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Frequency is the interval at which a recurring bill is due.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports if the frequency is known.
func (f Frequency) Valid() bool {
	return f == FrequencyWeekly || f == FrequencyMonthly || f == FrequencyYearly
}

// Next returns the due date following the reference date.
//
// Monthly and yearly bills are due on the recurrence day of the following
// month or year, clamped to the last day of that month. Weekly bills are
// due seven days after the reference date.
func (f Frequency) Next(reference types.Date, day int) types.Date {
	switch f {
	case FrequencyWeekly:
		return reference.AddDays(7)
	case FrequencyYearly:
		return reference.AddMonthsOnDay(12, day)
	default:
		return reference.AddMonthsOnDay(1, day)
	}
}

// Recurrence is the schedule of a recurring bill.
type Recurrence struct {
	Day       int       `json:"recurrenceDay" example:"15"`
	Frequency Frequency `json:"recurrenceFrequency" example:"monthly"`
}

// Complete reports if both the day and the frequency are set.
func (r Recurrence) Complete() bool {
	return r.Day != 0 && r.Frequency != ""
}

// RecurringBill is a periodic obligation. Paying it creates a transaction
// linked to the bill and advances its schedule.
type RecurringBill struct {
	DefaultModel
	UserID              uuid.UUID       `json:"userId" gorm:"index;not null"`
	Name                string          `json:"name" example:"Rent"`
	Amount              decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"950"`
	Type                TransactionType `json:"type" example:"expense"`
	CategoryID          *uuid.UUID      `json:"categoryId"`
	Category            *Category       `json:"-"`
	RecurrenceDay       int             `json:"recurrenceDay" example:"15"`
	RecurrenceFrequency Frequency       `json:"recurrenceFrequency" example:"monthly"`
	BaseDate            types.Date      `json:"baseDate"`
	LastPaidDate        *types.Date     `json:"lastPaidDate"`
	NextDueDate         *types.Date     `json:"nextDueDate"`
	SenderAccountID     uuid.UUID       `json:"senderAccountId"`
	SenderAccount       Account         `json:"-"`
	RecipientAccountID  uuid.UUID       `json:"recipientAccountId"`
	RecipientAccount    Account         `json:"-"`
	ContactName         string          `json:"contactName" example:"Landlord"`
	ContactAvatar       string          `json:"contactAvatar"`
}

// BeforeSave verifies the type, the amount and the schedule.
//
// A bill may lack its recurrence information. It can then not be paid.
func (b *RecurringBill) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.ContactName = strings.TrimSpace(b.ContactName)
	b.ContactAvatar = strings.TrimSpace(b.ContactAvatar)

	if b.CategoryID != nil && *b.CategoryID == uuid.Nil {
		b.CategoryID = nil
	}

	if b.Type == "" {
		b.Type = TransactionTypeExpense
	}

	if b.Type != TransactionTypeExpense && b.Type != TransactionTypeIncome {
		return ErrBillTypeInvalid
	}

	if b.Amount.IsZero() {
		return ErrAmountZero
	}

	if b.RecurrenceDay < 0 || b.RecurrenceDay > 31 {
		return ErrRecurrenceDayRange
	}

	if b.RecurrenceFrequency != "" && !b.RecurrenceFrequency.Valid() {
		return ErrRecurrenceFrequency
	}

	if b.BaseDate.IsZero() {
		b.BaseDate = types.Today()
	}

	return nil
}

// Recurrence returns the schedule of the bill.
func (b RecurringBill) Recurrence() Recurrence {
	return Recurrence{Day: b.RecurrenceDay, Frequency: b.RecurrenceFrequency}
}

// DueDate computes the date the bill is due next.
//
// The reference is the last payment, or the base date for bills that have
// never been paid.
func (b RecurringBill) DueDate() (types.Date, error) {
	if !b.Recurrence().Complete() {
		return types.Date{}, ErrMissingRecurrence
	}

	reference := b.BaseDate
	if b.LastPaidDate != nil && !b.LastPaidDate.IsZero() {
		reference = *b.LastPaidDate
	}

	return b.RecurrenceFrequency.Next(reference, b.RecurrenceDay), nil
}

// CreateRecurringBill creates a bill between the own account of the user and
// the contact. Expense bills are paid to the contact, income bills are
// received from it.
func CreateRecurringBill(db *gorm.DB, userID uuid.UUID, bill RecurringBill) (RecurringBill, error) {
	if !bill.Recurrence().Complete() {
		return RecurringBill{}, ErrMissingRecurrence
	}

	err := unitOfWork(db, func(tx *gorm.DB) error {
		account, err := OwnAccount(tx, userID)
		if err != nil {
			return err
		}

		contact, err := ContactAccount(tx, userID, bill.ContactName, bill.ContactAvatar)
		if err != nil {
			return err
		}

		bill.UserID = userID
		bill.SenderAccountID, bill.RecipientAccountID = account.ID, contact.ID
		if bill.Type == TransactionTypeIncome {
			bill.SenderAccountID, bill.RecipientAccountID = contact.ID, account.ID
		}

		return tx.Create(&bill).Error
	})

	return bill, err
}

// RecurringBillPatch contains the changes to a recurring bill. Nil fields are not changed.
type RecurringBillPatch struct {
	Name          *string
	Amount        *decimal.Decimal
	CategoryID    *uuid.UUID // uuid.Nil removes the category
	Recurrence    Recurrence // Zero values keep the current schedule
	BaseDate      *types.Date
	ContactName   *string
	ContactAvatar *string
}

// UpdateRecurringBill applies the patch to the bill of the user.
//
// A changed contact moves the bill to the contact account for the new name.
// The type of a bill never changes.
func UpdateRecurringBill(db *gorm.DB, userID, id uuid.UUID, patch RecurringBillPatch) (RecurringBill, error) {
	var bill RecurringBill

	err := unitOfWork(db, func(tx *gorm.DB) error {
		err := tx.Where(&RecurringBill{UserID: userID}).First(&bill, "id = ?", id).Error
		if err != nil {
			return err
		}

		if patch.Name != nil {
			bill.Name = *patch.Name
		}

		if patch.Amount != nil {
			bill.Amount = *patch.Amount
		}

		if patch.CategoryID != nil {
			bill.CategoryID = patch.CategoryID
		}

		if patch.Recurrence.Day != 0 {
			bill.RecurrenceDay = patch.Recurrence.Day
		}

		if patch.Recurrence.Frequency != "" {
			bill.RecurrenceFrequency = patch.Recurrence.Frequency
		}

		if patch.BaseDate != nil {
			bill.BaseDate = *patch.BaseDate
		}

		if patch.ContactAvatar != nil {
			bill.ContactAvatar = *patch.ContactAvatar
		}

		if patch.ContactName != nil || patch.ContactAvatar != nil {
			if patch.ContactName != nil {
				bill.ContactName = *patch.ContactName
			}

			contact, err := ContactAccount(tx, userID, bill.ContactName, bill.ContactAvatar)
			if err != nil {
				return err
			}

			if bill.Type == TransactionTypeIncome {
				bill.SenderAccountID = contact.ID
			} else {
				bill.RecipientAccountID = contact.ID
			}
		}

		return tx.Omit(clause.Associations).Save(&bill).Error
	})

	return bill, err
}

// DeleteRecurringBill deletes the bill. Transactions referencing it are
// kept as regular transactions.
func DeleteRecurringBill(db *gorm.DB, userID, id uuid.UUID) error {
	return unitOfWork(db, func(tx *gorm.DB) error {
		var bill RecurringBill
		err := tx.Where(&RecurringBill{UserID: userID}).First(&bill, "id = ?", id).Error
		if err != nil {
			return err
		}

		err = tx.Model(&Transaction{}).Where("recurring_bill_id = ?", bill.ID).UpdateColumns(map[string]any{
			"recurring_bill_id":      nil,
			"is_recurring":           false,
			"is_recurring_generated": false,
		}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&bill).Error
	})
}
