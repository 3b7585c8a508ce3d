package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionPatch contains the changes to a transaction. Nil fields are not changed.
type TransactionPatch struct {
	Amount             *decimal.Decimal
	Date               *time.Time
	Note               *string
	Type               *TransactionType
	CategoryID         *uuid.UUID // uuid.Nil removes the category
	ContactName        *string
	ContactAvatar      *string
	RecipientAccountID *uuid.UUID
	IsRecurring        *bool
	Recurrence         Recurrence
}

// assignParties sets sender and recipient of the transaction.
//
// Expenses and transfers are sent from the own account, incomes are received
// by it. Transfers go to the account given as recipient, all other
// transactions are exchanged with the contact account for the contact name.
func assignParties(tx *gorm.DB, userID uuid.UUID, t *Transaction) error {
	account, err := OwnAccount(tx, userID)
	if err != nil {
		return err
	}

	var counterparty Account
	if t.Type == TransactionTypeTransfer {
		if t.RecipientAccountID == uuid.Nil || t.RecipientAccountID == account.ID {
			return ErrTransferRecipientMissing
		}

		err = tx.Where(&Account{UserID: userID}).First(&counterparty, "id = ?", t.RecipientAccountID).Error
	} else {
		counterparty, err = ContactAccount(tx, userID, t.ContactName, t.ContactAvatar)
	}
	if err != nil {
		return err
	}

	if t.Type == TransactionTypeIncome {
		t.SenderAccountID, t.RecipientAccountID = counterparty.ID, account.ID
	} else {
		t.SenderAccountID, t.RecipientAccountID = account.ID, counterparty.ID
	}

	if t.ContactName == "" {
		t.ContactName = counterparty.Name
	}

	return nil
}

// billFromTransaction creates the recurring bill a transaction stands for.
func billFromTransaction(t Transaction, recurrence Recurrence) RecurringBill {
	billType := TransactionTypeExpense
	if t.Type == TransactionTypeIncome {
		billType = TransactionTypeIncome
	}

	bill := RecurringBill{
		UserID:   t.UserID,
		BaseDate: types.DateOf(t.Date),
	}
	updateBillFromTransaction(&bill, t, recurrence)
	bill.Type = billType

	return bill
}

// updateBillFromTransaction copies the description of the transaction to the bill.
// Recurrence fields are only copied when they are set.
func updateBillFromTransaction(bill *RecurringBill, t Transaction, recurrence Recurrence) {
	bill.Name = t.Note
	if bill.Name == "" {
		bill.Name = t.ContactName
	}

	bill.Amount = t.Amount
	bill.CategoryID = t.CategoryID
	bill.SenderAccountID = t.SenderAccountID
	bill.RecipientAccountID = t.RecipientAccountID
	bill.ContactName = t.ContactName
	bill.ContactAvatar = t.ContactAvatar

	if t.Type == TransactionTypeIncome {
		bill.Type = TransactionTypeIncome
	} else {
		bill.Type = TransactionTypeExpense
	}

	if recurrence.Day != 0 {
		bill.RecurrenceDay = recurrence.Day
	}

	if recurrence.Frequency != "" {
		bill.RecurrenceFrequency = recurrence.Frequency
	}
}

// deleteOrphanedBill deletes the recurring bill if no transaction references it anymore.
func deleteOrphanedBill(tx *gorm.DB, billID uuid.UUID) error {
	var count int64
	err := tx.Model(&Transaction{}).Where("recurring_bill_id = ?", billID).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	return tx.Delete(&RecurringBill{}, "id = ?", billID).Error
}

// CreateTransaction creates a transaction for the user.
//
// Transactions without a category get the category of the first matching
// match rule. A recurring transaction gets a new recurring bill, which needs
// complete recurrence information.
func CreateTransaction(db *gorm.DB, userID uuid.UUID, t Transaction, recurrence Recurrence) (Transaction, error) {
	if t.IsRecurring && !recurrence.Complete() {
		return Transaction{}, ErrMissingRecurrence
	}

	err := unitOfWork(db, func(tx *gorm.DB) error {
		t.UserID = userID
		t.IsRecurringGenerated = false
		t.RecurringBillID = nil

		if t.Type == "" {
			t.Type = TransactionTypeExpense
		}

		// The schedule of a new bill starts at the transaction date
		if t.Date.IsZero() {
			t.Date = time.Now().In(time.UTC)
		}

		if !t.Type.Valid() {
			return ErrTransactionTypeInvalid
		}

		err := assignParties(tx, userID, &t)
		if err != nil {
			return err
		}

		if t.CategoryID == nil || *t.CategoryID == uuid.Nil {
			t.CategoryID, err = MatchCategory(tx, userID, t.ContactName)
			if err != nil {
				return err
			}
		}

		if t.IsRecurring {
			bill := billFromTransaction(t, recurrence)
			if err := tx.Create(&bill).Error; err != nil {
				return err
			}
			t.RecurringBillID = &bill.ID
		}

		return tx.Omit(clause.Associations).Create(&t).Error
	})

	return t, err
}

// UpdateTransaction applies the patch to the transaction of the user and keeps
// the recurring bill in sync.
//
// A transaction that becomes recurring gets a new recurring bill, a recurring
// transaction updates its bill in place. A transaction that stops being
// recurring is unlinked and the bill is deleted if no other transaction
// references it.
func UpdateTransaction(db *gorm.DB, userID, id uuid.UUID, patch TransactionPatch) (Transaction, error) {
	var t Transaction

	err := unitOfWork(db, func(tx *gorm.DB) error {
		err := tx.Where(&Transaction{UserID: userID}).First(&t, "id = ?", id).Error
		if err != nil {
			return err
		}

		recurring := t.IsRecurring
		if patch.IsRecurring != nil {
			recurring = *patch.IsRecurring
		}

		if t.IsRecurringGenerated && recurring {
			return ErrGeneratedNotRecurring
		}

		if recurring && t.RecurringBillID == nil && !patch.Recurrence.Complete() {
			return ErrMissingRecurrence
		}

		partiesChanged := patch.Type != nil || patch.ContactName != nil || patch.RecipientAccountID != nil
		applyPatch(&t, patch)

		if !t.Type.Valid() {
			return ErrTransactionTypeInvalid
		}

		if partiesChanged {
			if err := assignParties(tx, userID, &t); err != nil {
				return err
			}
		}

		if t.IsRecurringGenerated {
			return tx.Omit(clause.Associations).Save(&t).Error
		}

		var orphan *uuid.UUID
		switch {
		case recurring && t.RecurringBillID == nil:
			bill := billFromTransaction(t, patch.Recurrence)
			if err := tx.Create(&bill).Error; err != nil {
				return err
			}
			t.RecurringBillID = &bill.ID

		case recurring:
			var bill RecurringBill
			if err := tx.First(&bill, "id = ?", *t.RecurringBillID).Error; err != nil {
				return err
			}

			updateBillFromTransaction(&bill, t, patch.Recurrence)
			if patch.Date != nil {
				bill.BaseDate = types.DateOf(t.Date)
			}

			if err := tx.Omit(clause.Associations).Save(&bill).Error; err != nil {
				return err
			}

		case t.RecurringBillID != nil:
			orphan = t.RecurringBillID
			t.RecurringBillID = nil
		}

		t.IsRecurring = recurring
		err = tx.Omit(clause.Associations).Save(&t).Error
		if err != nil {
			return err
		}

		if orphan != nil {
			return deleteOrphanedBill(tx, *orphan)
		}

		return nil
	})

	return t, err
}

func applyPatch(t *Transaction, patch TransactionPatch) {
	if patch.Amount != nil {
		t.Amount = *patch.Amount
	}

	if patch.Date != nil {
		t.Date = *patch.Date
	}

	if patch.Note != nil {
		t.Note = *patch.Note
	}

	if patch.Type != nil {
		t.Type = *patch.Type
	}

	if patch.CategoryID != nil {
		t.CategoryID = patch.CategoryID
		if *patch.CategoryID == uuid.Nil {
			t.CategoryID = nil
		}
	}

	if patch.ContactName != nil {
		t.ContactName = *patch.ContactName
	}

	if patch.ContactAvatar != nil {
		t.ContactAvatar = *patch.ContactAvatar
	}

	if patch.RecipientAccountID != nil {
		t.RecipientAccountID = *patch.RecipientAccountID
	}
}

// DeleteTransaction deletes the transaction of the user and the recurring bill
// it was the last reference of.
//
// Deleting a transaction that does not exist anymore succeeds. Transactions
// of other users are not found.
func DeleteTransaction(db *gorm.DB, userID, id uuid.UUID) error {
	return unitOfWork(db, func(tx *gorm.DB) error {
		var t Transaction
		err := tx.Where(&Transaction{UserID: userID}).First(&t, "id = ?", id).Error
		if errors.Is(err, ErrResourceNotFound) {
			var count int64
			if err := tx.Model(&Transaction{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}

			if count > 0 {
				return ErrNotParticipant
			}
			return nil
		} else if err != nil {
			return err
		}

		err = tx.Delete(&Transaction{}, "id = ? AND user_id = ?", t.ID, userID).Error
		if err != nil {
			return err
		}

		if t.RecurringBillID != nil {
			return deleteOrphanedBill(tx, *t.RecurringBillID)
		}

		return nil
	})
}
