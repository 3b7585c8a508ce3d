package models

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/types"
	"gorm.io/gorm"
)

// paymentLocks holds one mutex per user.
var paymentLocks sync.Map

func paymentLock(userID uuid.UUID) *sync.Mutex {
	lock, _ := paymentLocks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Payment is the result of paying a recurring bill.
type Payment struct {
	Transaction Transaction   `json:"transaction"`
	Bill        RecurringBill `json:"bill"`
}

// PayRecurringBill pays the expense bill from the own account of the user.
//
// The payment creates a transaction linked to the bill and advances the
// schedule of the bill to the payment date. Both happen in one database
// transaction, either both are persisted or none. Payments of one user are
// serialized so that the balance check and the debit see the same state.
//
// When paymentDate is nil, the current time is used.
func PayRecurringBill(db *gorm.DB, userID, billID uuid.UUID, paymentDate *time.Time) (Payment, error) {
	lock := paymentLock(userID)
	lock.Lock()
	defer lock.Unlock()

	var payment Payment
	err := unitOfWork(db, func(tx *gorm.DB) error {
		var bill RecurringBill
		err := tx.
			Where(&RecurringBill{UserID: userID, Type: TransactionTypeExpense}).
			First(&bill, "id = ?", billID).Error
		if err != nil {
			return err
		}

		if !bill.Recurrence().Complete() {
			return ErrMissingRecurrence
		}

		account, err := OwnAccount(tx, userID)
		if err != nil {
			return err
		}

		balance, _, err := account.Balance(tx)
		if err != nil {
			return err
		}

		required := bill.Amount.Abs()
		if required.GreaterThan(balance.CurrentBalance) {
			return InsufficientFundsError{Required: required, Available: balance.CurrentBalance}
		}

		date := time.Now().In(time.UTC)
		if paymentDate != nil && !paymentDate.IsZero() {
			date = paymentDate.In(time.UTC)
		}

		// The balance is derived from transactions, creating the
		// transaction debits the account.
		transaction := Transaction{
			UserID:               userID,
			SenderAccountID:      account.ID,
			RecipientAccountID:   bill.RecipientAccountID,
			CategoryID:           bill.CategoryID,
			Amount:               required,
			Date:                 date,
			Note:                 bill.Name,
			Type:                 TransactionTypeExpense,
			ContactName:          bill.ContactName,
			ContactAvatar:        bill.ContactAvatar,
			IsRecurring:          false,
			IsRecurringGenerated: true,
			RecurringBillID:      &bill.ID,
		}

		err = tx.Create(&transaction).Error
		if err != nil {
			return err
		}

		paid := types.DateOf(date)
		next := bill.RecurrenceFrequency.Next(paid, bill.RecurrenceDay)

		bill.LastPaidDate = &paid
		bill.NextDueDate = &next

		err = tx.Model(&bill).Select("LastPaidDate", "NextDueDate").Updates(&bill).Error
		if err != nil {
			return err
		}

		payment = Payment{Transaction: transaction, Bill: bill}
		return nil
	})

	return payment, err
}
