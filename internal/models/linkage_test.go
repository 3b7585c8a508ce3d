package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

func ptr[T any](v T) *T {
	return &v
}

func (suite *TestSuiteStandard) createTestRecurringTransaction(account models.Account) models.Transaction {
	t, err := models.CreateTransaction(models.DB, account.UserID, models.Transaction{
		Amount:      decimal.NewFromInt(15),
		Note:        "Streaming",
		ContactName: "Netflix",
		IsRecurring: true,
	}, models.Recurrence{Day: 3, Frequency: models.FrequencyMonthly})
	suite.Require().Nil(err)
	suite.Require().NotNil(t.RecurringBillID)

	return t
}

func (suite *TestSuiteStandard) billCount() int64 {
	var count int64
	suite.Require().Nil(models.DB.Model(&models.RecurringBill{}).Count(&count).Error)
	return count
}

func (suite *TestSuiteStandard) TestCreateTransactionParties() {
	account := suite.createTestUser(decimal.Zero)

	expense, err := models.CreateTransaction(models.DB, account.UserID, models.Transaction{
		Amount:      decimal.NewFromInt(20),
		ContactName: "Bakery",
	}, models.Recurrence{})
	suite.Require().Nil(err)
	suite.Assert().Equal(account.ID, expense.SenderAccountID)
	suite.Assert().Equal(models.TransactionTypeExpense, expense.Type)

	income, err := models.CreateTransaction(models.DB, account.UserID, models.Transaction{
		Amount:      decimal.NewFromInt(20),
		ContactName: "Bakery",
		Type:        models.TransactionTypeIncome,
	}, models.Recurrence{})
	suite.Require().Nil(err)
	suite.Assert().Equal(account.ID, income.RecipientAccountID)

	// Both use the same contact account
	suite.Assert().Equal(expense.RecipientAccountID, income.SenderAccountID)

	friend := suite.createTestContact(account.UserID, "Friend")
	transfer, err := models.CreateTransaction(models.DB, account.UserID, models.Transaction{
		Amount:             decimal.NewFromInt(20),
		Type:               models.TransactionTypeTransfer,
		RecipientAccountID: friend.ID,
	}, models.Recurrence{})
	suite.Require().Nil(err)
	suite.Assert().Equal(account.ID, transfer.SenderAccountID)
	suite.Assert().Equal(friend.ID, transfer.RecipientAccountID)
	suite.Assert().Equal("Friend", transfer.ContactName)
}

func (suite *TestSuiteStandard) TestCreateTransactionErrors() {
	account := suite.createTestUser(decimal.Zero)
	other := suite.createTestUser(decimal.Zero)

	tests := []struct {
		name        string
		userID      uuid.UUID
		transaction models.Transaction
		err         error
	}{
		{"No own account", uuid.New(), models.Transaction{Amount: decimal.NewFromInt(1), ContactName: "A"}, models.ErrResourceNotFound},
		{"No contact", account.UserID, models.Transaction{Amount: decimal.NewFromInt(1)}, models.ErrContactNameEmpty},
		{"Zero amount", account.UserID, models.Transaction{ContactName: "A"}, models.ErrAmountNotPositive},
		{"Negative amount", account.UserID, models.Transaction{Amount: decimal.NewFromInt(-1), ContactName: "A"}, models.ErrAmountNotPositive},
		{"Invalid type", account.UserID, models.Transaction{Amount: decimal.NewFromInt(1), ContactName: "A", Type: "gift"}, models.ErrTransactionTypeInvalid},
		{"Transfer without recipient", account.UserID, models.Transaction{Amount: decimal.NewFromInt(1), Type: models.TransactionTypeTransfer}, models.ErrTransferRecipientMissing},
		{"Transfer to own account", account.UserID, models.Transaction{Amount: decimal.NewFromInt(1), Type: models.TransactionTypeTransfer, RecipientAccountID: account.ID}, models.ErrTransferRecipientMissing},
		{"Transfer to foreign account", account.UserID, models.Transaction{Amount: decimal.NewFromInt(1), Type: models.TransactionTypeTransfer, RecipientAccountID: other.ID}, models.ErrResourceNotFound},
		{"Recurring without recurrence", account.UserID, models.Transaction{Amount: decimal.NewFromInt(1), ContactName: "A", IsRecurring: true}, models.ErrMissingRecurrence},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := models.CreateTransaction(models.DB, tt.userID, tt.transaction, models.Recurrence{})
			suite.Assert().ErrorIs(err, tt.err)
		})
	}

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Zero(count)
	suite.Assert().Zero(suite.billCount())
}

func (suite *TestSuiteStandard) TestCreateRecurringTransaction() {
	account := suite.createTestUser(decimal.Zero)
	t := suite.createTestRecurringTransaction(account)

	var bill models.RecurringBill
	suite.Require().Nil(models.DB.First(&bill, "id = ?", *t.RecurringBillID).Error)

	suite.Assert().Equal("Streaming", bill.Name)
	suite.Assert().True(bill.Amount.Equal(decimal.NewFromInt(15)))
	suite.Assert().Equal(3, bill.RecurrenceDay)
	suite.Assert().Equal(models.FrequencyMonthly, bill.RecurrenceFrequency)
	suite.Assert().Equal(models.TransactionTypeExpense, bill.Type)
	suite.Assert().Equal(t.SenderAccountID, bill.SenderAccountID)
	suite.Assert().Equal(t.RecipientAccountID, bill.RecipientAccountID)
	suite.Assert().Equal("Netflix", bill.ContactName)

	suite.assertLinkage()
}

func (suite *TestSuiteStandard) TestRecurringTransactionSchedule() {
	account := suite.createTestUser(decimal.Zero)

	t, err := models.CreateTransaction(models.DB, account.UserID, models.Transaction{
		Amount:      decimal.NewFromInt(950),
		Date:        time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC),
		ContactName: "Landlord",
		IsRecurring: true,
	}, models.Recurrence{Day: 15, Frequency: models.FrequencyMonthly})
	suite.Require().Nil(err)

	var bill models.RecurringBill
	suite.Require().Nil(models.DB.First(&bill, "id = ?", *t.RecurringBillID).Error)
	suite.Assert().Equal(types.NewDate(2024, time.January, 15).String(), bill.BaseDate.String())

	due, err := bill.DueDate()
	suite.Require().Nil(err)
	suite.Assert().Equal(types.NewDate(2024, time.February, 15).String(), due.String())

	summary := models.ClassifyBills([]models.RecurringBill{bill}, types.NewDate(2024, time.February, 13), models.DefaultDueSoonDays)
	suite.Assert().Len(summary.DueSoon.Bills, 1)
	suite.Assert().Empty(summary.Upcoming.Bills)
	suite.Assert().Empty(summary.Overdue.Bills)

	// Moving the transaction moves the schedule, other changes keep it
	_, err = models.UpdateTransaction(models.DB, account.UserID, t.ID, models.TransactionPatch{
		Amount: ptr(decimal.NewFromInt(975)),
	})
	suite.Require().Nil(err)
	suite.Require().Nil(models.DB.First(&bill, "id = ?", *t.RecurringBillID).Error)
	suite.Assert().Equal(types.NewDate(2024, time.January, 15).String(), bill.BaseDate.String())

	_, err = models.UpdateTransaction(models.DB, account.UserID, t.ID, models.TransactionPatch{
		Date: ptr(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)),
	})
	suite.Require().Nil(err)
	suite.Require().Nil(models.DB.First(&bill, "id = ?", *t.RecurringBillID).Error)
	suite.Assert().Equal(types.NewDate(2024, time.March, 15).String(), bill.BaseDate.String())

	due, err = bill.DueDate()
	suite.Require().Nil(err)
	suite.Assert().Equal(types.NewDate(2024, time.April, 15).String(), due.String())
}

func (suite *TestSuiteStandard) TestUpdateTransactionMakeRecurringUsesDate() {
	account := suite.createTestUser(decimal.Zero)

	t, err := models.CreateTransaction(models.DB, account.UserID, models.Transaction{
		Amount:      decimal.NewFromInt(40),
		Date:        time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC),
		ContactName: "Gym",
	}, models.Recurrence{})
	suite.Require().Nil(err)

	updated, err := models.UpdateTransaction(models.DB, account.UserID, t.ID, models.TransactionPatch{
		IsRecurring: ptr(true),
		Recurrence:  models.Recurrence{Day: 31, Frequency: models.FrequencyMonthly},
	})
	suite.Require().Nil(err)

	var bill models.RecurringBill
	suite.Require().Nil(models.DB.First(&bill, "id = ?", *updated.RecurringBillID).Error)
	suite.Assert().Equal(types.NewDate(2023, time.June, 30).String(), bill.BaseDate.String())
}

func (suite *TestSuiteStandard) TestUpdateTransactionMakeRecurring() {
	account := suite.createTestUser(decimal.Zero)

	t, err := models.CreateTransaction(models.DB, account.UserID, models.Transaction{
		Amount:      decimal.NewFromInt(40),
		ContactName: "Gym",
	}, models.Recurrence{})
	suite.Require().Nil(err)

	// Recurrence information is required
	_, err = models.UpdateTransaction(models.DB, account.UserID, t.ID, models.TransactionPatch{
		IsRecurring: ptr(true),
		Recurrence:  models.Recurrence{Day: 5},
	})
	suite.Assert().ErrorIs(err, models.ErrMissingRecurrence)
	suite.Assert().Zero(suite.billCount())

	updated, err := models.UpdateTransaction(models.DB, account.UserID, t.ID, models.TransactionPatch{
		IsRecurring: ptr(true),
		Recurrence:  models.Recurrence{Day: 5, Frequency: models.FrequencyMonthly},
	})
	suite.Require().Nil(err)
	suite.Assert().True(updated.IsRecurring)
	suite.Require().NotNil(updated.RecurringBillID)
	suite.Assert().Equal(int64(1), suite.billCount())

	suite.assertLinkage()
}

func (suite *TestSuiteStandard) TestUpdateTransactionUpdatesBillInPlace() {
	account := suite.createTestUser(decimal.Zero)
	t := suite.createTestRecurringTransaction(account)
	category := suite.createTestCategory("Entertainment")

	updated, err := models.UpdateTransaction(models.DB, account.UserID, t.ID, models.TransactionPatch{
		Amount:      ptr(decimal.NewFromInt(18)),
		CategoryID:  &category.ID,
		IsRecurring: ptr(true),
		Recurrence:  models.Recurrence{Frequency: models.FrequencyYearly},
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(*t.RecurringBillID, *updated.RecurringBillID)
	suite.Assert().Equal(int64(1), suite.billCount())

	var bill models.RecurringBill
	suite.Require().Nil(models.DB.First(&bill, "id = ?", *t.RecurringBillID).Error)
	suite.Assert().True(bill.Amount.Equal(decimal.NewFromInt(18)))
	suite.Assert().Equal(category.ID, *bill.CategoryID)
	suite.Assert().Equal(3, bill.RecurrenceDay, "recurrence day has been overwritten")
	suite.Assert().Equal(models.FrequencyYearly, bill.RecurrenceFrequency)
}

func (suite *TestSuiteStandard) TestUpdateTransactionMakeNonRecurring() {
	account := suite.createTestUser(decimal.Zero)
	t := suite.createTestRecurringTransaction(account)

	updated, err := models.UpdateTransaction(models.DB, account.UserID, t.ID, models.TransactionPatch{
		IsRecurring: ptr(false),
	})
	suite.Require().Nil(err)
	suite.Assert().False(updated.IsRecurring)
	suite.Assert().Nil(updated.RecurringBillID)

	suite.assertLinkage(*t.RecurringBillID)
}

// TestUpdateTransactionKeepsReferencedBill verifies that a bill that still has
// paid occurrences is not deleted when its template stops being recurring.
func (suite *TestSuiteStandard) TestUpdateTransactionKeepsReferencedBill() {
	account := suite.createTestUser(decimal.NewFromInt(100))
	t := suite.createTestRecurringTransaction(account)

	_, err := models.PayRecurringBill(models.DB, account.UserID, *t.RecurringBillID, nil)
	suite.Require().Nil(err)

	_, err = models.UpdateTransaction(models.DB, account.UserID, t.ID, models.TransactionPatch{IsRecurring: ptr(false)})
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), suite.billCount())

	suite.assertLinkage()
}

func (suite *TestSuiteStandard) TestUpdateTransactionFields() {
	account := suite.createTestUser(decimal.Zero)

	t, err := models.CreateTransaction(models.DB, account.UserID, models.Transaction{
		Amount:      decimal.NewFromInt(40),
		ContactName: "Gym",
		Note:        "Membership",
	}, models.Recurrence{})
	suite.Require().Nil(err)

	date := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	updated, err := models.UpdateTransaction(models.DB, account.UserID, t.ID, models.TransactionPatch{
		Date:        &date,
		Note:        ptr("  Yearly fee "),
		Type:        ptr(models.TransactionTypeIncome),
		ContactName: ptr("Sports club"),
	})
	suite.Require().Nil(err)

	suite.Assert().Equal(date, updated.Date)
	suite.Assert().Equal("Yearly fee", updated.Note)
	suite.Assert().Equal(account.ID, updated.RecipientAccountID, "income must be received by the own account")
	suite.Assert().NotEqual(t.RecipientAccountID, updated.SenderAccountID, "contact has not been changed")

	_, err = models.UpdateTransaction(models.DB, account.UserID, t.ID, models.TransactionPatch{Amount: ptr(decimal.Zero)})
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)
}

func (suite *TestSuiteStandard) TestUpdateTransactionOtherUser() {
	account := suite.createTestUser(decimal.Zero)
	other := suite.createTestUser(decimal.Zero)
	t := suite.createTestRecurringTransaction(account)

	_, err := models.UpdateTransaction(models.DB, other.UserID, t.ID, models.TransactionPatch{IsRecurring: ptr(false)})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal(int64(1), suite.billCount())
}

func (suite *TestSuiteStandard) TestUpdateGeneratedTransaction() {
	account := suite.createTestUser(decimal.NewFromInt(500))
	bill := suite.createTestExpenseBill(account, decimal.NewFromInt(100), 15, types.NewDate(2024, time.January, 15))

	payment, err := models.PayRecurringBill(models.DB, account.UserID, bill.ID, nil)
	suite.Require().Nil(err)

	_, err = models.UpdateTransaction(models.DB, account.UserID, payment.Transaction.ID, models.TransactionPatch{
		IsRecurring: ptr(true),
		Recurrence:  models.Recurrence{Day: 1, Frequency: models.FrequencyMonthly},
	})
	suite.Assert().ErrorIs(err, models.ErrGeneratedNotRecurring)

	updated, err := models.UpdateTransaction(models.DB, account.UserID, payment.Transaction.ID, models.TransactionPatch{
		Note: ptr("Rent February"),
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(bill.ID, *updated.RecurringBillID)

	suite.assertLinkage()
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	account := suite.createTestUser(decimal.Zero)
	t := suite.createTestRecurringTransaction(account)

	suite.Require().Nil(models.DeleteTransaction(models.DB, account.UserID, t.ID))
	suite.assertLinkage(*t.RecurringBillID)

	// Deleting again succeeds
	suite.Assert().Nil(models.DeleteTransaction(models.DB, account.UserID, t.ID))
	suite.Assert().Nil(models.DeleteTransaction(models.DB, account.UserID, uuid.New()))
}

func (suite *TestSuiteStandard) TestDeleteTransactionOtherUser() {
	account := suite.createTestUser(decimal.Zero)
	other := suite.createTestUser(decimal.Zero)
	t := suite.createTestRecurringTransaction(account)

	err := models.DeleteTransaction(models.DB, other.UserID, t.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Transaction{}).Where("id = ?", t.ID).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestDeleteGeneratedTransactionKeepsBill() {
	account := suite.createTestUser(decimal.NewFromInt(500))
	t := suite.createTestRecurringTransaction(account)

	payment, err := models.PayRecurringBill(models.DB, account.UserID, *t.RecurringBillID, nil)
	suite.Require().Nil(err)

	suite.Require().Nil(models.DeleteTransaction(models.DB, account.UserID, payment.Transaction.ID))
	suite.Assert().Equal(int64(1), suite.billCount())

	// Deleting the template removes the last reference
	suite.Require().Nil(models.DeleteTransaction(models.DB, account.UserID, t.ID))
	suite.assertLinkage(*t.RecurringBillID)
}

// A bill created on its own lives as long as a transaction references it
// once it has been paid. Deleting its only payment removes the bill.
func (suite *TestSuiteStandard) TestDeleteOnlyPaymentOfBill() {
	account := suite.createTestUser(decimal.NewFromInt(2000))
	bill := suite.createTestExpenseBill(account, decimal.NewFromInt(950), 15, types.NewDate(2024, time.August, 15))
	unpaid := bill
	unpaid.ID = uuid.Nil
	unpaid.Name = "Gym"
	unpaid = suite.createTestBill(unpaid)

	payment, err := models.PayRecurringBill(models.DB, account.UserID, bill.ID, nil)
	suite.Require().Nil(err)
	suite.Require().Equal(int64(2), suite.billCount())

	suite.Require().Nil(models.DeleteTransaction(models.DB, account.UserID, payment.Transaction.ID))
	suite.assertLinkage(bill.ID)

	// Bills that were never paid are not affected
	suite.Assert().Equal(int64(1), suite.billCount())
	suite.Assert().Nil(models.DB.First(&models.RecurringBill{}, "id = ?", unpaid.ID).Error)
}

func (suite *TestSuiteStandard) TestDeleteRecurringBill() {
	account := suite.createTestUser(decimal.NewFromInt(500))
	t := suite.createTestRecurringTransaction(account)

	_, err := models.PayRecurringBill(models.DB, account.UserID, *t.RecurringBillID, nil)
	suite.Require().Nil(err)

	suite.Require().Nil(models.DeleteRecurringBill(models.DB, account.UserID, *t.RecurringBillID))
	suite.Assert().Zero(suite.billCount())

	var transactions []models.Transaction
	suite.Require().Nil(models.DB.Find(&transactions).Error)
	suite.Assert().Len(transactions, 2)
	for _, transaction := range transactions {
		suite.Assert().Nil(transaction.RecurringBillID)
		suite.Assert().False(transaction.IsRecurring)
		suite.Assert().False(transaction.IsRecurringGenerated)
	}

	err = models.DeleteRecurringBill(models.DB, account.UserID, *t.RecurringBillID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
