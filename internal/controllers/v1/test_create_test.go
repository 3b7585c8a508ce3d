package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/pocket-ledger/backend/test"
	"github.com/shopspring/decimal"
)

const (
	ownerID = "2f1a6c4e-5b7d-4c3a-9e8f-0a1b2c3d4e5f"
	otherID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

// owner is the user all test resources are created for.
var owner = test.User(ownerID)

// createTestAccount creates the own account of the owner via the v1 API.
func createTestAccount(t *testing.T, account v1.AccountEditable, expectedStatus ...int) v1.AccountResponse {
	if account.Name == "" {
		account.Name = "Checking"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/account", account, owner)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var a v1.AccountResponse
	test.DecodeResponse(t, &r, &a)

	return a
}

// createTestTransaction creates a transaction of the owner via the v1 API.
func createTestTransaction(t *testing.T, transaction v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if transaction.Amount.IsZero() {
		transaction.Amount = decimal.NewFromFloat(10)
	}

	if transaction.ContactName == "" {
		transaction.ContactName = "Corner Shop"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", transaction, owner)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var tr v1.TransactionResponse
	test.DecodeResponse(t, &r, &tr)

	return tr
}

// createTestBudget creates a budget of the owner via the v1 API.
func createTestBudget(t *testing.T, budget v1.BudgetEditable, expectedStatus ...int) v1.BudgetResponse {
	if budget.Category == "" {
		budget.Category = "Groceries"
	}

	if budget.Amount.IsZero() {
		budget.Amount = decimal.NewFromFloat(100)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/budgets", budget, owner)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var b v1.BudgetResponse
	test.DecodeResponse(t, &r, &b)

	return b
}

// createTestRecurringBill creates a recurring bill of the owner via the v1 API.
func createTestRecurringBill(t *testing.T, bill v1.RecurringBillEditable, expectedStatus ...int) v1.RecurringBillResponse {
	if bill.Name == "" {
		bill.Name = "Rent"
	}

	if bill.Amount.IsZero() {
		bill.Amount = decimal.NewFromFloat(950)
	}

	if bill.ContactName == "" {
		bill.ContactName = "Landlord"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/recurring-bills", bill, owner)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var b v1.RecurringBillResponse
	test.DecodeResponse(t, &r, &b)

	return b
}

// createTestMatchRule creates a match rule of the owner via the v1 API.
func createTestMatchRule(t *testing.T, rule v1.MatchRuleEditable, expectedStatus ...int) v1.MatchRuleResponse {
	if rule.Category == "" {
		rule.Category = "Entertainment"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", rule, owner)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var m v1.MatchRuleResponse
	test.DecodeResponse(t, &r, &m)

	return m
}

// monthlyBill returns a bill due on the 15th of every month, starting from August 2024.
func monthlyBill() v1.RecurringBillEditable {
	return v1.RecurringBillEditable{
		RecurrenceDay:       15,
		RecurrenceFrequency: models.FrequencyMonthly,
		BaseDate:            types.NewDate(2024, time.August, 15),
	}
}
