package v1_test

import (
	"net/http"

	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestGetV1() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "", owner)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("http://example.com/v1/account", response.Links.Account)
	suite.Assert().Equal("http://example.com/v1/balance", response.Links.Balance)
	suite.Assert().Equal("http://example.com/v1/budgets", response.Links.Budgets)
	suite.Assert().Equal("http://example.com/v1/categories", response.Links.Categories)
	suite.Assert().Equal("http://example.com/v1/match-rules", response.Links.MatchRules)
	suite.Assert().Equal("http://example.com/v1/recurring-bills", response.Links.RecurringBills)
	suite.Assert().Equal("http://example.com/v1/themes", response.Links.Themes)
	suite.Assert().Equal("http://example.com/v1/transactions", response.Links.Transactions)
}

func (suite *TestSuiteStandard) TestCleanup() {
	account := createTestAccount(suite.T(), v1.AccountEditable{InitialBalance: decimal.NewFromFloat(2000)})
	createTestTransaction(suite.T(), v1.TransactionEditable{Category: "Groceries"})
	createTestBudget(suite.T(), v1.BudgetEditable{})
	createTestRecurringBill(suite.T(), monthlyBill())
	createTestMatchRule(suite.T(), v1.MatchRuleEditable{Match: "*"})

	// The resources of other users are kept
	other := test.User(otherID)
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/account", v1.AccountEditable{Name: "Savings"}, other)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"No confirmation", "http://example.com/v1", http.StatusBadRequest},
		{"Wrong confirmation", "http://example.com/v1?confirm=yes", http.StatusBadRequest},
		{"Confirmed", "http://example.com/v1?confirm=yes-please-delete-everything", http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodDelete, tt.url, "", owner)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}

	r = test.Request(suite.T(), http.MethodGet, account.Data.Links.Self, "", owner)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	for _, collection := range []string{"budgets", "match-rules"} {
		r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/"+collection, "", owner)
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK, http.StatusNotFound)

		var list struct {
			Data []any `json:"data"`
		}
		test.DecodeResponse(suite.T(), &r, &list)
		suite.Assert().Empty(list.Data, collection)
	}

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/account", "", other)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Categories are shared
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "", owner)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var categories v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &categories)
	suite.Assert().NotEmpty(categories.Data)
}
