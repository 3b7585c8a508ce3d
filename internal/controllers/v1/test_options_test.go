package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/account", "OPTIONS, GET, PATCH, POST"},
		{"http://example.com/v1/balance", "OPTIONS, GET"},
		{"http://example.com/v1/budgets", "OPTIONS, GET, POST"},
		{"http://example.com/v1/categories", "OPTIONS, GET"},
		{"http://example.com/v1/match-rules", "OPTIONS, GET, POST"},
		{"http://example.com/v1/recurring-bills", "OPTIONS, GET, POST"},
		{"http://example.com/v1/themes", "OPTIONS, GET"},
		{"http://example.com/v1/transactions", "OPTIONS, GET, POST"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "", owner)

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

// TestOptionsDetail verifies the HTTP OPTIONS response for single resources.
func (suite *TestSuiteStandard) TestOptionsDetail() {
	createTestAccount(suite.T(), v1.AccountEditable{InitialBalance: decimal.NewFromFloat(5000)})

	tests := []struct {
		name     string
		pathFunc func() string
		status   int
		allow    string
	}{
		{
			"Budget",
			func() string { return createTestBudget(suite.T(), v1.BudgetEditable{}).Data.Budget.Links.Self },
			http.StatusNoContent,
			"OPTIONS, GET, PATCH, DELETE",
		},
		{
			"Match rule",
			func() string { return createTestMatchRule(suite.T(), v1.MatchRuleEditable{Match: "*netflix*"}).Data.Links.Self },
			http.StatusNoContent,
			"OPTIONS, GET, PATCH, DELETE",
		},
		{
			"Recurring bill",
			func() string { return createTestRecurringBill(suite.T(), monthlyBill()).Data.Links.Self },
			http.StatusNoContent,
			"OPTIONS, GET, PATCH, DELETE",
		},
		{
			"Recurring bill payment",
			func() string { return createTestRecurringBill(suite.T(), monthlyBill()).Data.Links.Pay },
			http.StatusNoContent,
			"OPTIONS, POST",
		},
		{
			"Transaction",
			func() string { return createTestTransaction(suite.T(), v1.TransactionEditable{}).Data.Links.Self },
			http.StatusNoContent,
			"OPTIONS, GET, PATCH, DELETE",
		},
		{
			"Does not exist",
			func() string { return "http://example.com/v1/budgets/bdc1c3e8-6b5f-4c45-a5a3-3b7b8f2f3a0e" },
			http.StatusNotFound,
			"",
		},
		{
			"Invalid UUID",
			func() string { return "http://example.com/v1/transactions/NotParseableAsUUID" },
			http.StatusBadRequest,
			"",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.pathFunc(), "", owner)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

// TestMethodNotAllowed tests some endpoints with disallowed HTTP methods
// to verify that the HTTP 405 - Method Not Allowed status is returned
// correctly
func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	tests := []struct {
		path   string
		method string
	}{
		{"http://example.com/", http.MethodPost},
		{"http://example.com/v1", http.MethodPost},
		{"http://example.com/v1/balance", http.MethodPost},
		{"http://example.com/v1/budgets", http.MethodPut},
		{"http://example.com/v1/categories", http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s - %s", tt.path, tt.method), func(t *testing.T) {
			recorder := test.Request(t, tt.method, tt.path, "", owner)
			test.AssertHTTPStatus(t, &recorder, http.StatusMethodNotAllowed)
		})
	}
}

// TestIdentityRequired verifies that the v1 API rejects requests without a valid user.
func (suite *TestSuiteStandard) TestIdentityRequired() {
	tests := []struct {
		name    string
		headers []map[string]string
	}{
		{"No header", nil},
		{"Not a UUID", []map[string]string{test.User("alice")}},
		{"Nil UUID", []map[string]string{test.User("00000000-0000-0000-0000-000000000000")}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/balance", "", tt.headers...)
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
			assert.NotEmpty(t, test.DecodeError(t, &r))
		})
	}
}
