package v1_test

import (
	"net/http"
	"strings"

	"github.com/pocket-ledger/backend/test"
)

// TestDatabaseErrors verifies that all endpoints report a closed
// database as an internal error.
func (suite *TestSuiteStandard) TestDatabaseErrors() {
	suite.CloseDB()

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/account", ""},
		{http.MethodPost, "/account", `{"name": "Checking"}`},
		{http.MethodGet, "/balance", ""},
		{http.MethodGet, "/budgets", ""},
		{http.MethodPost, "/budgets", `{"category": "Groceries", "amount": "100"}`},
		{http.MethodGet, "/categories", ""},
		{http.MethodGet, "/themes", ""},
		{http.MethodGet, "/match-rules", ""},
		{http.MethodPost, "/match-rules", `{"match": "*", "category": "Misc"}`},
		{http.MethodGet, "/recurring-bills", ""},
		{http.MethodPost, "/recurring-bills", `{"name": "Rent", "amount": "950", "recurrenceDay": 1, "recurrenceFrequency": "monthly"}`},
		{http.MethodGet, "/transactions", ""},
		{http.MethodPost, "/transactions", `{"amount": "10", "contactName": "Corner Shop"}`},
		{http.MethodDelete, "?confirm=yes-please-delete-everything", ""},
	}

	for _, tt := range tests {
		suite.Run(strings.Join([]string{tt.method, tt.path}, " "), func() {
			r := test.Request(suite.T(), tt.method, "http://example.com/v1"+tt.path, tt.body, owner)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
			suite.Assert().Equal("an error occurred on the server during your request", test.DecodeError(suite.T(), &r))
		})
	}
}
