package v1_test

import (
	"net/http"

	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAccountCreateGet() {
	created := createTestAccount(suite.T(), v1.AccountEditable{Name: "Checking", InitialBalance: decimal.NewFromFloat(173.12)})
	suite.Assert().Equal("Checking", created.Data.Name)
	suite.Assert().True(decimal.NewFromFloat(173.12).Equal(created.Data.InitialBalance))
	suite.Assert().Equal("http://example.com/v1/balance", created.Data.Links.Balance)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/account", "", owner)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var account v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &account)
	suite.Assert().Equal(created.Data.ID, account.Data.ID)
}

func (suite *TestSuiteStandard) TestAccountSecondAccountConflicts() {
	createTestAccount(suite.T(), v1.AccountEditable{})
	r := createTestAccount(suite.T(), v1.AccountEditable{Name: "Savings"}, http.StatusConflict)
	suite.Assert().NotNil(r.Error)
}

func (suite *TestSuiteStandard) TestAccountMissing() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/account", "", owner)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountPerUser() {
	createTestAccount(suite.T(), v1.AccountEditable{})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/account", "", test.User(otherID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAccountUpdate() {
	createTestAccount(suite.T(), v1.AccountEditable{Name: "Checking", InitialBalance: decimal.NewFromFloat(100)})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/account", map[string]any{
		"initialBalance": "250",
	}, owner)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var account v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &account)
	suite.Assert().Equal("Checking", account.Data.Name, "Name must not change when it is not part of the body")
	suite.Assert().True(decimal.NewFromFloat(250).Equal(account.Data.InitialBalance))
}

func (suite *TestSuiteStandard) TestAccountUpdateErrors() {
	createTestAccount(suite.T(), v1.AccountEditable{})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Empty body", "", http.StatusBadRequest},
		{"Broken JSON", `{"name": 2`, http.StatusBadRequest},
		{"Wrong type", `{"name": 2}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/account", tt.body, owner)
			test.AssertHTTPStatus(suite.T(), &r, tt.status)
		})
	}
}
