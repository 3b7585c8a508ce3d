package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/pocket-ledger/backend/internal/controllers/v1"
	"github.com/pocket-ledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestMatchRulesCreateGet() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 2, Match: "*netflix*", Category: "Streaming"})

	suite.Assert().Equal(uint(2), rule.Data.Priority)
	suite.Assert().Equal("*netflix*", rule.Data.Match)
	suite.Assert().Equal("Streaming", rule.Data.Category)

	r := test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "", owner)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var fetched v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &r, &fetched)
	suite.Assert().Equal(rule.Data.ID, fetched.Data.ID)
}

func (suite *TestSuiteStandard) TestMatchRulesCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Empty match", v1.MatchRuleEditable{Match: "  "}},
		{"Broken body", `{"match": 3`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/match-rules", tt.body, owner)
			test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesList() {
	createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 5, Match: "*cinema*"})
	createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "Netflix", Category: "Streaming"})
	createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 5, Match: "Spotify*", Category: "Streaming"})

	// Rules of other users are not listed
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/match-rules", v1.MatchRuleEditable{Match: "*", Category: "Misc"}, test.User(otherID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	tests := []struct {
		query    string
		expected []string
	}{
		{"", []string{"Netflix", "*cinema*", "Spotify*"}},
		{"?priority=5", []string{"*cinema*", "Spotify*"}},
		{"?match=net", []string{"Netflix"}},
		{"?match=", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/match-rules"+tt.query, "", owner)
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var list v1.MatchRuleListResponse
			test.DecodeResponse(t, &r, &list)

			matches := []string{}
			for _, rule := range list.Data {
				matches = append(matches, rule.Match)
			}
			assert.Equal(t, tt.expected, matches)
		})
	}

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules?priority=-1", "", owner)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMatchRulesUpdate() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 3, Match: "*gym*", Category: "Fitness"})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{"match": "*fitness*", "category": "Health"}, owner)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Assert().Equal("*fitness*", updated.Data.Match)
	suite.Assert().Equal("Health", updated.Data.Category)
	suite.Assert().Equal(uint(3), updated.Data.Priority, "Fields not in the body must be kept")

	r = test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, `{"match": ""}`, owner)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, `{"match": "*fitness*"}`, test.User(otherID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMatchRulesDelete() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Match: "*"})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "", test.User(otherID))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "", owner)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "", owner)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules/%s", uuid.New()), "", owner)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMatchRulesAssignCategory() {
	createTestAccount(suite.T(), v1.AccountEditable{})
	createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 10, Match: "*"})
	createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "*netflix*", Category: "Streaming"})

	tests := []struct {
		contact  string
		category string
		expected string
	}{
		{"NETFLIX.COM", "", "Streaming"},
		{"Cinema City", "", "Entertainment"},
		{"Netflix", "Gifts", "Gifts"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.contact, func(t *testing.T) {
			transaction := createTestTransaction(t, v1.TransactionEditable{ContactName: tt.contact, Category: tt.category})
			assert.Equal(t, tt.expected, transaction.Data.Category)
		})
	}
}
