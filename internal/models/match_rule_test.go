package models_test

import (
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMatchRuleEmpty() {
	account := suite.createTestUser(decimal.Zero)
	category := suite.createTestCategory("Entertainment")

	err := models.DB.Create(&models.MatchRule{UserID: account.UserID, CategoryID: category.ID, Match: "  "}).Error
	suite.Assert().ErrorIs(err, models.ErrMatchRuleEmpty)
}

func (suite *TestSuiteStandard) TestMatchCategory() {
	account := suite.createTestUser(decimal.Zero)
	other := suite.createTestUser(decimal.Zero)
	entertainment := suite.createTestCategory("Entertainment")
	streaming := suite.createTestCategory("Streaming")

	rules := []models.MatchRule{
		{UserID: account.UserID, Priority: 5, Match: "*flix*", CategoryID: entertainment.ID},
		{UserID: account.UserID, Priority: 1, Match: "Netflix*", CategoryID: streaming.ID},
		{UserID: other.UserID, Priority: 0, Match: "*", CategoryID: entertainment.ID},
	}
	for i := range rules {
		suite.Require().Nil(models.DB.Create(&rules[i]).Error)
	}

	tests := []struct {
		name     string
		contact  string
		category *models.Category
	}{
		{"Priority wins", "NETFLIX International", &streaming},
		{"Second rule", "Mubiflix", &entertainment},
		{"No match", "Bakery", nil},
		{"Empty", "", nil},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			id, err := models.MatchCategory(models.DB, account.UserID, tt.contact)
			suite.Require().Nil(err)

			if tt.category == nil {
				suite.Assert().Nil(id)
				return
			}

			suite.Require().NotNil(id)
			suite.Assert().Equal(tt.category.ID, *id)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateTransactionMatchRule() {
	account := suite.createTestUser(decimal.Zero)
	streaming := suite.createTestCategory("Streaming")
	groceries := suite.createTestCategory("Groceries")

	suite.Require().Nil(models.DB.Create(&models.MatchRule{UserID: account.UserID, Match: "*netflix*", CategoryID: streaming.ID}).Error)

	matched, err := models.CreateTransaction(models.DB, account.UserID, models.Transaction{
		Amount:      decimal.NewFromInt(15),
		ContactName: "Netflix",
	}, models.Recurrence{})
	suite.Require().Nil(err)
	suite.Require().NotNil(matched.CategoryID)
	suite.Assert().Equal(streaming.ID, *matched.CategoryID)

	// An explicit category is kept
	explicit, err := models.CreateTransaction(models.DB, account.UserID, models.Transaction{
		Amount:      decimal.NewFromInt(15),
		ContactName: "Netflix",
		CategoryID:  &groceries.ID,
	}, models.Recurrence{})
	suite.Require().Nil(err)
	suite.Assert().Equal(groceries.ID, *explicit.CategoryID)
}
