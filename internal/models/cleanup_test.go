package models_test

import (
	"time"

	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCleanupUserData() {
	account := suite.createTestUser(decimal.NewFromInt(500))
	other := suite.createTestUser(decimal.NewFromInt(500))

	for _, a := range []models.Account{account, other} {
		bill := suite.createTestExpenseBill(a, decimal.NewFromInt(100), 15, types.NewDate(2024, time.January, 15))
		_, err := models.PayRecurringBill(models.DB, a.UserID, bill.ID, nil)
		suite.Require().Nil(err)

		category := suite.createTestCategory("Rent")
		suite.createTestBudget(models.Budget{UserID: a.UserID, CategoryID: category.ID, Amount: decimal.NewFromInt(1000)})
	}

	suite.Require().Nil(models.CleanupUserData(models.DB, account.UserID))

	for _, model := range []any{&models.Transaction{}, &models.RecurringBill{}, &models.Budget{}, &models.Account{}} {
		var mine, theirs int64
		suite.Require().Nil(models.DB.Model(model).Where("user_id = ?", account.UserID).Count(&mine).Error)
		suite.Require().Nil(models.DB.Model(model).Where("user_id = ?", other.UserID).Count(&theirs).Error)

		suite.Assert().Zero(mine, "%T has not been deleted", model)
		suite.Assert().NotZero(theirs, "%T of the other user has been deleted", model)
	}

	var categories int64
	suite.Require().Nil(models.DB.Model(&models.Category{}).Count(&categories).Error)
	suite.Assert().Equal(int64(1), categories)
}
