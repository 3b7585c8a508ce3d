package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// AccountEditable represents all user configurable parameters
type AccountEditable struct {
	Name           string          `json:"name" example:"Checking"`                                                                                                  // Name of the account
	Avatar         string          `json:"avatar" example:"https://example.com/avatars/me.png"`                                                                      // Avatar URL
	InitialBalance decimal.Decimal `json:"initialBalance" example:"173.12" minimum:"-999999999999.99999999" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Balance of the account before any transaction
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:           editable.Name,
		Avatar:         editable.Avatar,
		InitialBalance: editable.InitialBalance,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/account"`              // The account itself
	Balance      string `json:"balance" example:"https://example.com/api/v1/balance"`           // The balance derived from the transactions
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // Transactions of the account
}

// Account is the API representation of the own account of a user.
type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) Account {
	url := apiURL(c)

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:           model.Name,
			Avatar:         model.Avatar,
			InitialBalance: model.InitialBalance,
		},
		Links: AccountLinks{
			Self:         url + "/v1/account",
			Balance:      url + "/v1/balance",
			Transactions: url + "/v1/transactions",
		},
	}
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
