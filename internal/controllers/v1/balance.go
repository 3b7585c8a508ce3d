package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

// latestTransactionCount is the number of transactions returned with the balance.
const latestTransactionCount = 5

// RegisterBalanceRoutes registers the routes for the balance with
// the RouterGroup that is passed.
func RegisterBalanceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBalance)
	r.GET("", GetBalance)
}

// Balance is the balance of the own account together with the latest transactions.
type Balance struct {
	models.Balance
	Transactions []Transaction `json:"transactions"` // The latest transactions of the account
}

type BalanceResponse struct {
	Data  *Balance `json:"data"`                                                    // Data for the balance
	Error *string  `json:"error" example:"there is no account matching your query"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Balance
// @Success		204
// @Router			/v1/balance [options]
func OptionsBalance(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get balance
// @Description	Returns the current balance, the sum of all incomes and the sum of all expenses of the own account. The latest five transactions are included.
// @Tags			Balance
// @Produce		json
// @Success		200	{object}	BalanceResponse
// @Failure		404	{object}	BalanceResponse
// @Failure		422	{object}	BalanceResponse
// @Failure		500	{object}	BalanceResponse
// @Router			/v1/balance [get]
func GetBalance(c *gin.Context) {
	account, err := models.OwnAccount(models.DB, userID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	balance, _, err := account.Balance(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	page, err := models.QueryTransactions(models.DB, models.TransactionQuery{
		UserID: account.UserID,
		Limit:  latestTransactionCount,
		Sort:   models.SortLatest,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BalanceResponse{
			Error: &e,
		})
		return
	}

	data := Balance{
		Balance:      balance,
		Transactions: make([]Transaction, 0, len(page.Transactions)),
	}

	for _, t := range page.Transactions {
		data.Transactions = append(data.Transactions, newTransaction(c, t.Transaction, t.Balance))
	}

	c.JSON(http.StatusOK, BalanceResponse{Data: &data})
}
