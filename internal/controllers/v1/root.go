package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup, dueSoonDays int) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)

	RegisterAccountRoutes(r.Group("/account"))
	RegisterBalanceRoutes(r.Group("/balance"))
	RegisterBudgetRoutes(r.Group("/budgets"))
	RegisterCatalogRoutes(r.Group("/categories"), r.Group("/themes"))
	RegisterMatchRuleRoutes(r.Group("/match-rules"))
	RegisterRecurringBillRoutes(r.Group("/recurring-bills"), dueSoonDays)
	RegisterTransactionRoutes(r.Group("/transactions"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Account        string `json:"account" example:"https://example.com/api/v1/account"`                // URL of the own account
	Balance        string `json:"balance" example:"https://example.com/api/v1/balance"`                // URL of the balance endpoint
	Budgets        string `json:"budgets" example:"https://example.com/api/v1/budgets"`                // URL of Budget collection endpoint
	Categories     string `json:"categories" example:"https://example.com/api/v1/categories"`          // URL of Category collection endpoint
	MatchRules     string `json:"matchRules" example:"https://example.com/api/v1/match-rules"`         // URL of Match Rule collection endpoint
	RecurringBills string `json:"recurringBills" example:"https://example.com/api/v1/recurring-bills"` // URL of Recurring Bill collection endpoint
	Themes         string `json:"themes" example:"https://example.com/api/v1/themes"`                  // URL of Theme collection endpoint
	Transactions   string `json:"transactions" example:"https://example.com/api/v1/transactions"`      // URL of Transaction collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := apiURL(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Account:        url + "/v1/account",
			Balance:        url + "/v1/balance",
			Budgets:        url + "/v1/budgets",
			Categories:     url + "/v1/categories",
			MatchRules:     url + "/v1/match-rules",
			RecurringBills: url + "/v1/recurring-bills",
			Themes:         url + "/v1/themes",
			Transactions:   url + "/v1/transactions",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all resources of the user. Categories and themes are shared and kept.
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errCleanupConfirmation.Error(),
		})
		return
	}

	err = models.CleanupUserData(models.DB, userID(c))
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
