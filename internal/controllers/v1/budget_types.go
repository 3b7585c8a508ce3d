package v1

import (
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	Category string          `json:"category" example:"Entertainment"`                                                                 // Name of the category, created if it does not exist
	Amount   decimal.Decimal `json:"amount" example:"50" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Spending limit
	Theme    string          `json:"theme" example:"#277C78"`                                                                          // Color of the budget, created if it does not exist
}

func (editable BudgetEditable) model() (models.Budget, error) {
	category, err := catalog.Category(models.DB, editable.Category)
	if err != nil {
		return models.Budget{}, err
	}

	theme, err := themeID(editable.Theme)
	if err != nil {
		return models.Budget{}, err
	}

	return models.Budget{
		CategoryID: category.ID,
		Amount:     editable.Amount,
		ThemeID:    &theme,
	}, nil
}

// themeID resolves the color to the ID of the catalog entry.
//
// An empty color resolves to uuid.Nil, which removes the theme.
func themeID(color string) (uuid.UUID, error) {
	if models.FoldKey(color) == "" {
		return uuid.Nil, nil
	}

	theme, err := catalog.Theme(models.DB, color)
	if err != nil {
		return uuid.Nil, err
	}

	return theme.ID, nil
}

type BudgetLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"` // The budget itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=Entertainment"`  // Transactions in the category of the budget
}

// Budget is the API representation of a Budget.
type Budget struct {
	models.DefaultModel
	CategoryID uuid.UUID       `json:"categoryId" example:"4e2b4fb9-3e5c-4ee5-9d67-5b5a4c1cd0b2"`
	Amount     decimal.Decimal `json:"amount" example:"50"`
	ThemeID    *uuid.UUID      `json:"themeId" example:"c1d0b6c4-8f2a-4f47-9b0c-0a5c6a6d2e11"`
	Links      BudgetLinks     `json:"links"`
}

// BudgetDetail is a budget together with its spend.
type BudgetDetail struct {
	Budget          Budget          `json:"budget"`
	CategoryName    string          `json:"categoryName" example:"Entertainment"`
	AmountSpent     decimal.Decimal `json:"amountSpent" example:"12.5"`
	BudgetLimit     decimal.Decimal `json:"budgetLimit" example:"50"`
	Theme           string          `json:"theme" example:"#277C78"`
	PercentageSpent string          `json:"percentageSpent" example:"25.00"` // Share of the limit that is spent, rounded to two decimal places. Exceeds 100 when the budget is overspent.
	Free            decimal.Decimal `json:"free" example:"37.5"`             // Amount left to spend. Negative when the budget is overspent.
}

func newBudgetDetail(c *gin.Context, model models.Budget, details models.BudgetDetails) BudgetDetail {
	u := apiURL(c)

	theme := ""
	if model.Theme != nil {
		theme = model.Theme.Color
	}

	return BudgetDetail{
		Budget: Budget{
			DefaultModel: model.DefaultModel,
			CategoryID:   model.CategoryID,
			Amount:       model.Amount,
			ThemeID:      model.ThemeID,
			Links: BudgetLinks{
				Self:         fmt.Sprintf("%s/v1/budgets/%s", u, model.ID),
				Transactions: fmt.Sprintf("%s/v1/transactions?category=%s", u, url.QueryEscape(model.Category.Name)),
			},
		},
		CategoryName:    model.Category.Name,
		AmountSpent:     details.AmountSpent,
		BudgetLimit:     details.BudgetLimit,
		Theme:           theme,
		PercentageSpent: details.PercentageSpent.StringFixed(2),
		Free:            details.Free,
	}
}

type BudgetResponse struct {
	Data  *BudgetDetail `json:"data"`                                                          // Data for the Budget
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []BudgetDetail `json:"data"`                                                                // List of Budgets
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}
