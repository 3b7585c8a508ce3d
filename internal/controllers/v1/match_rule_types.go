package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
)

// MatchRuleEditable represents all user configurable parameters
type MatchRuleEditable struct {
	Priority uint   `json:"priority" example:"3"`         // Rules with lower priority values are checked first
	Match    string `json:"match" example:"*netflix*"`    // Pattern for the contact name, * matches any number of characters
	Category string `json:"category" example:"Streaming"` // Name of the category assigned to matching transactions
}

func (editable MatchRuleEditable) model() (models.MatchRule, error) {
	category, err := catalog.Category(models.DB, editable.Category)
	if err != nil {
		return models.MatchRule{}, err
	}

	return models.MatchRule{
		Priority:   editable.Priority,
		Match:      editable.Match,
		CategoryID: category.ID,
	}, nil
}

type MatchRuleLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/match-rules/95685c82-53c6-455d-b235-f49960b73b21"` // The match rule itself
}

// MatchRule is the API representation of a MatchRule.
type MatchRule struct {
	models.DefaultModel
	Priority   uint           `json:"priority" example:"3"`
	Match      string         `json:"match" example:"*netflix*"`
	CategoryID uuid.UUID      `json:"categoryId" example:"2c3d5c1f-3ba6-4a2e-a3a6-b2a9c1b8e12f"`
	Category   string         `json:"category" example:"Streaming"`
	Links      MatchRuleLinks `json:"links"`
}

func newMatchRule(c *gin.Context, model models.MatchRule) MatchRule {
	return MatchRule{
		DefaultModel: model.DefaultModel,
		Priority:     model.Priority,
		Match:        model.Match,
		CategoryID:   model.CategoryID,
		Category:     model.Category.Name,
		Links: MatchRuleLinks{
			Self: fmt.Sprintf("%s/v1/match-rules/%s", apiURL(c), model.ID),
		},
	}
}

// MatchRuleQueryFilter contains the fields match rules can be filtered with.
type MatchRuleQueryFilter struct {
	Priority uint   `form:"priority"`                  // By priority
	Match    string `form:"match" filterField:"false"` // By match pattern, the filter matches on a substring
}

// model returns the filter as a database model.
func (f MatchRuleQueryFilter) model() models.MatchRule {
	return models.MatchRule{
		Priority: f.Priority,
	}
}

type MatchRuleResponse struct {
	Data  *MatchRule `json:"data"`                                                          // Data for the match rule
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MatchRuleListResponse struct {
	Data  []MatchRule `json:"data"`                                                          // List of match rules
	Error *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
