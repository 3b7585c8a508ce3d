package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
//
// Resources of other users are not found.
func resourceOptionsDetail[R models.Budget | models.MatchRule | models.RecurringBill | models.Transaction](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Where("user_id = ?", userID(c)).First(&resource, "id = ?", uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// categoryID resolves the category name to the ID of the catalog entry.
//
// An empty name resolves to uuid.Nil, which removes the category.
func categoryID(name string) (uuid.UUID, error) {
	if models.FoldKey(name) == "" {
		return uuid.Nil, nil
	}

	category, err := catalog.Category(models.DB, name)
	if err != nil {
		return uuid.Nil, err
	}

	return category.ID, nil
}

// categoryName returns the name of the category, or an empty string.
func categoryName(category *models.Category) string {
	if category == nil {
		return ""
	}

	return category.Name
}
