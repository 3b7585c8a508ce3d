package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

// catalog resolves category names and theme colors.
var catalog models.Catalog = models.GormCatalog{}

// RegisterCatalogRoutes registers the routes for categories and themes
// with the RouterGroups that are passed.
func RegisterCatalogRoutes(categories, themes *gin.RouterGroup) {
	categories.OPTIONS("", OptionsCategories)
	categories.GET("", GetCategories)

	themes.OPTIONS("", OptionsThemes)
	themes.GET("", GetThemes)
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`                                                                // List of Categories
	Error *string           `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type ThemeListResponse struct {
	Data  []models.Theme `json:"data"`                                                                // List of Themes
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns all categories. Categories are created when they are first referenced by name.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Failure		500	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	categories := make([]models.Category, 0)

	err := models.DB.Order("key ASC").Find(&categories).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Themes
// @Success		204
// @Router			/v1/themes [options]
func OptionsThemes(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get themes
// @Description	Returns all themes. Themes are created when they are first referenced by color.
// @Tags			Themes
// @Produce		json
// @Success		200	{object}	ThemeListResponse
// @Failure		500	{object}	ThemeListResponse
// @Router			/v1/themes [get]
func GetThemes(c *gin.Context) {
	themes := make([]models.Theme, 0)

	err := models.DB.Order("key ASC").Find(&themes).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ThemeListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ThemeListResponse{Data: themes})
}
