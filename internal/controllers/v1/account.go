package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterAccountRoutes registers the routes for the own account with
// the RouterGroup that is passed.
func RegisterAccountRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAccount)
	r.GET("", GetAccount)
	r.POST("", CreateAccount)
	r.PATCH("", UpdateAccount)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Account
// @Success		204
// @Router			/v1/account [options]
func OptionsAccount(c *gin.Context) {
	httputil.OptionsGetPatchPost(c)
}

// @Summary		Get account
// @Description	Returns the own account of the user
// @Tags			Account
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Router			/v1/account [get]
func GetAccount(c *gin.Context) {
	account, err := models.OwnAccount(models.DB, userID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Create account
// @Description	Creates the own account of the user. Every user has exactly one.
// @Tags			Account
// @Accept			json
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		409		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/account [post]
func CreateAccount(c *gin.Context) {
	var editable AccountEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	account := editable.model()
	account.UserID = userID(c)

	err = models.DB.Create(&account).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusCreated, AccountResponse{Data: &data})
}

// @Summary		Update account
// @Description	Updates the own account of the user. Only values to be updated need to be specified.
// @Tags			Account
// @Accept			json
// @Produce		json
// @Success		200		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		404		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/account [patch]
func UpdateAccount(c *gin.Context) {
	account, err := models.OwnAccount(models.DB, userID(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, AccountEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	var data AccountEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	if slices.Contains(updateFields, "Name") {
		account.Name = data.Name
	}

	if slices.Contains(updateFields, "Avatar") {
		account.Avatar = data.Avatar
	}

	if slices.Contains(updateFields, "InitialBalance") {
		account.InitialBalance = data.InitialBalance
	}

	err = models.DB.Save(&account).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &apiResource})
}
