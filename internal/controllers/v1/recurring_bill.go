package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/prometheus/client_golang/prometheus"
)

var billPayments = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bill_payments_total",
		Help: "How many recurring bill payments were attempted, partitioned by result.",
	},
	[]string{"result"},
)

// Metrics are the collectors of the v1 API.
var Metrics = []prometheus.Collector{billPayments}

// paymentResult returns the metric label for the outcome of a payment.
func paymentResult(err error) string {
	switch {
	case err == nil:
		return "paid"
	case errors.Is(err, models.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, models.ErrGeneral):
		return "error"
	}

	return "rejected"
}

// RegisterRecurringBillRoutes registers the routes for recurring bills with
// the RouterGroup that is passed.
//
// Bills due within the next days are classified as due soon, negative
// values select models.DefaultDueSoonDays.
func RegisterRecurringBillRoutes(r *gin.RouterGroup, days int) {
	if days < 0 {
		days = models.DefaultDueSoonDays
	}

	// Root group
	{
		r.OPTIONS("", OptionsRecurringBillList)
		r.GET("", GetRecurringBills(days))
		r.POST("", CreateRecurringBill)
	}

	// Recurring bill with ID
	{
		r.OPTIONS("/:id", OptionsRecurringBillDetail)
		r.GET("/:id", GetRecurringBill)
		r.PATCH("/:id", UpdateRecurringBill)
		r.DELETE("/:id", DeleteRecurringBill)
		r.OPTIONS("/:id/pay", OptionsRecurringBillPay)
		r.POST("/:id/pay", PayRecurringBill)
	}
}

// getRecurringBill returns the API representation of a bill of the user.
func getRecurringBill(c *gin.Context, id uuid.UUID) (RecurringBill, error) {
	var bill models.RecurringBill
	err := models.DB.
		Preload("Category").
		Where(&models.RecurringBill{UserID: userID(c)}).
		First(&bill, "id = ?", id).Error
	if err != nil {
		return RecurringBill{}, err
	}

	return newRecurringBill(c, bill), nil
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Bills
// @Success		204
// @Router			/v1/recurring-bills [options]
func OptionsRecurringBillList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Bills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-bills/{id} [options]
func OptionsRecurringBillDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.RecurringBill{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recurring Bills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-bills/{id}/pay [options]
func OptionsRecurringBillPay(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = getRecurringBill(c, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Get recurring bills
// @Description	Returns all recurring bills of the user, grouped into overdue, due soon and upcoming bills
// @Tags			Recurring Bills
// @Produce		json
// @Success		200		{object}	BillSummaryResponse
// @Failure		400		{object}	BillSummaryResponse
// @Failure		500		{object}	BillSummaryResponse
// @Param			today	query		string	false	"Date to classify the bills for, defaults to the current date"
// @Router			/v1/recurring-bills [get]
func GetRecurringBills(dueSoonDays int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query BillSummaryQuery
		err := c.ShouldBindQuery(&query)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), BillSummaryResponse{
				Error: &e,
			})
			return
		}

		if query.Today.IsZero() {
			query.Today = types.Today()
		}

		var bills []models.RecurringBill
		err = models.DB.
			Preload("Category").
			Where(&models.RecurringBill{UserID: userID(c)}).
			Order("created_at ASC, id ASC").
			Find(&bills).Error
		if err != nil {
			e := err.Error()
			c.JSON(status(err), BillSummaryResponse{
				Error: &e,
			})
			return
		}

		summary := newBillSummary(c, query.Today, dueSoonDays, models.ClassifyBills(bills, query.Today, dueSoonDays))
		c.JSON(http.StatusOK, BillSummaryResponse{Data: &summary})
	}
}

// @Summary		Get recurring bill
// @Description	Returns a specific recurring bill
// @Tags			Recurring Bills
// @Produce		json
// @Success		200	{object}	RecurringBillResponse
// @Failure		400	{object}	RecurringBillResponse
// @Failure		404	{object}	RecurringBillResponse
// @Failure		500	{object}	RecurringBillResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-bills/{id} [get]
func GetRecurringBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringBillResponse{
			Error: &e,
		})
		return
	}

	data, err := getRecurringBill(c, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringBillResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, RecurringBillResponse{Data: &data})
}

// @Summary		Create recurring bill
// @Description	Creates a recurring bill with the contact. The own account of the user must exist.
// @Tags			Recurring Bills
// @Accept			json
// @Produce		json
// @Success		201		{object}	RecurringBillResponse
// @Failure		400		{object}	RecurringBillResponse
// @Failure		404		{object}	RecurringBillResponse
// @Failure		422		{object}	RecurringBillResponse
// @Failure		500		{object}	RecurringBillResponse
// @Param			bill	body		RecurringBillEditable	true	"Recurring bill"
// @Router			/v1/recurring-bills [post]
func CreateRecurringBill(c *gin.Context) {
	var editable RecurringBillEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringBillResponse{
			Error: &e,
		})
		return
	}

	bill, err := editable.model()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringBillResponse{
			Error: &e,
		})
		return
	}

	bill, err = models.CreateRecurringBill(models.DB, userID(c), bill)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringBillResponse{
			Error: &e,
		})
		return
	}

	data, err := getRecurringBill(c, bill.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringBillResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, RecurringBillResponse{Data: &data})
}

// @Summary		Update recurring bill
// @Description	Update a recurring bill. Only values to be updated need to be specified. The type of a bill cannot be changed.
// @Tags			Recurring Bills
// @Accept			json
// @Produce		json
// @Success		200		{object}	RecurringBillResponse
// @Failure		400		{object}	RecurringBillResponse
// @Failure		404		{object}	RecurringBillResponse
// @Failure		500		{object}	RecurringBillResponse
// @Param			id		path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			bill	body		RecurringBillEditable	true	"Recurring bill"
// @Router			/v1/recurring-bills/{id} [patch]
func UpdateRecurringBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringBillResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, RecurringBillEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringBillResponse{
			Error: &e,
		})
		return
	}

	var data RecurringBillEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringBillResponse{
			Error: &e,
		})
		return
	}

	patch, err := data.patch(updateFields)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringBillResponse{
			Error: &e,
		})
		return
	}

	bill, err := models.UpdateRecurringBill(models.DB, userID(c), uri.ID.UUID, patch)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringBillResponse{
			Error: &e,
		})
		return
	}

	apiResource, err := getRecurringBill(c, bill.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RecurringBillResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, RecurringBillResponse{Data: &apiResource})
}

// @Summary		Delete recurring bill
// @Description	Deletes a recurring bill. Its transactions are kept as regular transactions.
// @Tags			Recurring Bills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/recurring-bills/{id} [delete]
func DeleteRecurringBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteRecurringBill(models.DB, userID(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Pay recurring bill
// @Description	Pays an expense bill from the own account. The payment creates a transaction and advances the schedule of the bill.
// @Tags			Recurring Bills
// @Accept			json
// @Produce		json
// @Success		201		{object}	PaymentResponse
// @Failure		400		{object}	PaymentResponse
// @Failure		404		{object}	PaymentResponse
// @Failure		422		{object}	PaymentResponse
// @Failure		500		{object}	PaymentResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payment	body		PaymentEditable	false	"Payment"
// @Router			/v1/recurring-bills/{id}/pay [post]
func PayRecurringBill(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	var editable PaymentEditable
	err = httputil.BindData(c, &editable)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	payment, err := models.PayRecurringBill(models.DB, userID(c), uri.ID.UUID, editable.Date)
	billPayments.WithLabelValues(paymentResult(err)).Inc()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	transaction, err := getTransaction(c, payment.Transaction.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	bill, err := getRecurringBill(c, payment.Bill.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, PaymentResponse{Data: &Payment{
		Transaction: transaction,
		Bill:        bill,
	}})
}
