package v1

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/pocket-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RecurringBillEditable represents all user configurable parameters
type RecurringBillEditable struct {
	Name                string                 `json:"name" example:"Rent"`                                                                               // Name of the bill
	Amount              decimal.Decimal        `json:"amount" example:"950" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Amount that is due on every occurrence
	Type                models.TransactionType `json:"type" example:"expense" enums:"income,expense"`                                                     // Type of the bill, defaults to expense
	Category            string                 `json:"category" example:"Bills"`                                                                          // Name of the category. Set to an empty string to remove it.
	RecurrenceDay       int                    `json:"recurrenceDay" example:"15"`                                                                        // Day of the month the bill is due on
	RecurrenceFrequency models.Frequency       `json:"recurrenceFrequency" example:"monthly" enums:"weekly,monthly,yearly"`                               // How often the bill is due
	BaseDate            types.Date             `json:"baseDate" example:"2024-08-15"`                                                                     // Date the schedule starts from, defaults to today
	ContactName         string                 `json:"contactName" example:"Landlord"`                                                                    // Name of the contact the bill is paid to or received from
	ContactAvatar       string                 `json:"contactAvatar" example:"https://example.com/avatars/landlord.png"`                                  // Avatar URL of the contact
}

func (editable RecurringBillEditable) model() (models.RecurringBill, error) {
	category, err := categoryID(editable.Category)
	if err != nil {
		return models.RecurringBill{}, err
	}

	return models.RecurringBill{
		Name:                editable.Name,
		Amount:              editable.Amount,
		Type:                editable.Type,
		CategoryID:          &category,
		RecurrenceDay:       editable.RecurrenceDay,
		RecurrenceFrequency: editable.RecurrenceFrequency,
		BaseDate:            editable.BaseDate,
		ContactName:         editable.ContactName,
		ContactAvatar:       editable.ContactAvatar,
	}, nil
}

// patch returns the changes for all fields set in the request body.
//
// The type of a bill cannot be changed and is ignored.
func (editable RecurringBillEditable) patch(fields []string) (models.RecurringBillPatch, error) {
	patch := models.RecurringBillPatch{
		Recurrence: models.Recurrence{
			Day:       editable.RecurrenceDay,
			Frequency: editable.RecurrenceFrequency,
		},
	}

	for _, field := range fields {
		switch field {
		case "Name":
			patch.Name = &editable.Name
		case "Amount":
			patch.Amount = &editable.Amount
		case "Category":
			category, err := categoryID(editable.Category)
			if err != nil {
				return models.RecurringBillPatch{}, err
			}
			patch.CategoryID = &category
		case "BaseDate":
			patch.BaseDate = &editable.BaseDate
		case "ContactName":
			patch.ContactName = &editable.ContactName
		case "ContactAvatar":
			patch.ContactAvatar = &editable.ContactAvatar
		}
	}

	return patch, nil
}

type RecurringBillLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/recurring-bills/0e2a6a5c-1d9a-4b7e-8c58-b3b4d5f1a9c1"`    // The bill itself
	Pay          string `json:"pay" example:"https://example.com/api/v1/recurring-bills/0e2a6a5c-1d9a-4b7e-8c58-b3b4d5f1a9c1/pay"` // Endpoint to pay the bill
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?search=Landlord"`                    // Transactions with the contact of the bill
}

// RecurringBill is the API representation of a RecurringBill.
type RecurringBill struct {
	models.DefaultModel
	Name                string                 `json:"name" example:"Rent"`
	Amount              decimal.Decimal        `json:"amount" example:"950"`
	Type                models.TransactionType `json:"type" example:"expense"`
	CategoryID          *uuid.UUID             `json:"categoryId" example:"2c3d5c1f-3ba6-4a2e-a3a6-b2a9c1b8e12f"`
	Category            string                 `json:"category" example:"Bills"`
	RecurrenceDay       int                    `json:"recurrenceDay" example:"15"`
	RecurrenceFrequency models.Frequency       `json:"recurrenceFrequency" example:"monthly"`
	BaseDate            types.Date             `json:"baseDate" example:"2024-08-15"`
	LastPaidDate        *types.Date            `json:"lastPaidDate" example:"2024-09-15"`
	NextDueDate         *types.Date            `json:"nextDueDate" example:"2024-10-15"` // Next date the bill is due. Empty for bills without recurrence information.
	ContactName         string                 `json:"contactName" example:"Landlord"`
	ContactAvatar       string                 `json:"contactAvatar" example:"https://example.com/avatars/landlord.png"`
	SenderAccountID     uuid.UUID              `json:"senderAccountId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`
	RecipientAccountID  uuid.UUID              `json:"recipientAccountId" example:"fa0d4a8e-8e6c-4a3d-9b8c-3b7f44e0a1d2"`
	Links               RecurringBillLinks     `json:"links"`
}

func newRecurringBill(c *gin.Context, model models.RecurringBill) RecurringBill {
	u := apiURL(c)

	bill := RecurringBill{
		DefaultModel:        model.DefaultModel,
		Name:                model.Name,
		Amount:              model.Amount,
		Type:                model.Type,
		CategoryID:          model.CategoryID,
		Category:            categoryName(model.Category),
		RecurrenceDay:       model.RecurrenceDay,
		RecurrenceFrequency: model.RecurrenceFrequency,
		BaseDate:            model.BaseDate,
		LastPaidDate:        model.LastPaidDate,
		NextDueDate:         model.NextDueDate,
		ContactName:         model.ContactName,
		ContactAvatar:       model.ContactAvatar,
		SenderAccountID:     model.SenderAccountID,
		RecipientAccountID:  model.RecipientAccountID,
		Links: RecurringBillLinks{
			Self:         fmt.Sprintf("%s/v1/recurring-bills/%s", u, model.ID),
			Pay:          fmt.Sprintf("%s/v1/recurring-bills/%s/pay", u, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?search=%s", u, url.QueryEscape(model.ContactName)),
		},
	}

	if bill.NextDueDate == nil {
		if due, err := model.DueDate(); err == nil {
			bill.NextDueDate = &due
		}
	}

	return bill
}

// BillBucket is a group of recurring bills and the sum of their amounts.
type BillBucket struct {
	Bills []RecurringBill `json:"bills"`
	Total decimal.Decimal `json:"total" example:"950"`
}

func newBillBucket(c *gin.Context, bucket models.BillBucket) BillBucket {
	bills := make([]RecurringBill, 0, len(bucket.Bills))
	for _, bill := range bucket.Bills {
		bills = append(bills, newRecurringBill(c, bill))
	}

	return BillBucket{Bills: bills, Total: bucket.Total}
}

// BillSummary contains all recurring bills of the user, grouped by how soon they are due.
type BillSummary struct {
	Today        types.Date      `json:"today" example:"2024-10-13"` // Date the bills are classified for
	DueSoonDays  int             `json:"dueSoonDays" example:"3"`    // Width of the due soon window in days
	Overdue      BillBucket      `json:"overdue"`
	DueSoon      BillBucket      `json:"dueSoon"`
	Upcoming     BillBucket      `json:"upcoming"`
	MonthlyTotal decimal.Decimal `json:"monthlyTotal" example:"1420.99"` // Sum of the amounts of all bills
}

func newBillSummary(c *gin.Context, today types.Date, dueSoonDays int, summary models.BillSummary) BillSummary {
	return BillSummary{
		Today:        today,
		DueSoonDays:  dueSoonDays,
		Overdue:      newBillBucket(c, summary.Overdue),
		DueSoon:      newBillBucket(c, summary.DueSoon),
		Upcoming:     newBillBucket(c, summary.Upcoming),
		MonthlyTotal: summary.MonthlyTotal,
	}
}

// BillSummaryQuery is the query for the recurring bill summary.
type BillSummaryQuery struct {
	Today types.Date `form:"today" example:"2024-10-13"` // Date to classify the bills for, defaults to the current date
}

// PaymentEditable is the body of a payment. It is optional.
type PaymentEditable struct {
	Date *time.Time `json:"date" example:"2024-10-15T08:00:00Z"` // Date of the payment, defaults to now
}

// Payment is the result of paying a recurring bill.
type Payment struct {
	Transaction Transaction   `json:"transaction"` // The transaction that was created
	Bill        RecurringBill `json:"bill"`        // The bill with its advanced schedule
}

type RecurringBillResponse struct {
	Data  *RecurringBill `json:"data"`                                                          // Data for the RecurringBill
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BillSummaryResponse struct {
	Data  *BillSummary `json:"data"`                                                                // Summary of the RecurringBills
	Error *string      `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type PaymentResponse struct {
	Data  *Payment `json:"data"`                               // Data for the Payment
	Error *string  `json:"error" example:"insufficient funds"` // The error, if any occurred
}
