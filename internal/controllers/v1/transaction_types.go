package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Amount              decimal.Decimal        `json:"amount" example:"14.03" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Date                time.Time              `json:"date" example:"1815-12-10T18:43:00.271152Z"`                                                          // Date of the transaction. Time is currently only used for sorting
	Note                string                 `json:"note" example:"Lunch" default:""`                                                                     // A note
	Type                models.TransactionType `json:"type" example:"expense" enums:"income,expense,transfer"`                                              // Type of the transaction, defaults to expense
	Category            string                 `json:"category" example:"Groceries"`                                                                        // Name of the category. Set to an empty string to remove it.
	ContactName         string                 `json:"contactName" example:"Corner Shop"`                                                                   // Name of the contact the money is exchanged with
	ContactAvatar       string                 `json:"contactAvatar" example:"https://example.com/avatars/shop.png"`                                        // Avatar URL of the contact
	RecipientAccountID  uuid.UUID              `json:"recipientAccountId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`                                   // Recipient account for transfers
	IsRecurring         bool                   `json:"isRecurring" example:"false" default:"false"`                                                         // Is the transaction the template of a recurring bill?
	RecurrenceDay       int                    `json:"recurrenceDay" example:"15"`                                                                          // Day of the recurring bill, needed when a bill is created
	RecurrenceFrequency models.Frequency       `json:"recurrenceFrequency" example:"monthly" enums:"weekly,monthly,yearly"`                                 // Frequency of the recurring bill, needed when a bill is created
}

func (editable TransactionEditable) recurrence() models.Recurrence {
	return models.Recurrence{
		Day:       editable.RecurrenceDay,
		Frequency: editable.RecurrenceFrequency,
	}
}

func (editable TransactionEditable) model() (models.Transaction, error) {
	category, err := categoryID(editable.Category)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		Amount:             editable.Amount,
		Date:               editable.Date,
		Note:               editable.Note,
		Type:               editable.Type,
		CategoryID:         &category,
		ContactName:        editable.ContactName,
		ContactAvatar:      editable.ContactAvatar,
		RecipientAccountID: editable.RecipientAccountID,
		IsRecurring:        editable.IsRecurring,
	}, nil
}

// patch returns the changes for all fields set in the request body.
func (editable TransactionEditable) patch(fields []string) (models.TransactionPatch, error) {
	patch := models.TransactionPatch{Recurrence: editable.recurrence()}

	for _, field := range fields {
		switch field {
		case "Amount":
			patch.Amount = &editable.Amount
		case "Date":
			patch.Date = &editable.Date
		case "Note":
			patch.Note = &editable.Note
		case "Type":
			patch.Type = &editable.Type
		case "Category":
			category, err := categoryID(editable.Category)
			if err != nil {
				return models.TransactionPatch{}, err
			}
			patch.CategoryID = &category
		case "ContactName":
			patch.ContactName = &editable.ContactName
		case "ContactAvatar":
			patch.ContactAvatar = &editable.ContactAvatar
		case "RecipientAccountID":
			patch.RecipientAccountID = &editable.RecipientAccountID
		case "IsRecurring":
			patch.IsRecurring = &editable.IsRecurring
		}
	}

	return patch, nil
}

type TransactionLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`             // The transaction itself
	RecurringBill string `json:"recurringBill" example:"https://example.com/api/v1/recurring-bills/0e2a6a5c-1d9a-4b7e-8c58-b3b4d5f1a9c1"` // The recurring bill of the transaction, if any
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	Amount               decimal.Decimal        `json:"amount" example:"14.03"`
	Date                 time.Time              `json:"date" example:"1815-12-10T18:43:00.271152Z"`
	Note                 string                 `json:"note" example:"Lunch"`
	Type                 models.TransactionType `json:"type" example:"expense"`
	CategoryID           *uuid.UUID             `json:"categoryId" example:"2c3d5c1f-3ba6-4a2e-a3a6-b2a9c1b8e12f"`
	Category             string                 `json:"category" example:"Groceries"`
	ContactName          string                 `json:"contactName" example:"Corner Shop"`
	ContactAvatar        string                 `json:"contactAvatar" example:"https://example.com/avatars/shop.png"`
	SenderAccountID      uuid.UUID              `json:"senderAccountId" example:"8e16b456-a719-48ce-9fec-e115cfa7cbcc"`
	RecipientAccountID   uuid.UUID              `json:"recipientAccountId" example:"fa0d4a8e-8e6c-4a3d-9b8c-3b7f44e0a1d2"`
	IsRecurring          bool                   `json:"isRecurring" example:"false"`
	IsRecurringGenerated bool                   `json:"isRecurringGenerated" example:"false"` // Was the transaction created by paying a recurring bill?
	RecurringBillID      *uuid.UUID             `json:"recurringBillId" example:"0e2a6a5c-1d9a-4b7e-8c58-b3b4d5f1a9c1"`
	Balance              models.Polarity        `json:"balance" example:"expense"` // Is the transaction an income or an expense for the own account?
	Links                TransactionLinks       `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction, polarity models.Polarity) Transaction {
	url := apiURL(c)

	transaction := Transaction{
		DefaultModel:         model.DefaultModel,
		Amount:               model.Amount,
		Date:                 model.Date,
		Note:                 model.Note,
		Type:                 model.Type,
		CategoryID:           model.CategoryID,
		Category:             categoryName(model.Category),
		ContactName:          model.ContactName,
		ContactAvatar:        model.ContactAvatar,
		SenderAccountID:      model.SenderAccountID,
		RecipientAccountID:   model.RecipientAccountID,
		IsRecurring:          model.IsRecurring,
		IsRecurringGenerated: model.IsRecurringGenerated,
		RecurringBillID:      model.RecurringBillID,
		Balance:              polarity,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
		},
	}

	if model.RecurringBillID != nil {
		transaction.Links.RecurringBill = fmt.Sprintf("%s/v1/recurring-bills/%s", url, model.RecurringBillID)
	}

	return transaction
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the Transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// TransactionPage is one page of the transactions of the user.
type TransactionPage struct {
	Transactions []Transaction    `json:"transactions"` // Transactions on this page
	Pagination   models.Pagination `json:"pagination"`  // Pagination information
}

type TransactionListResponse struct {
	Data  *TransactionPage `json:"data"`                                                          // The page of Transactions
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
