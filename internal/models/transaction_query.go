package models

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// TransactionSort is the order of a transaction listing.
type TransactionSort string

const (
	SortLatest  TransactionSort = "latest"
	SortOldest  TransactionSort = "oldest"
	SortAToZ    TransactionSort = "a_to_z"
	SortZToA    TransactionSort = "z_to_a"
	SortHighest TransactionSort = "highest"
	SortLowest  TransactionSort = "lowest"
)

var sortOrders = map[TransactionSort]string{
	SortLatest:  "datetime(transactions.date) DESC",
	SortOldest:  "datetime(transactions.date) ASC",
	SortAToZ:    "categories.name ASC",
	SortZToA:    "categories.name DESC",
	SortHighest: "CAST(transactions.amount AS REAL) DESC",
	SortLowest:  "CAST(transactions.amount AS REAL) ASC",
}

// TransactionQuery selects a page of the transactions of a user.
type TransactionQuery struct {
	UserID   uuid.UUID
	Page     int
	Limit    int
	Category string // Category name, "all" or empty for all categories
	Search   string // Substring of the sender, recipient or contact name
	Sort     TransactionSort
}

// Normalize coerces out of range pages and limits to the defaults.
//
// Pages are capped so that the offset of the page fits into an int.
func (q TransactionQuery) Normalize() TransactionQuery {
	if q.Limit < 1 {
		q.Limit = DefaultPageLimit
	} else if q.Limit > MaxPageLimit {
		q.Limit = MaxPageLimit
	}

	if q.Page < 1 {
		q.Page = 1
	} else if maxPage := math.MaxInt/q.Limit + 1; q.Page > maxPage {
		q.Page = maxPage
	}

	return q
}

// offset returns the number of transactions before the page.
func (q TransactionQuery) offset() int {
	return (q.Page - 1) * q.Limit
}

// AnnotatedTransaction is a transaction with its polarity for the own account.
type AnnotatedTransaction struct {
	Transaction
	Balance Polarity `json:"balance" example:"expense"`
}

// Pagination describes the page of a listing.
type Pagination struct {
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"10"`
	Total      int64 `json:"total" example:"42"`
	TotalPages int64 `json:"totalPages" example:"5"`
}

// TransactionPage is one page of transactions.
type TransactionPage struct {
	Transactions []AnnotatedTransaction `json:"transactions"`
	Pagination   Pagination             `json:"pagination"`
}

// Annotate adds the polarity for the account to the transactions.
func Annotate(accountID uuid.UUID, transactions []Transaction) ([]AnnotatedTransaction, error) {
	annotated := make([]AnnotatedTransaction, 0, len(transactions))

	for _, t := range transactions {
		p, err := PerspectiveOf(accountID, t)
		if err != nil {
			return nil, err
		}

		annotated = append(annotated, AnnotatedTransaction{Transaction: t, Balance: p.Polarity})
	}

	return annotated, nil
}

// QueryTransactions returns one page of the transactions the own account of
// the user participates in.
//
// Every order ends with the ID, so pages never overlap.
func QueryTransactions(db *gorm.DB, query TransactionQuery) (TransactionPage, error) {
	query = query.Normalize()

	account, err := OwnAccount(db, query.UserID)
	if err != nil {
		return TransactionPage{}, err
	}

	filter := func(tx *gorm.DB) *gorm.DB {
		tx = tx.
			Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
			Joins("JOIN accounts sender ON sender.id = transactions.sender_account_id").
			Joins("JOIN accounts recipient ON recipient.id = transactions.recipient_account_id").
			Where("transactions.user_id = ?", query.UserID).
			Where("transactions.sender_account_id = ? OR transactions.recipient_account_id = ?", account.ID, account.ID)

		category := FoldKey(query.Category)
		if category != "" && category != "all" {
			tx = tx.Where("categories.key = ?", category)
		}

		search := strings.ToLower(strings.TrimSpace(query.Search))
		if search != "" {
			pattern := "%" + escapeLike(search) + "%"
			tx = tx.Where(
				"LOWER(sender.name) LIKE ? ESCAPE '\\' OR LOWER(recipient.name) LIKE ? ESCAPE '\\' OR LOWER(transactions.contact_name) LIKE ? ESCAPE '\\'",
				pattern, pattern, pattern,
			)
		}

		return tx
	}

	var total int64
	err = db.Model(&Transaction{}).Scopes(filter).Count(&total).Error
	if err != nil {
		return TransactionPage{}, err
	}

	order, ok := sortOrders[query.Sort]
	if !ok {
		order = "transactions.created_at DESC"
	}

	transactions := []Transaction{}
	if int64(query.offset()) < total {
		err = db.
			Scopes(filter).
			Preload("Category").
			Order(order).
			Order("transactions.id ASC").
			Offset(query.offset()).
			Limit(query.Limit).
			Find(&transactions).Error
		if err != nil {
			return TransactionPage{}, err
		}
	}

	annotated, err := Annotate(account.ID, transactions)
	if err != nil {
		return TransactionPage{}, err
	}

	limit := int64(query.Limit)
	return TransactionPage{
		Transactions: annotated,
		Pagination: Pagination{
			Page:       query.Page,
			Limit:      query.Limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
		},
	}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
