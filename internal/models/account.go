package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account is either the own account of a user or an external account
// representing a contact the user exchanges money with.
//
// Every user has exactly one own account. It is the perspective from
// which all transactions of the user are classified.
type Account struct {
	DefaultModel
	UserID         uuid.UUID       `json:"userId" gorm:"uniqueIndex:account_user_external_name;not null"`
	External       bool            `json:"external" gorm:"uniqueIndex:account_user_external_name"`
	Name           string          `json:"name" gorm:"uniqueIndex:account_user_external_name"`
	Avatar         string          `json:"avatar"`
	InitialBalance decimal.Decimal `json:"initialBalance" gorm:"type:DECIMAL(20,8)"`
}

// BeforeSave trims whitespace from all strings. External accounts never
// carry an initial balance.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Avatar = strings.TrimSpace(a.Avatar)

	if a.External {
		a.InitialBalance = decimal.Zero
	}

	return nil
}

// BeforeCreate verifies that a user does not get a second own account.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if err := a.DefaultModel.BeforeCreate(tx); err != nil {
		return err
	}

	if a.External {
		return nil
	}

	var count int64
	err := tx.Model(&Account{}).Where("user_id = ? AND external = ?", a.UserID, false).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrOwnAccountExists
	}

	return nil
}

// OwnAccount returns the own account of the user.
func OwnAccount(db *gorm.DB, userID uuid.UUID) (Account, error) {
	var account Account
	err := db.Where("user_id = ? AND external = ?", userID, false).First(&account).Error
	return account, err
}

// ContactAccount returns the external account of the user for the contact name,
// creating it if it does not exist yet. A non-empty avatar replaces the stored one.
func ContactAccount(db *gorm.DB, userID uuid.UUID, name, avatar string) (Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Account{}, ErrContactNameEmpty
	}

	var account Account
	err := db.
		Where("user_id = ? AND external = ? AND name = ?", userID, true, name).
		Attrs(Account{UserID: userID, External: true, Name: name, Avatar: avatar}).
		FirstOrCreate(&account).Error
	if err != nil {
		return Account{}, err
	}

	avatar = strings.TrimSpace(avatar)
	if avatar != "" && avatar != account.Avatar {
		err = db.Model(&account).Update("avatar", avatar).Error
	}

	return account, err
}

// Transactions returns all transactions for this account, the latest first.
func (a Account) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Where("sender_account_id = ? OR recipient_account_id = ?", a.ID, a.ID).
		Order("datetime(date) DESC, created_at DESC").
		Find(&transactions).Error
	return transactions, err
}

// Balance derives the balance of the account from its transactions.
func (a Account) Balance(db *gorm.DB) (Balance, []Transaction, error) {
	transactions, err := a.Transactions(db)
	if err != nil {
		return Balance{}, nil, err
	}

	balance, err := ComputeBalance(a.ID, a.InitialBalance, transactions)
	return balance, transactions, err
}
