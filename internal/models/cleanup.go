package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CleanupUserData deletes all resources of the user. Categories and themes
// are shared between users and are kept.
func CleanupUserData(db *gorm.DB, userID uuid.UUID) error {
	// Transactions reference bills and accounts, bills reference accounts.
	// The order of deletion satisfies the foreign keys.
	models := []any{
		&Transaction{},
		&Budget{},
		&MatchRule{},
		&RecurringBill{},
		&Account{},
	}

	return unitOfWork(db, func(tx *gorm.DB) error {
		for _, model := range models {
			err := tx.Where("user_id = ?", userID).Delete(model).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
