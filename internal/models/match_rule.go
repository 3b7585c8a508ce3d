package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule assigns a category to new transactions whose contact name
// matches the pattern.
type MatchRule struct {
	DefaultModel
	UserID     uuid.UUID `json:"userId" gorm:"index;not null"`
	Priority   uint      `json:"priority" example:"3"`      // Rules with lower priority values are checked first
	Match      string    `json:"match" example:"*netflix*"` // Glob pattern, * matches any number of characters
	CategoryID uuid.UUID `json:"categoryId"`
	Category   Category  `json:"-"`
}

func (m *MatchRule) BeforeSave(_ *gorm.DB) error {
	m.Match = strings.TrimSpace(m.Match)
	if m.Match == "" {
		return ErrMatchRuleEmpty
	}

	return nil
}

// MatchCategory returns the category of the first rule of the user matching
// the contact name. Matching ignores case. The result is nil if no rule matches.
func MatchCategory(db *gorm.DB, userID uuid.UUID, contactName string) (*uuid.UUID, error) {
	contactName = strings.ToLower(strings.TrimSpace(contactName))
	if contactName == "" {
		return nil, nil
	}

	var rules []MatchRule
	err := db.Where(&MatchRule{UserID: userID}).Order("priority ASC, created_at ASC").Find(&rules).Error
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if glob.Glob(strings.ToLower(rule.Match), contactName) {
			id := rule.CategoryID
			return &id, nil
		}
	}

	return nil, nil
}
