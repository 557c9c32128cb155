package domain

import (
	"time"

	"gorm.io/gorm"
)

// Ruleset is a language-specific rules file entry.
type Ruleset struct {
	ID            int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title         string         `gorm:"column:title;type:varchar(255)" json:"title"`
	Description   string         `gorm:"column:description;type:text" json:"description"`
	Language      string         `gorm:"column:language;type:varchar(100)" json:"language"`
	AuthorID      *int64         `gorm:"column:author_id;index" json:"author_id,omitempty"`
	Content       string         `gorm:"column:content;type:text" json:"content"`
	ContentStatus ContentStatus  `gorm:"column:content_status;type:varchar(20)" json:"content_status"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Ruleset) TableName() string { return "rulesets" }

// CreateRulesetRequest payload for ruleset creation
type CreateRulesetRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Content     string `json:"content"`
}

// RulesetPatch allow-listed fields for ruleset edits.
type RulesetPatch struct {
	Title         *string        `json:"title"`
	Description   *string        `json:"description"`
	Language      *string        `json:"language"`
	Content       *string        `json:"content"`
	ContentStatus *ContentStatus `json:"content_status"`
}

// Apply copies the set fields onto the ruleset.
func (p *RulesetPatch) Apply(m *Ruleset, allowStatus bool) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Language != nil {
		m.Language = *p.Language
	}
	if p.Content != nil {
		m.Content = *p.Content
	}
	if p.ContentStatus != nil && allowStatus {
		m.ContentStatus = *p.ContentStatus
	}
}
