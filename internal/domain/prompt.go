package domain

import (
	"time"

	"gorm.io/gorm"
)

// Prompt is a curated prompt entry. AuthorID is stamped at creation and
// never reassigned.
type Prompt struct {
	ID          int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"column:title;type:varchar(255)" json:"title"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	AuthorID    *int64         `gorm:"column:author_id;index" json:"author_id,omitempty"`
	AuthorName  string         `gorm:"column:author_name;type:varchar(255)" json:"author_name"`
	Copies      string         `gorm:"column:copies;type:varchar(20);default:'0'" json:"copies"`
	Tags        StringList     `gorm:"column:tags;type:json" json:"tags"`
	Tech        string         `gorm:"column:tech;type:varchar(255)" json:"tech"`
	Content     string         `gorm:"column:content;type:text" json:"content"`
	Status      ContentStatus  `gorm:"column:status;type:varchar(20)" json:"status"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Prompt) TableName() string { return "prompts" }

// CreatePromptRequest payload for prompt creation
type CreatePromptRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Tags        StringList `json:"tags"`
	Tech        string     `json:"tech"`
	Content     string     `json:"content"`
}

// PromptPatch allow-listed fields for prompt edits. Status is applied
// only when allowStatus is set (admin editors); for everyone else the
// field is dropped and the rest of the edit proceeds.
type PromptPatch struct {
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Tags        *StringList    `json:"tags"`
	Tech        *string        `json:"tech"`
	Content     *string        `json:"content"`
	Status      *ContentStatus `json:"status"`
}

// Apply copies the set fields onto the prompt.
func (p *PromptPatch) Apply(m *Prompt, allowStatus bool) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Tags != nil {
		m.Tags = *p.Tags
	}
	if p.Tech != nil {
		m.Tech = *p.Tech
	}
	if p.Content != nil {
		m.Content = *p.Content
	}
	if p.Status != nil && allowStatus {
		m.Status = *p.Status
	}
}
