package domain

import (
	"time"

	"gorm.io/gorm"
)

// Guide is a long-form how-to entry.
type Guide struct {
	ID           int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title        string         `gorm:"column:title;type:varchar(255)" json:"title"`
	Description  string         `gorm:"column:description;type:text" json:"description"`
	AuthorID     *int64         `gorm:"column:author_id;index" json:"author_id,omitempty"`
	AuthorName   string         `gorm:"column:author_name;type:varchar(255)" json:"author_name"`
	Category     string         `gorm:"column:category;type:varchar(100)" json:"category"`
	TimeEstimate string         `gorm:"column:time_estimate;type:varchar(50)" json:"time_estimate"`
	Views        string         `gorm:"column:views;type:varchar(20);default:'0'" json:"views"`
	Content      string         `gorm:"column:content;type:text" json:"content"`
	Status       ContentStatus  `gorm:"column:status;type:varchar(20)" json:"status"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Guide) TableName() string { return "guides" }

// CreateGuideRequest payload for guide creation
type CreateGuideRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	TimeEstimate string `json:"time_estimate"`
	Content      string `json:"content"`
}

// GuidePatch allow-listed fields for guide edits. Status follows the
// same admin-only rule as PromptPatch.
type GuidePatch struct {
	Title        *string        `json:"title"`
	Description  *string        `json:"description"`
	Category     *string        `json:"category"`
	TimeEstimate *string        `json:"time_estimate"`
	Content      *string        `json:"content"`
	Status       *ContentStatus `json:"status"`
}

// Apply copies the set fields onto the guide.
func (p *GuidePatch) Apply(m *Guide, allowStatus bool) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.TimeEstimate != nil {
		m.TimeEstimate = *p.TimeEstimate
	}
	if p.Content != nil {
		m.Content = *p.Content
	}
	if p.Status != nil && allowStatus {
		m.Status = *p.Status
	}
}
