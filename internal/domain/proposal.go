package domain

import (
	"time"

	"gorm.io/gorm"
)

// Proposal is an anonymous community submission. It has no author and
// no edit operation; privileged reviewers approve or reject it.
type Proposal struct {
	ID          int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Type        string         `gorm:"column:type;type:varchar(50)" json:"type"`
	Title       string         `gorm:"column:title;type:varchar(255)" json:"title"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	Content     string         `gorm:"column:content;type:text" json:"content"`
	Email       string         `gorm:"column:email;type:varchar(255)" json:"email"`
	Tags        StringList     `gorm:"column:tags;type:json" json:"tags"`
	Status      ProposalStatus `gorm:"column:status;type:varchar(20)" json:"status"`
	ReviewerID  *int64         `gorm:"column:reviewer_id" json:"reviewer_id,omitempty"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Proposal) TableName() string { return "proposals" }

// CreateProposalRequest payload for proposal submission
type CreateProposalRequest struct {
	Type        string     `json:"type" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Email       string     `json:"email" binding:"required,email"`
	Tags        StringList `json:"tags"`
}
