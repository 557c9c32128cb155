package domain

import (
	"time"

	"gorm.io/gorm"
)

// Agent is a catalog entry for an automation agent. It carries two
// independent state machines: Status (operational lifecycle) and
// ContentStatus (moderation). The two are never merged.
type Agent struct {
	ID            int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Number        string         `gorm:"column:number;type:varchar(10)" json:"number"`
	Title         string         `gorm:"column:title;type:varchar(255)" json:"title"`
	Description   string         `gorm:"column:description;type:text" json:"description"`
	AuthorID      *int64         `gorm:"column:author_id;index" json:"author_id,omitempty"`
	Status        AgentStatus    `gorm:"column:status;type:varchar(20)" json:"status"`
	ContentStatus ContentStatus  `gorm:"column:content_status;type:varchar(20)" json:"content_status"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Agent) TableName() string { return "agents" }

// CreateAgentRequest payload for agent creation
type CreateAgentRequest struct {
	Title       string      `json:"title" binding:"required"`
	Description string      `json:"description"`
	Number      string      `json:"number"`
	Status      AgentStatus `json:"status"`
}

// AgentPatch allow-listed fields for agent edits. ContentStatus is the
// moderated axis and follows the admin-only rule; the operational
// Status may be edited by anyone allowed to edit the agent at all.
type AgentPatch struct {
	Title         *string        `json:"title"`
	Description   *string        `json:"description"`
	Number        *string        `json:"number"`
	Status        *AgentStatus   `json:"status"`
	ContentStatus *ContentStatus `json:"content_status"`
}

// Apply copies the set fields onto the agent.
func (p *AgentPatch) Apply(m *Agent, allowStatus bool) {
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Number != nil {
		m.Number = *p.Number
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.ContentStatus != nil && allowStatus {
		m.ContentStatus = *p.ContentStatus
	}
}
