package domain

// Role is the closed set of user roles.
type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

// Valid reports whether r is a recognized role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// IsPrivileged reports whether the role may moderate content.
// ADMIN and MODERATOR are both privileged; only ADMIN may manage users.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleModerator
}

// IsAdmin reports whether the role is ADMIN.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ContentStatus is the moderation status of Prompts, Guides,
// Agent content and Rulesets.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPending   ContentStatus = "pending"
	StatusPublished ContentStatus = "published"
	StatusRejected  ContentStatus = "rejected"
)

// Valid reports whether s is a recognized content status.
func (s ContentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPublished, StatusRejected:
		return true
	}
	return false
}

// AgentStatus is the operational lifecycle of an Agent.
// Independent from the agent's moderation ContentStatus: a deprecated
// agent can still be published, and vice versa.
type AgentStatus string

const (
	AgentActive     AgentStatus = "active"
	AgentBeta       AgentStatus = "beta"
	AgentInactive   AgentStatus = "inactive"
	AgentDeprecated AgentStatus = "deprecated"
)

// Valid reports whether s is a recognized agent status.
func (s AgentStatus) Valid() bool {
	switch s {
	case AgentActive, AgentBeta, AgentInactive, AgentDeprecated:
		return true
	}
	return false
}

// ProposalStatus is the review status of a community proposal.
type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "pending"
	ProposalApproved ProposalStatus = "approved"
	ProposalRejected ProposalStatus = "rejected"
)

// Valid reports whether s is a recognized proposal status.
func (s ProposalStatus) Valid() bool {
	switch s {
	case ProposalPending, ProposalApproved, ProposalRejected:
		return true
	}
	return false
}

// InitialContentStatus returns the status newly created content starts in.
// Trusted authors (requires_approval=false) bypass the moderation queue.
// Evaluated at creation time only: later flag changes never touch
// existing content.
func InitialContentStatus(author *User) ContentStatus {
	if author != nil && author.RequiresApproval {
		return StatusPending
	}
	return StatusPublished
}
