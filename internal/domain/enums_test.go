package domain

import "testing"

func TestRoleValid(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleUser, true},
		{RoleModerator, true},
		{RoleAdmin, true},
		{Role("user"), false},
		{Role("SUPERADMIN"), false},
		{Role(""), false},
	}
	for _, tt := range tests {
		if got := tt.role.Valid(); got != tt.want {
			t.Errorf("Role(%q).Valid() = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestRolePrivileges(t *testing.T) {
	if RoleUser.IsPrivileged() {
		t.Error("USER must not be privileged")
	}
	if !RoleModerator.IsPrivileged() {
		t.Error("MODERATOR must be privileged")
	}
	if !RoleAdmin.IsPrivileged() {
		t.Error("ADMIN must be privileged")
	}
	if RoleModerator.IsAdmin() {
		t.Error("MODERATOR must not be admin")
	}
	if !RoleAdmin.IsAdmin() {
		t.Error("ADMIN must be admin")
	}
}

func TestContentStatusValid(t *testing.T) {
	for _, s := range []ContentStatus{StatusDraft, StatusPending, StatusPublished, StatusRejected} {
		if !s.Valid() {
			t.Errorf("ContentStatus(%q) should be valid", s)
		}
	}
	for _, s := range []ContentStatus{"", "PUBLISHED", "archived", "deleted"} {
		if ContentStatus(s).Valid() {
			t.Errorf("ContentStatus(%q) should be invalid", s)
		}
	}
}

func TestAgentStatusValid(t *testing.T) {
	for _, s := range []AgentStatus{AgentActive, AgentBeta, AgentInactive, AgentDeprecated} {
		if !s.Valid() {
			t.Errorf("AgentStatus(%q) should be valid", s)
		}
	}
	if AgentStatus("published").Valid() {
		t.Error("moderation values must not pass as operational status")
	}
}

func TestProposalStatusValid(t *testing.T) {
	for _, s := range []ProposalStatus{ProposalPending, ProposalApproved, ProposalRejected} {
		if !s.Valid() {
			t.Errorf("ProposalStatus(%q) should be valid", s)
		}
	}
	if ProposalStatus("draft").Valid() {
		t.Error("proposals have no draft state")
	}
}

func TestInitialContentStatus(t *testing.T) {
	moderated := &User{ID: 1, Role: RoleUser, RequiresApproval: true}
	trusted := &User{ID: 2, Role: RoleUser, RequiresApproval: false}

	if got := InitialContentStatus(moderated); got != StatusPending {
		t.Errorf("moderated author: got %q, want %q", got, StatusPending)
	}
	if got := InitialContentStatus(trusted); got != StatusPublished {
		t.Errorf("trusted author: got %q, want %q", got, StatusPublished)
	}

	// Admins are only trusted when their flag says so
	flaggedAdmin := &User{ID: 3, Role: RoleAdmin, RequiresApproval: true}
	if got := InitialContentStatus(flaggedAdmin); got != StatusPending {
		t.Errorf("flagged admin: got %q, want %q", got, StatusPending)
	}
}
