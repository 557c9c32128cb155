package policy

import (
	"testing"

	"github.com/promptdeck/promptdeck-backend/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCanEdit(t *testing.T) {
	owner := &domain.User{ID: 7, Role: domain.RoleUser}
	other := &domain.User{ID: 8, Role: domain.RoleUser}
	moderator := &domain.User{ID: 9, Role: domain.RoleModerator}
	admin := &domain.User{ID: 10, Role: domain.RoleAdmin}

	tests := []struct {
		name     string
		authorID *int64
		actor    *domain.User
		want     bool
	}{
		{"owner edits own content", int64Ptr(7), owner, true},
		{"stranger denied", int64Ptr(7), other, false},
		{"moderator denied on others content", int64Ptr(7), moderator, false},
		{"admin edits anything", int64Ptr(7), admin, true},
		{"anonymous denied", int64Ptr(7), nil, false},
		{"orphaned content only editable by admin", nil, owner, false},
		{"orphaned content admin ok", nil, admin, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanEdit(tt.authorID, tt.actor); got != tt.want {
				t.Errorf("CanEdit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanModerate(t *testing.T) {
	if CanModerate(nil) {
		t.Error("anonymous must not moderate")
	}
	if CanModerate(&domain.User{ID: 1, Role: domain.RoleUser}) {
		t.Error("plain user must not moderate")
	}
	if !CanModerate(&domain.User{ID: 2, Role: domain.RoleModerator}) {
		t.Error("moderator must moderate")
	}
	if !CanModerate(&domain.User{ID: 3, Role: domain.RoleAdmin}) {
		t.Error("admin must moderate")
	}
}

func TestCanManageUsers(t *testing.T) {
	if CanManageUsers(&domain.User{ID: 1, Role: domain.RoleModerator}) {
		t.Error("moderator must not manage users")
	}
	if !CanManageUsers(&domain.User{ID: 2, Role: domain.RoleAdmin}) {
		t.Error("admin must manage users")
	}
	if CanManageUsers(nil) {
		t.Error("anonymous must not manage users")
	}
}
