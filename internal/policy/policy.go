// Package policy holds the pure authorization decision functions shared
// by every entity service. Callers translate a negative decision into
// common.ErrForbidden (or common.ErrNotFound where the route hides the
// resource entirely).
package policy

import "github.com/promptdeck/promptdeck-backend/internal/domain"

// CanEdit reports whether the actor may edit content fields.
// Only the owner or an ADMIN qualifies. MODERATOR is deliberately not
// enough: moderators approve or reject content but never rewrite it.
func CanEdit(authorID *int64, actor *domain.User) bool {
	if actor == nil {
		return false
	}
	if actor.Role.IsAdmin() {
		return true
	}
	return authorID != nil && *authorID == actor.ID
}

// CanModerate reports whether the actor may transition content status
// and see moderation queues.
func CanModerate(actor *domain.User) bool {
	return actor != nil && actor.Role.IsPrivileged()
}

// CanManageUsers reports whether the actor may create, modify or delete
// user accounts.
func CanManageUsers(actor *domain.User) bool {
	return actor != nil && actor.Role.IsAdmin()
}
