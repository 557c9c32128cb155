package domain

import (
	"time"

	"gorm.io/gorm"
)

// User represents a platform account. Role and the moderation flags are
// managed by admins only.
type User struct {
	ID               int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email            string         `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	PasswordHash     string         `gorm:"column:password_hash;type:varchar(255)" json:"-"`
	Name             string         `gorm:"column:name;type:varchar(255)" json:"name"`
	Role             Role           `gorm:"column:role;type:varchar(20)" json:"role"`
	RequiresApproval bool           `gorm:"column:requires_approval" json:"requires_approval"`
	IsActive         bool           `gorm:"column:is_active" json:"is_active"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (User) TableName() string { return "users" }

// CreateUserRequest payload for admin user creation
type CreateUserRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	Role             Role   `json:"role"`
	RequiresApproval *bool  `json:"requires_approval"`
}

// UserPatch allow-listed fields an admin may change on a user.
// Nil fields are left untouched.
type UserPatch struct {
	Name             *string `json:"name"`
	Role             *Role   `json:"role"`
	RequiresApproval *bool   `json:"requires_approval"`
	IsActive         *bool   `json:"is_active"`
}

// Apply copies the set fields onto the user.
func (p *UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.RequiresApproval != nil {
		u.RequiresApproval = *p.RequiresApproval
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
}
