package user

import (
	"strings"
	"time"

	"github.com/gofrs/uuid"
)

type User struct {
	ID        uuid.UUID  `gorm:"primaryKey;type:char(36)"`
	Email     string     `gorm:"unique;not null"`
	Password  string     `gorm:"not null"`
	Roles     string     `gorm:"not null"` // comma separated, e.g. "Reader,Writer"
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`
}

// RoleList splits the stored roles column into individual role names.
func (u *User) RoleList() []string {
	if u.Roles == "" {
		return nil
	}
	parts := strings.Split(u.Roles, ",")
	roles := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			roles = append(roles, p)
		}
	}
	return roles
}

// JoinRoles is the inverse of RoleList, used when persisting a user.
func JoinRoles(roles []string) string {
	return strings.Join(roles, ",")
}
