package auth

import (
	"time"
)

// UserAccount is a login identity. It is not an employee record.
type UserAccount struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);uniqueIndex:uq_user_account_email;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Enabled      bool   `gorm:"not null"`
	Roles        []Role `gorm:"many2many:user_roles;"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserAccount) TableName() string { return "user_accounts" }

type Role struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(50);uniqueIndex:uq_role_name;not null"`
}

func (Role) TableName() string { return "roles" }

// RoleNames returns the role names in storage order.
func (u UserAccount) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
