package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

type UserRole string

const (
	RoleAdministrator UserRole = "administrator"
	RoleSeller        UserRole = "seller"
	RoleSupervisor    UserRole = "supervisor"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdministrator, RoleSeller, RoleSupervisor:
		return true
	}
	return false
}

// User is an operator account for the back office. It carries no
// financial data of its own.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Username     string     `gorm:"unique;not null" json:"username"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Status       UserStatus `gorm:"type:varchar(16);not null;default:'active'" json:"status"`
	Role         UserRole   `gorm:"type:varchar(16);not null" json:"role"`
	StaffID      *uuid.UUID `gorm:"type:uuid" json:"staff_id,omitempty"`
	Staff        *Staff     `json:"staff,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return
}
