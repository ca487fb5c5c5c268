package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Driver is a staff member licensed to operate buses. The relation to
// Staff is 1:1.
type Driver struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StaffID       uuid.UUID `gorm:"type:uuid;unique;not null" json:"staff_id"`
	Staff         Staff     `json:"staff"`
	LicenseNumber string    `gorm:"not null" json:"license_number"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (driver *Driver) BeforeCreate(tx *gorm.DB) (err error) {
	if driver.ID == uuid.Nil {
		driver.ID = uuid.New()
	}
	return
}
