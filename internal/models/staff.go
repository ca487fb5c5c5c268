package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Staff struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PersonID  uuid.UUID `gorm:"type:uuid;unique;not null" json:"person_id"`
	Person    Person    `json:"person"`
	Email     string    `gorm:"not null" json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (staff *Staff) BeforeCreate(tx *gorm.DB) (err error) {
	if staff.ID == uuid.Nil {
		staff.ID = uuid.New()
	}
	return
}
