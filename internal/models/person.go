package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Person struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	Surname    string    `gorm:"not null" json:"surname"`
	NationalID string    `gorm:"column:national_id;unique;not null" json:"national_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (person *Person) BeforeCreate(tx *gorm.DB) (err error) {
	if person.ID == uuid.Nil {
		person.ID = uuid.New()
	}
	return
}
