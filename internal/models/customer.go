package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer extends a Person with optional business registration data
// for bookings invoiced to a company rather than a natural person.
type Customer struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PersonID     uuid.UUID `gorm:"type:uuid;unique;not null" json:"person_id"`
	Person       Person    `json:"person"`
	BusinessName *string   `json:"business_name,omitempty"`
	TaxID        *string   `gorm:"column:tax_id" json:"tax_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (customer *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	return
}
