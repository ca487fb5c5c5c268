package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusStatus string

const (
	BusOperational  BusStatus = "operational"
	BusMaintenance  BusStatus = "maintenance"
	BusOutOfService BusStatus = "out_of_service"
)

func (s BusStatus) Valid() bool {
	switch s {
	case BusOperational, BusMaintenance, BusOutOfService:
		return true
	}
	return false
}

// Bus seat capacity is fixed for the vehicle's lifetime.
type Bus struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Plate        string    `gorm:"unique;not null" json:"plate"`
	Manufacturer string    `gorm:"not null" json:"manufacturer"`
	SeatCapacity int       `gorm:"not null" json:"seat_capacity"`
	Status       BusStatus `gorm:"type:varchar(16);not null;default:'operational'" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (bus *Bus) BeforeCreate(tx *gorm.DB) (err error) {
	if bus.ID == uuid.Nil {
		bus.ID = uuid.New()
	}
	return
}
