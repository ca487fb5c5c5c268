package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TripStatus string

const (
	TripScheduled  TripStatus = "scheduled"
	TripInProgress TripStatus = "in_progress"
	TripCompleted  TripStatus = "completed"
	TripCancelled  TripStatus = "cancelled"
)

func (s TripStatus) Valid() bool {
	switch s {
	case TripScheduled, TripInProgress, TripCompleted, TripCancelled:
		return true
	}
	return false
}

// Trip is one scheduled run of a bus over a route with a driver.
// EstimatedArrival is never before Departure.
type Trip struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Departure        time.Time  `gorm:"not null;index" json:"departure"`
	EstimatedArrival time.Time  `gorm:"not null" json:"estimated_arrival"`
	Status           TripStatus `gorm:"type:varchar(16);not null;default:'scheduled'" json:"status"`
	RouteID          uuid.UUID  `gorm:"type:uuid;not null" json:"route_id"`
	Route            Route      `json:"route"`
	BusID            uuid.UUID  `gorm:"type:uuid;not null" json:"bus_id"`
	Bus              Bus        `json:"bus"`
	DriverID         uuid.UUID  `gorm:"type:uuid;not null" json:"driver_id"`
	Driver           Driver     `json:"driver"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (trip *Trip) BeforeCreate(tx *gorm.DB) (err error) {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	return
}
