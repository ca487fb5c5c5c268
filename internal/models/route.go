package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Route is an origin/destination pair with a reference fare. The fare is
// a baseline only; the amount charged per ticket is snapshotted at sale
// time and never recomputed from the route.
type Route struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Origin        string          `gorm:"not null;index:idx_routes_pair" json:"origin"`
	Destination   string          `gorm:"not null;index:idx_routes_pair" json:"destination"`
	ReferenceFare decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"reference_fare"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (route *Route) BeforeCreate(tx *gorm.DB) (err error) {
	if route.ID == uuid.Nil {
		route.ID = uuid.New()
	}
	return
}
