package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TicketStatus string

const (
	TicketSold      TicketStatus = "sold"
	TicketCancelled TicketStatus = "cancelled"
	TicketNoShow    TicketStatus = "no_show"
)

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketSold, TicketCancelled, TicketNoShow:
		return true
	}
	return false
}

// Ticket is one sold seat on a trip. For any trip at most one ticket with
// status sold may exist per seat number; a partial unique index on
// (trip_id, seat_number) WHERE status = 'sold' enforces this at the
// schema level (created in config.InitDatabase).
//
// Amount is a snapshot taken at issuance; later route fare edits must not
// alter issued tickets.
type Ticket struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	IssuedAt      time.Time       `gorm:"not null;index" json:"issued_at"`
	TripID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"trip_id"`
	Trip          Trip            `json:"trip"`
	CustomerID    uuid.UUID       `gorm:"type:uuid;not null" json:"customer_id"`
	Customer      Customer        `json:"customer"`
	SeatNumber    int             `gorm:"not null" json:"seat_number"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status        TicketStatus    `gorm:"type:varchar(16);not null;default:'sold';index" json:"status"`
	SellingUserID uuid.UUID       `gorm:"type:uuid;not null" json:"selling_user_id"`
	SellingUser   User            `json:"-"`
	Boarded       bool            `gorm:"not null;default:false" json:"boarded"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (ticket *Ticket) BeforeCreate(tx *gorm.DB) (err error) {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	if ticket.IssuedAt.IsZero() {
		ticket.IssuedAt = time.Now().UTC()
	}
	return
}
