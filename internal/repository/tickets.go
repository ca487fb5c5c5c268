package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jpvaldivia/norteexpreso/internal/models"
)

// ListTickets filters by issuance date range (inclusive, UTC days) and
// status, newest first.
func (s *GormStore) ListTickets(ctx context.Context, from, to *time.Time, status models.TicketStatus) ([]models.Ticket, error) {
	q := s.db.WithContext(ctx).Model(&models.Ticket{})
	if from != nil && to != nil {
		start := from.Truncate(24 * time.Hour)
		end := to.Truncate(24 * time.Hour).Add(24 * time.Hour)
		q = q.Where("issued_at >= ? AND issued_at < ?", start, end)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var tickets []models.Ticket
	err := q.
		Preload("Trip.Route").
		Preload("Trip.Bus").
		Preload("Customer.Person").
		Order("issued_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}

func (s *GormStore) TicketByID(ctx context.Context, id uuid.UUID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.db.WithContext(ctx).
		Preload("Trip.Route").
		Preload("Customer.Person").
		First(&ticket, "id = ?", id).Error
	if err != nil {
		return nil, asStoreErr(err)
	}
	return &ticket, nil
}

func (s *GormStore) MarkBoarded(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where("id = ?", id).
		Update("boarded", true).Error
}
