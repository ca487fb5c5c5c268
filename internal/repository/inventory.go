package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jpvaldivia/norteexpreso/internal/models"
	"github.com/jpvaldivia/norteexpreso/internal/services"
)

func (s *GormStore) TripWithBus(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	var trip models.Trip
	err := s.db.WithContext(ctx).
		Preload("Bus").
		Preload("Route").
		First(&trip, "id = ?", tripID).Error
	if err != nil {
		return nil, asStoreErr(err)
	}
	return &trip, nil
}

func (s *GormStore) OccupiedSeats(ctx context.Context, tripID uuid.UUID) ([]int, error) {
	var seats []int
	err := s.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where("trip_id = ? AND status = ?", tripID, models.TicketSold).
		Order("seat_number").
		Pluck("seat_number", &seats).Error
	if err != nil {
		return nil, fmt.Errorf("occupied seats: %w", err)
	}
	return seats, nil
}

func (s *GormStore) SoldTicketCount(ctx context.Context, tripID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Where("trip_id = ? AND status = ?", tripID, models.TicketSold).
		Count(&count).Error
	return count, err
}

// InsertTicketIfSeatFree issues the ticket inside one transaction. The
// trip row is locked with SELECT ... FOR UPDATE so concurrent sellers
// for the same trip serialize before the check-then-insert; the partial
// unique index on (trip_id, seat_number) WHERE status = 'sold' backstops
// the invariant at the schema level.
func (s *GormStore) InsertTicketIfSeatFree(ctx context.Context, ticket *models.Ticket) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trip models.Trip
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&trip, "id = ?", ticket.TripID).Error
		if err != nil {
			return asStoreErr(err)
		}

		var taken int64
		err = tx.Model(&models.Ticket{}).
			Where("trip_id = ? AND seat_number = ? AND status = ?",
				ticket.TripID, ticket.SeatNumber, models.TicketSold).
			Count(&taken).Error
		if err != nil {
			return fmt.Errorf("check seat: %w", err)
		}
		if taken > 0 {
			return services.ErrSeatAlreadySold
		}

		if err := tx.Create(ticket).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return services.ErrSeatAlreadySold
			}
			return fmt.Errorf("insert ticket: %w", err)
		}
		return nil
	})
}

func (s *GormStore) CustomerExists(ctx context.Context, customerID uuid.UUID) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", customerID).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) CustomerByNationalID(ctx context.Context, nationalID string) (*models.Customer, error) {
	var customer models.Customer
	err := s.db.WithContext(ctx).
		Joins("JOIN people ON people.id = customers.person_id").
		Where("people.national_id = ?", nationalID).
		Preload("Person").
		First(&customer).Error
	if err != nil {
		return nil, asStoreErr(err)
	}
	return &customer, nil
}

// CreateCustomer inserts the Person and Customer rows atomically.
func (s *GormStore) CreateCustomer(ctx context.Context, info services.CustomerInfo) (*models.Customer, error) {
	customer := &models.Customer{
		BusinessName: info.BusinessName,
		TaxID:        info.TaxID,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		person := models.Person{
			Name:       info.Name,
			Surname:    info.Surname,
			NationalID: info.NationalID,
		}
		if err := tx.Create(&person).Error; err != nil {
			return fmt.Errorf("insert person: %w", err)
		}
		customer.PersonID = person.ID
		customer.Person = person
		return tx.Create(customer).Error
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}
