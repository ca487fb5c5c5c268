package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpvaldivia/norteexpreso/internal/models"
)

// InventoryStore is the persistence surface the seat inventory needs.
// TripWithBus returns the trip with its bus and route preloaded, or
// ErrNotFound. InsertTicketIfSeatFree must run the availability check
// and the insert inside one transaction and return ErrSeatAlreadySold
// when a sold ticket already occupies the seat; the gorm implementation
// lives in internal/repository.
type InventoryStore interface {
	TripWithBus(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	OccupiedSeats(ctx context.Context, tripID uuid.UUID) ([]int, error)
	SoldTicketCount(ctx context.Context, tripID uuid.UUID) (int64, error)
	InsertTicketIfSeatFree(ctx context.Context, ticket *models.Ticket) error
	CustomerExists(ctx context.Context, customerID uuid.UUID) (bool, error)
	CustomerByNationalID(ctx context.Context, nationalID string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, info CustomerInfo) (*models.Customer, error)
}

// CustomerInfo is the buyer data submitted with a batch sale. The
// customer row is resolved or created by national ID.
type CustomerInfo struct {
	Name         string
	Surname      string
	NationalID   string
	BusinessName *string
	TaxID        *string
}

// BatchSaleResult reports the outcome of a multi-seat sale. Sales are
// best effort: seats issued before a conflict stay sold, and FailedSeat
// carries the first seat that could not be issued.
type BatchSaleResult struct {
	TicketIDs  []uuid.UUID
	Total      decimal.Decimal
	FailedSeat int
}

// SeatInventoryService guarantees that a seat is never double-sold for a
// trip and reports live availability derived from sold tickets.
type SeatInventoryService struct {
	store InventoryStore
}

func NewSeatInventoryService(store InventoryStore) *SeatInventoryService {
	return &SeatInventoryService{store: store}
}

// AvailableSeatCount returns bus capacity minus sold tickets for the
// trip. The result is clamped to [0, capacity].
func (s *SeatInventoryService) AvailableSeatCount(ctx context.Context, tripID uuid.UUID) (int, error) {
	trip, err := s.store.TripWithBus(ctx, tripID)
	if err != nil {
		return 0, err
	}
	sold, err := s.store.SoldTicketCount(ctx, tripID)
	if err != nil {
		return 0, fmt.Errorf("count sold tickets: %w", err)
	}
	available := trip.Bus.SeatCapacity - int(sold)
	if available < 0 {
		available = 0
	}
	return available, nil
}

// OccupiedSeats returns the seat numbers sold for the trip, a snapshot
// at call time.
func (s *SeatInventoryService) OccupiedSeats(ctx context.Context, tripID uuid.UUID) ([]int, error) {
	if _, err := s.store.TripWithBus(ctx, tripID); err != nil {
		return nil, err
	}
	return s.store.OccupiedSeats(ctx, tripID)
}

// SellSeat issues one ticket for (trip, seat) or fails without leaving
// any row behind. The uniqueness check and the insert happen inside a
// single store transaction.
func (s *SeatInventoryService) SellSeat(ctx context.Context, tripID, customerID uuid.UUID, seatNumber int, amount decimal.Decimal, sellingUserID uuid.UUID) (uuid.UUID, error) {
	if !amount.IsPositive() {
		return uuid.Nil, ErrInvalidAmount
	}

	trip, err := s.store.TripWithBus(ctx, tripID)
	if err != nil {
		return uuid.Nil, err
	}
	if seatNumber < 1 || seatNumber > trip.Bus.SeatCapacity {
		return uuid.Nil, fmt.Errorf("seat %d on a %d-seat bus: %w", seatNumber, trip.Bus.SeatCapacity, ErrSeatOutOfRange)
	}

	exists, err := s.store.CustomerExists(ctx, customerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("look up customer: %w", err)
	}
	if !exists {
		return uuid.Nil, fmt.Errorf("customer %s: %w", customerID, ErrNotFound)
	}

	ticket := &models.Ticket{
		TripID:        tripID,
		CustomerID:    customerID,
		SeatNumber:    seatNumber,
		Amount:        amount,
		Status:        models.TicketSold,
		SellingUserID: sellingUserID,
	}
	if err := s.store.InsertTicketIfSeatFree(ctx, ticket); err != nil {
		return uuid.Nil, err
	}
	return ticket.ID, nil
}

// SellSeats resolves or creates the customer by national ID and then
// sells each seat in input order, charging the route's reference fare
// per seat. Each seat commits independently: when seat k conflicts,
// seats 1..k-1 stay sold and the result reports the failing seat
// alongside the error.
func (s *SeatInventoryService) SellSeats(ctx context.Context, tripID uuid.UUID, info CustomerInfo, seatNumbers []int, sellingUserID uuid.UUID) (*BatchSaleResult, error) {
	trip, err := s.store.TripWithBus(ctx, tripID)
	if err != nil {
		return nil, err
	}
	amount := trip.Route.ReferenceFare

	customer, err := s.store.CustomerByNationalID(ctx, info.NationalID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("look up customer by national id: %w", err)
		}
		customer, err = s.store.CreateCustomer(ctx, info)
		if err != nil {
			return nil, fmt.Errorf("create customer: %w", err)
		}
	}

	result := &BatchSaleResult{Total: decimal.Zero}
	for _, seat := range seatNumbers {
		id, err := s.SellSeat(ctx, tripID, customer.ID, seat, amount, sellingUserID)
		if err != nil {
			result.FailedSeat = seat
			return result, err
		}
		result.TicketIDs = append(result.TicketIDs, id)
		result.Total = result.Total.Add(amount)
	}
	return result, nil
}
