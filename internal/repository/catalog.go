package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jpvaldivia/norteexpreso/internal/models"
	"github.com/jpvaldivia/norteexpreso/internal/services"
)

// TripWithAvailability decorates a trip with its live free-seat count,
// derived from sold tickets at query time.
type TripWithAvailability struct {
	models.Trip
	AvailableSeats int `json:"available_seats"`
}

func (s *GormStore) ListRoutes(ctx context.Context) ([]models.Route, error) {
	var routes []models.Route
	err := s.db.WithContext(ctx).
		Order("origin, destination").
		Find(&routes).Error
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	return routes, nil
}

func (s *GormStore) CreateRoute(ctx context.Context, route *models.Route) error {
	return s.db.WithContext(ctx).Create(route).Error
}

func (s *GormStore) ListBuses(ctx context.Context) ([]models.Bus, error) {
	var buses []models.Bus
	err := s.db.WithContext(ctx).
		Order("plate").
		Find(&buses).Error
	if err != nil {
		return nil, fmt.Errorf("list buses: %w", err)
	}
	return buses, nil
}

func (s *GormStore) CreateBus(ctx context.Context, bus *models.Bus) error {
	return s.db.WithContext(ctx).Create(bus).Error
}

// SearchTrips returns scheduled trips for the route pair departing on
// the given UTC day, each with its free-seat count.
func (s *GormStore) SearchTrips(ctx context.Context, origin, destination string, day time.Time) ([]TripWithAvailability, error) {
	start := day.Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	var trips []models.Trip
	err := s.db.WithContext(ctx).
		Joins("JOIN routes ON routes.id = trips.route_id").
		Where("routes.origin = ? AND routes.destination = ?", origin, destination).
		Where("trips.departure >= ? AND trips.departure < ?", start, end).
		Where("trips.status = ?", models.TripScheduled).
		Preload("Route").
		Preload("Bus").
		Preload("Driver.Staff.Person").
		Order("trips.departure").
		Find(&trips).Error
	if err != nil {
		return nil, fmt.Errorf("search trips: %w", err)
	}
	return s.withAvailability(ctx, trips)
}

// ListTrips is the admin listing with optional departure-day and status
// filters.
func (s *GormStore) ListTrips(ctx context.Context, day *time.Time, status models.TripStatus) ([]TripWithAvailability, error) {
	q := s.db.WithContext(ctx).Model(&models.Trip{})
	if day != nil {
		start := day.Truncate(24 * time.Hour)
		q = q.Where("departure >= ? AND departure < ?", start, start.Add(24*time.Hour))
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var trips []models.Trip
	err := q.
		Preload("Route").
		Preload("Bus").
		Preload("Driver.Staff.Person").
		Order("departure").
		Find(&trips).Error
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return s.withAvailability(ctx, trips)
}

// CreateTrip schedules a trip after verifying the referenced route, bus
// and driver exist.
func (s *GormStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ref := range []struct {
			model interface{}
			id    uuid.UUID
			what  string
		}{
			{&models.Route{}, trip.RouteID, "route"},
			{&models.Bus{}, trip.BusID, "bus"},
			{&models.Driver{}, trip.DriverID, "driver"},
		} {
			var count int64
			if err := tx.Model(ref.model).Where("id = ?", ref.id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("%s %s: %w", ref.what, ref.id, services.ErrNotFound)
			}
		}
		return tx.Create(trip).Error
	})
}

func (s *GormStore) withAvailability(ctx context.Context, trips []models.Trip) ([]TripWithAvailability, error) {
	out := make([]TripWithAvailability, 0, len(trips))
	if len(trips) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, len(trips))
	for i, t := range trips {
		ids[i] = t.ID
	}

	var counts []struct {
		TripID uuid.UUID
		Sold   int
	}
	err := s.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Select("trip_id, COUNT(*) AS sold").
		Where("trip_id IN ? AND status = ?", ids, models.TicketSold).
		Group("trip_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("count sold seats: %w", err)
	}

	soldByTrip := make(map[uuid.UUID]int, len(counts))
	for _, c := range counts {
		soldByTrip[c.TripID] = c.Sold
	}

	for _, t := range trips {
		available := t.Bus.SeatCapacity - soldByTrip[t.ID]
		if available < 0 {
			available = 0
		}
		out = append(out, TripWithAvailability{Trip: t, AvailableSeats: available})
	}
	return out, nil
}
