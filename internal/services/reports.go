package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DailySales is one day's sold-ticket rollup.
type DailySales struct {
	Day     time.Time       `json:"day"`
	Tickets int64           `json:"tickets"`
	Revenue decimal.Decimal `json:"revenue"`
	Average decimal.Decimal `json:"average"`
}

// RouteStat ranks a route by sold-ticket volume.
type RouteStat struct {
	Origin      string          `json:"origin"`
	Destination string          `json:"destination"`
	Tickets     int64           `json:"tickets"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// DashboardStats is the aggregate snapshot the back-office landing page
// renders.
type DashboardStats struct {
	TicketsToday     int64           `json:"tickets_today"`
	RevenueToday     decimal.Decimal `json:"revenue_today"`
	OperationalBuses int64           `json:"operational_buses"`
	TripsToday       int64           `json:"trips_today"`
	PopularRoutes    []RouteStat     `json:"popular_routes"`
}

// ReportStore runs the read-only aggregation queries. Date ranges are
// inclusive on both ends and interpreted in UTC.
type ReportStore interface {
	SalesByDay(ctx context.Context, from, to time.Time) ([]DailySales, error)
	SalesOn(ctx context.Context, day time.Time) (int64, decimal.Decimal, error)
	PopularRoutes(ctx context.Context, limit int) ([]RouteStat, error)
	OperationalBusCount(ctx context.Context) (int64, error)
	ScheduledTripCountOn(ctx context.Context, day time.Time) (int64, error)
}

// ReportService exposes the dashboard and sales reports. Plain
// aggregations, no invariants beyond inclusive date bounds.
type ReportService struct {
	store ReportStore
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

func (s *ReportService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	tickets, revenue, err := s.store.SalesOn(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("today's sales: %w", err)
	}
	buses, err := s.store.OperationalBusCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("operational buses: %w", err)
	}
	trips, err := s.store.ScheduledTripCountOn(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("scheduled trips: %w", err)
	}
	routes, err := s.store.PopularRoutes(ctx, 5)
	if err != nil {
		return nil, fmt.Errorf("popular routes: %w", err)
	}

	return &DashboardStats{
		TicketsToday:     tickets,
		RevenueToday:     revenue,
		OperationalBuses: buses,
		TripsToday:       trips,
		PopularRoutes:    routes,
	}, nil
}

// SalesBetween returns the per-day rollup for [from, to], both
// inclusive.
func (s *ReportService) SalesBetween(ctx context.Context, from, to time.Time) ([]DailySales, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("date range ends before it starts")
	}
	return s.store.SalesByDay(ctx, from, to)
}
