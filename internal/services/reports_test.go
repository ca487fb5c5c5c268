package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type memReportStore struct {
	salesByDay []DailySales
	tickets    int64
	revenue    decimal.Decimal
	buses      int64
	trips      int64
	routes     []RouteStat
}

func (m *memReportStore) SalesByDay(ctx context.Context, from, to time.Time) ([]DailySales, error) {
	return m.salesByDay, nil
}

func (m *memReportStore) SalesOn(ctx context.Context, day time.Time) (int64, decimal.Decimal, error) {
	return m.tickets, m.revenue, nil
}

func (m *memReportStore) PopularRoutes(ctx context.Context, limit int) ([]RouteStat, error) {
	if limit < len(m.routes) {
		return m.routes[:limit], nil
	}
	return m.routes, nil
}

func (m *memReportStore) OperationalBusCount(ctx context.Context) (int64, error) {
	return m.buses, nil
}

func (m *memReportStore) ScheduledTripCountOn(ctx context.Context, day time.Time) (int64, error) {
	return m.trips, nil
}

func TestDashboardAssemblesSnapshot(t *testing.T) {
	revenue, _ := decimal.NewFromString("1350.00")
	store := &memReportStore{
		tickets: 30,
		revenue: revenue,
		buses:   8,
		trips:   5,
		routes: []RouteStat{
			{Origin: "Lima", Destination: "Trujillo", Tickets: 120},
			{Origin: "Lima", Destination: "Chiclayo", Tickets: 90},
		},
	}
	svc := NewReportService(store)

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if stats.TicketsToday != 30 || !stats.RevenueToday.Equal(revenue) {
		t.Fatalf("unexpected sales: %+v", stats)
	}
	if stats.OperationalBuses != 8 || stats.TripsToday != 5 {
		t.Fatalf("unexpected fleet counts: %+v", stats)
	}
	if len(stats.PopularRoutes) != 2 {
		t.Fatalf("expected 2 popular routes, got %d", len(stats.PopularRoutes))
	}
}

func TestSalesBetweenRejectsReversedRange(t *testing.T) {
	svc := NewReportService(&memReportStore{})

	from := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if _, err := svc.SalesBetween(context.Background(), from, to); err == nil {
		t.Fatal("expected an error for a reversed date range")
	}
}
