package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpvaldivia/norteexpreso/internal/models"
	"github.com/jpvaldivia/norteexpreso/internal/services"
)

// SalesByDay groups sold tickets per day over [from, to], both bounds
// inclusive, in UTC.
func (s *GormStore) SalesByDay(ctx context.Context, from, to time.Time) ([]services.DailySales, error) {
	end := to.Truncate(24 * time.Hour).Add(24 * time.Hour)

	rows, err := s.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Select("DATE_TRUNC('day', issued_at) AS day, COUNT(*) AS tickets, COALESCE(SUM(amount), 0) AS revenue").
		Where("issued_at >= ? AND issued_at < ? AND status = ?", from.Truncate(24*time.Hour), end, models.TicketSold).
		Group("DATE_TRUNC('day', issued_at)").
		Order("day").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	defer rows.Close()

	var out []services.DailySales
	for rows.Next() {
		var d services.DailySales
		if err := rows.Scan(&d.Day, &d.Tickets, &d.Revenue); err != nil {
			return nil, fmt.Errorf("scan daily sales: %w", err)
		}
		if d.Tickets > 0 {
			d.Average = d.Revenue.Div(decimal.NewFromInt(d.Tickets)).Round(2)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *GormStore) SalesOn(ctx context.Context, day time.Time) (int64, decimal.Decimal, error) {
	start := day.Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	var row struct {
		Tickets int64
		Revenue decimal.Decimal
	}
	err := s.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Select("COUNT(*) AS tickets, COALESCE(SUM(amount), 0) AS revenue").
		Where("issued_at >= ? AND issued_at < ? AND status = ?", start, end, models.TicketSold).
		Scan(&row).Error
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("sales on %s: %w", start.Format("2006-01-02"), err)
	}
	return row.Tickets, row.Revenue, nil
}

func (s *GormStore) PopularRoutes(ctx context.Context, limit int) ([]services.RouteStat, error) {
	var stats []services.RouteStat
	err := s.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Select("routes.origin, routes.destination, COUNT(tickets.id) AS tickets, COALESCE(SUM(tickets.amount), 0) AS revenue").
		Joins("JOIN trips ON trips.id = tickets.trip_id").
		Joins("JOIN routes ON routes.id = trips.route_id").
		Where("tickets.status = ?", models.TicketSold).
		Group("routes.id, routes.origin, routes.destination").
		Order("tickets DESC").
		Limit(limit).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("popular routes: %w", err)
	}
	return stats, nil
}

func (s *GormStore) OperationalBusCount(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Bus{}).
		Where("status = ?", models.BusOperational).
		Count(&count).Error
	return count, err
}

func (s *GormStore) ScheduledTripCountOn(ctx context.Context, day time.Time) (int64, error) {
	start := day.Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)

	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Trip{}).
		Where("departure >= ? AND departure < ? AND status = ?", start, end, models.TripScheduled).
		Count(&count).Error
	return count, err
}
