package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jpvaldivia/norteexpreso/internal/helpers"
	"github.com/jpvaldivia/norteexpreso/internal/models"
	"github.com/jpvaldivia/norteexpreso/internal/repository"
)

type CreateTripRequest struct {
	RouteID          uuid.UUID `json:"route_id" binding:"required"`
	BusID            uuid.UUID `json:"bus_id" binding:"required"`
	DriverID         uuid.UUID `json:"driver_id" binding:"required"`
	Departure        time.Time `json:"departure" binding:"required"`
	EstimatedArrival time.Time `json:"estimated_arrival" binding:"required"`
}

type CreateBusRequest struct {
	Plate        string `json:"plate" binding:"required"`
	Manufacturer string `json:"manufacturer" binding:"required"`
	SeatCapacity int    `json:"seat_capacity" binding:"required,min=1"`
}

type CreateRouteRequest struct {
	Origin        string          `json:"origin" binding:"required"`
	Destination   string          `json:"destination" binding:"required"`
	ReferenceFare decimal.Decimal `json:"reference_fare"`
}

func AdminListTrips(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	store := repository.NewGormStore(db.(*gorm.DB))

	var day *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		d, err := helpers.ParseDay(dateStr)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD.")
			return
		}
		day = &d
	}

	status := models.TripStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid trip status.")
		return
	}

	trips, err := store.ListTrips(c.Request.Context(), day, status)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to list trips.")
		return
	}

	c.JSON(http.StatusOK, trips)
}

func CreateTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if req.EstimatedArrival.Before(req.Departure) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Estimated arrival must not be before departure.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	store := repository.NewGormStore(db.(*gorm.DB))

	trip := models.Trip{
		RouteID:          req.RouteID,
		BusID:            req.BusID,
		DriverID:         req.DriverID,
		Departure:        req.Departure.UTC(),
		EstimatedArrival: req.EstimatedArrival.UTC(),
		Status:           models.TripScheduled,
	}

	if err := store.CreateTrip(c.Request.Context(), &trip); err != nil {
		helpers.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Trip scheduled successfully.",
		"trip_id": trip.ID,
	})
}

func AdminListBuses(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	store := repository.NewGormStore(db.(*gorm.DB))

	buses, err := store.ListBuses(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to list buses.")
		return
	}

	c.JSON(http.StatusOK, buses)
}

func CreateBus(c *gin.Context) {
	var req CreateBusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	store := repository.NewGormStore(db.(*gorm.DB))

	bus := models.Bus{
		Plate:        req.Plate,
		Manufacturer: req.Manufacturer,
		SeatCapacity: req.SeatCapacity,
		Status:       models.BusOperational,
	}

	if err := store.CreateBus(c.Request.Context(), &bus); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to register bus.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Bus registered successfully.",
		"bus_id":  bus.ID,
	})
}

func CreateRoute(c *gin.Context) {
	var req CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	if !req.ReferenceFare.IsPositive() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Reference fare must be positive.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	store := repository.NewGormStore(db.(*gorm.DB))

	route := models.Route{
		Origin:        req.Origin,
		Destination:   req.Destination,
		ReferenceFare: req.ReferenceFare,
	}

	if err := store.CreateRoute(c.Request.Context(), &route); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create route.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Route created successfully.",
		"route_id": route.ID,
	})
}
