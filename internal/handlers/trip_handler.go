package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jpvaldivia/norteexpreso/internal/helpers"
	"github.com/jpvaldivia/norteexpreso/internal/repository"
	"github.com/jpvaldivia/norteexpreso/internal/services"
)

func SearchTrips(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	dateStr := c.Query("date")
	if origin == "" || destination == "" || dateStr == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "origin, destination and date are required.")
		return
	}

	day, err := helpers.ParseDay(dateStr)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	store := repository.NewGormStore(db.(*gorm.DB))

	trips, err := store.SearchTrips(c.Request.Context(), origin, destination, day)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to search trips.")
		return
	}

	c.JSON(http.StatusOK, trips)
}

func GetOccupiedSeats(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid trip ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	inventory := services.NewSeatInventoryService(repository.NewGormStore(db.(*gorm.DB)))

	seats, err := inventory.OccupiedSeats(c.Request.Context(), tripID)
	if err != nil {
		helpers.RespondWithServiceError(c, err)
		return
	}
	if seats == nil {
		seats = []int{}
	}

	c.JSON(http.StatusOK, seats)
}

func GetSeatAvailability(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid trip ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	inventory := services.NewSeatInventoryService(repository.NewGormStore(db.(*gorm.DB)))

	available, err := inventory.AvailableSeatCount(c.Request.Context(), tripID)
	if err != nil {
		helpers.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available_seats": available})
}
