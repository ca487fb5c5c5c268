package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jpvaldivia/norteexpreso/internal/helpers"
	"github.com/jpvaldivia/norteexpreso/internal/repository"
	"github.com/jpvaldivia/norteexpreso/internal/services"
)

func GetDashboardStats(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	reports := services.NewReportService(repository.NewGormStore(db.(*gorm.DB)))

	stats, err := reports.Dashboard(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to compute dashboard stats.")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func GetSalesReport(c *gin.Context) {
	fromStr, toStr := c.Query("date_from"), c.Query("date_to")
	if fromStr == "" || toStr == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "date_from and date_to are required.")
		return
	}
	from, err := helpers.ParseDay(fromStr)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid date_from, expected YYYY-MM-DD.")
		return
	}
	to, err := helpers.ParseDay(toStr)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid date_to, expected YYYY-MM-DD.")
		return
	}
	if to.Before(from) {
		helpers.RespondWithError(c, http.StatusBadRequest, "date_to must not be before date_from.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	reports := services.NewReportService(repository.NewGormStore(db.(*gorm.DB)))

	sales, err := reports.SalesBetween(c.Request.Context(), from, to)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to compute sales report.")
		return
	}

	c.JSON(http.StatusOK, sales)
}
