package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jpvaldivia/norteexpreso/internal/helpers"
	"github.com/jpvaldivia/norteexpreso/internal/repository"
)

func ListRoutes(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	store := repository.NewGormStore(db.(*gorm.DB))

	routes, err := store.ListRoutes(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to list routes.")
		return
	}

	c.JSON(http.StatusOK, routes)
}
