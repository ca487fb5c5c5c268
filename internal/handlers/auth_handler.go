package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jpvaldivia/norteexpreso/internal/helpers"
	"github.com/jpvaldivia/norteexpreso/internal/middleware"
	"github.com/jpvaldivia/norteexpreso/internal/services"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	auth := middleware.GetAuthService(c)
	if auth == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Auth service not configured.")
		return
	}

	token, profile, err := auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to log in.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  profile,
	})
}
