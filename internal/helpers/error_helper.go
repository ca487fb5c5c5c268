package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jpvaldivia/norteexpreso/internal/services"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithServiceError maps the service error taxonomy onto HTTP
// status codes. Anything unclassified is a generic 500; the store has
// already rolled back by the time an error reaches a handler.
func RespondWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		RespondWithError(c, http.StatusNotFound, "Resource not found.")
	case errors.Is(err, services.ErrSeatAlreadySold):
		RespondWithError(c, http.StatusConflict, "Seat already sold. Refresh the seat map and pick another seat.")
	case errors.Is(err, services.ErrSeatOutOfRange), errors.Is(err, services.ErrInvalidAmount):
		RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials), errors.Is(err, services.ErrInvalidToken):
		RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
	default:
		RespondWithError(c, http.StatusInternalServerError, "Internal server error.")
	}
}
