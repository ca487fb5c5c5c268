package handlers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"gorm.io/gorm"

	"github.com/jpvaldivia/norteexpreso/internal/helpers"
	"github.com/jpvaldivia/norteexpreso/internal/models"
	"github.com/jpvaldivia/norteexpreso/internal/repository"
	"github.com/jpvaldivia/norteexpreso/internal/services"
)

type CustomerRequest struct {
	Name         string  `json:"name" binding:"required"`
	Surname      string  `json:"surname" binding:"required"`
	NationalID   string  `json:"national_id" binding:"required"`
	BusinessName *string `json:"business_name"`
	TaxID        *string `json:"tax_id"`
}

type SellTicketsRequest struct {
	TripID   uuid.UUID       `json:"trip_id" binding:"required"`
	Customer CustomerRequest `json:"customer" binding:"required"`
	Seats    []int           `json:"seats" binding:"required,min=1"`
}

func SellTickets(c *gin.Context) {
	var req SellTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User ID not found in token.")
		return
	}
	sellingUserID, ok := userID.(uuid.UUID)
	if !ok {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID type.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	inventory := services.NewSeatInventoryService(repository.NewGormStore(db.(*gorm.DB)))

	info := services.CustomerInfo{
		Name:         req.Customer.Name,
		Surname:      req.Customer.Surname,
		NationalID:   req.Customer.NationalID,
		BusinessName: req.Customer.BusinessName,
		TaxID:        req.Customer.TaxID,
	}

	result, err := inventory.SellSeats(c.Request.Context(), req.TripID, info, req.Seats, sellingUserID)
	if err != nil {
		// Sales are best effort: seats issued before the failure stay
		// sold, so the conflict response still reports them.
		if result != nil && errors.Is(err, services.ErrSeatAlreadySold) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   http.StatusText(http.StatusConflict),
				"message": fmt.Sprintf("Seat %d is already sold.", result.FailedSeat),
				"tickets": result.TicketIDs,
				"total":   result.Total,
			})
			return
		}
		helpers.RespondWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tickets sold successfully.",
		"tickets": result.TicketIDs,
		"total":   result.Total,
	})
}

func ListTickets(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	store := repository.NewGormStore(db.(*gorm.DB))

	var from, to *time.Time
	if fromStr, toStr := c.Query("date_from"), c.Query("date_to"); fromStr != "" && toStr != "" {
		f, err := helpers.ParseDay(fromStr)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid date_from, expected YYYY-MM-DD.")
			return
		}
		t, err := helpers.ParseDay(toStr)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid date_to, expected YYYY-MM-DD.")
			return
		}
		from, to = &f, &t
	}

	status := models.TicketStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket status.")
		return
	}

	tickets, err := store.ListTickets(c.Request.Context(), from, to, status)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to list tickets.")
		return
	}

	c.JSON(http.StatusOK, tickets)
}

func generateBoardingQRData(ticket *models.Ticket) string {
	signature := generateTicketSignature(ticket.ID, ticket.TripID, ticket.CustomerID, os.Getenv("JWT_SECRET"))
	return fmt.Sprintf("ticket:%s;trip:%s;seat:%d;signature:%s",
		ticket.ID.String(),
		ticket.TripID.String(),
		ticket.SeatNumber,
		signature,
	)
}

func generateTicketSignature(ticketID, tripID, customerID uuid.UUID, secretKey string) string {
	data := fmt.Sprintf("%s:%s:%s", ticketID.String(), tripID.String(), customerID.String())
	h := hmac.New(sha256.New, []byte(secretKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

func extractTicketIDFromQRData(qrData string) (uuid.UUID, error) {
	parts := strings.Split(qrData, ";")
	if len(parts) != 4 || !strings.HasPrefix(parts[0], "ticket:") || !strings.HasPrefix(parts[3], "signature:") {
		return uuid.Nil, fmt.Errorf("invalid QR data format")
	}
	return uuid.Parse(strings.TrimPrefix(parts[0], "ticket:"))
}

func validateBoardingQRSignature(ticket *models.Ticket, qrData string) bool {
	parts := strings.Split(qrData, ";")
	if len(parts) != 4 || !strings.HasPrefix(parts[3], "signature:") {
		return false
	}

	signature := strings.TrimPrefix(parts[3], "signature:")
	expected := generateTicketSignature(ticket.ID, ticket.TripID, ticket.CustomerID, os.Getenv("JWT_SECRET"))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// GenerateTicketQR renders a signed boarding pass QR for a sold ticket.
func GenerateTicketQR(c *gin.Context) {
	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket ID.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	store := repository.NewGormStore(db.(*gorm.DB))

	ticket, err := store.TicketByID(c.Request.Context(), ticketID)
	if err != nil {
		helpers.RespondWithServiceError(c, err)
		return
	}

	if ticket.Status != models.TicketSold {
		helpers.RespondWithError(c, http.StatusForbidden, "Ticket is not valid for boarding.")
		return
	}

	qrImage, err := qrcode.Encode(generateBoardingQRData(ticket), qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	c.Data(http.StatusOK, "image/png", qrImage)
}

// ValidateTicket checks a boarding QR at the gate and flags the ticket
// so the same pass cannot board twice.
func ValidateTicket(c *gin.Context) {
	var req struct {
		QRData string `json:"qr_data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	store := repository.NewGormStore(db.(*gorm.DB))

	ticketID, err := extractTicketIDFromQRData(req.QRData)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid QR code format.")
		return
	}

	ticket, err := store.TicketByID(c.Request.Context(), ticketID)
	if err != nil {
		helpers.RespondWithServiceError(c, err)
		return
	}

	if !validateBoardingQRSignature(ticket, req.QRData) {
		helpers.RespondWithError(c, http.StatusForbidden, "Invalid QR code signature.")
		return
	}

	if ticket.Status != models.TicketSold {
		helpers.RespondWithError(c, http.StatusForbidden, "Ticket is not valid for boarding.")
		return
	}

	if ticket.Boarded {
		helpers.RespondWithError(c, http.StatusForbidden, "Ticket already used for boarding.")
		return
	}

	if err := store.MarkBoarded(c.Request.Context(), ticket.ID); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to validate ticket.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Ticket validated successfully.",
		"ticket": gin.H{
			"seat_number": ticket.SeatNumber,
			"origin":      ticket.Trip.Route.Origin,
			"destination": ticket.Trip.Route.Destination,
			"passenger":   ticket.Customer.Person.Name + " " + ticket.Customer.Person.Surname,
		},
	})
}
