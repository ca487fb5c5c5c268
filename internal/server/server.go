package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jpvaldivia/norteexpreso/config"
	"github.com/jpvaldivia/norteexpreso/internal/handlers"
	"github.com/jpvaldivia/norteexpreso/internal/middleware"
	"github.com/jpvaldivia/norteexpreso/internal/repository"
	"github.com/jpvaldivia/norteexpreso/internal/services"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	auth := services.NewAuthService(repository.NewGormStore(db), cfg.JWTSecret, cfg.TokenValidity)

	r := gin.Default()

	setupRoutes(r, db, auth)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, auth *services.AuthService) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.AuthServiceMiddleware(auth))

	public := r.Group("/api")
	{
		public.POST("/auth/login", handlers.Login)
		public.GET("/routes", handlers.ListRoutes)

		tripPublic := public.Group("/trips")
		{
			tripPublic.GET("/search", handlers.SearchTrips)
			tripPublic.GET("/:id/seats", handlers.GetOccupiedSeats)
			tripPublic.GET("/:id/availability", handlers.GetSeatAvailability)
		}
	}

	protected := r.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware(auth))
	{
		ticketProtected := protected.Group("/tickets")
		{
			ticketProtected.POST("", handlers.SellTickets)
			ticketProtected.GET("", handlers.ListTickets)
			ticketProtected.GET("/:id/qr", handlers.GenerateTicketQR)
			ticketProtected.POST("/validate", handlers.ValidateTicket)
		}

		protected.GET("/dashboard/stats", handlers.GetDashboardStats)
		protected.GET("/dashboard/sales", handlers.GetSalesReport)
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.JWTAuthMiddleware(auth))
	admin.Use(middleware.RequireRole("administrator", "supervisor"))
	{
		admin.GET("/trips", handlers.AdminListTrips)
		admin.POST("/trips", handlers.CreateTrip)
		admin.GET("/buses", handlers.AdminListBuses)
		admin.POST("/buses", handlers.CreateBus)
		admin.POST("/routes", handlers.CreateRoute)
	}
}
