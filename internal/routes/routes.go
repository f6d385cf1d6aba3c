package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/sharpcut-studio/booking-api/internal/audit"
	"github.com/sharpcut-studio/booking-api/internal/auth"
	"github.com/sharpcut-studio/booking-api/internal/cleanup"
	"github.com/sharpcut-studio/booking-api/internal/config"
	"github.com/sharpcut-studio/booking-api/internal/handlers"
	infraRepo "github.com/sharpcut-studio/booking-api/internal/infra/repository"
	"github.com/sharpcut-studio/booking-api/internal/middleware"
	ucBooking "github.com/sharpcut-studio/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	storePurger := cleanup.NewStorePurger(bookingRepo, cfg.Timezone, log)

	// In sweep mode the cron job owns cleanup and availability reads
	// skip it; in lazy mode every availability read purges first.
	var availabilityPurger cleanup.Purger = storePurger
	if cfg.CleanupMode == "sweep" {
		availabilityPurger = cleanup.Noop{}

		sweeper, err := cleanup.NewSweeper(storePurger, cfg.CleanupIntervalMinutes, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start cleanup sweeper")
		}
		sweeper.Start()
	}

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo, availabilityPurger)
	reserveSlotUC := ucBooking.NewReserveSlot(bookingRepo, auditDispatcher, cfg.Timezone)
	releaseSlotUC := ucBooking.NewReleaseSlot(bookingRepo)
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher, true)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(bookingRepo, auditDispatcher)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC, log)
	reservationHandler := handlers.NewReservationHandler(reserveSlotUC, releaseSlotUC, log)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, log)
	adminHandler := handlers.NewAdminHandler(listBookingsUC, updateStatusUC, deleteBookingUC, log)

	adminChecker := auth.FromConfig(cfg)

	// ======================================================
	// ROUTES
	// ======================================================
	api := r.Group("/api")
	{
		bookings := api.Group("/bookings")
		{
			bookings.GET("/availability", availabilityHandler.Get)
			bookings.POST("/reserve-slot", reservationHandler.Reserve)
			bookings.DELETE("/reserve-slot", reservationHandler.Release)
			bookings.POST("", bookingHandler.Create)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware(adminChecker))
		{
			admin.GET("/bookings", adminHandler.List)
			admin.PUT("/bookings", adminHandler.Update)
			admin.DELETE("/bookings", adminHandler.Delete)
		}
	}
}
