package routes

import (
	"os"

	"catering-booking/controllers/auth"
	"catering-booking/controllers/bid"
	"catering-booking/controllers/booking"
	"catering-booking/controllers/calendar"
	"catering-booking/controllers/customer"
	"catering-booking/controllers/user"
	calendarClient "catering-booking/httpServices/calendar"
	"catering-booking/logger"
	"catering-booking/middleware"
	"catering-booking/services/schedule"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	var remote *calendarClient.Client
	if base := os.Getenv("CALENDAR_SERVICE_URL"); base != "" {
		remote = calendarClient.NewClient(base)
	}

	asyncLogger := logger.NewAsyncLogger(db)
	scheduleService := schedule.NewService(db, remote)

	authController := auth.NewAuthController(db, asyncLogger)
	userController := user.NewUserController(db)
	customerController := customer.NewCustomerController(db, asyncLogger)
	bookingController := booking.NewBookingController(db, scheduleService, asyncLogger)
	calendarController := calendar.NewCalendarController(db, scheduleService, asyncLogger)
	mealPrepController := bid.NewMealPrepController(db, asyncLogger)
	cateringController := bid.NewCateringController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.RequestLogger(asyncLogger))

	/*=============================================================================
	| Auth Routes
	===============================================================================*/
	app.Post("/login", authController.Login)
	app.Post("/register", authController.Register)
	app.Get("/users", userController.Index)

	/*=============================================================================
	| Customer Routes
	===============================================================================*/
	app.Get("/customers", customerController.Index)
	app.Post("/customers", customerController.Store)
	app.Put("/customers/:id", customerController.Update)
	app.Patch("/customers/:id", customerController.Deactivate)
	app.Patch("/customers/:id/reactivate", customerController.Reactivate)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	app.Get("/bookings", bookingController.Index)
	app.Get("/bookings/:id", bookingController.Show)
	app.Post("/bookings", bookingController.Store)
	app.Put("/bookings/:id", bookingController.Update)
	app.Delete("/bookings/:id", bookingController.Destroy)
	app.Delete("/bookings_and_calendar/:id", bookingController.DestroyWithCalendar)

	/*=============================================================================
	| Calendar Routes
	===============================================================================*/
	app.Get("/calendar", calendarController.Index)
	app.Get("/calendar/:booking_id", calendarController.ShowByBooking)
	app.Post("/calendar", calendarController.Store)
	app.Put("/calendar/:event_id", calendarController.Update)
	app.Delete("/calendar/:event_id", calendarController.Destroy)

	/*=============================================================================
	| Bid Routes
	===============================================================================*/
	app.Get("/meal_prep_bids", mealPrepController.Index)
	app.Post("/meal_prep_bids", mealPrepController.Store)
	app.Put("/meal_prep_bids/:id/:customer_id?/:booking_id?", mealPrepController.Update)
	app.Delete("/meal_prep_bids/:id/:customer_id?/:booking_id?", mealPrepController.Destroy)

	app.Get("/catering_bids", cateringController.Index)
	app.Post("/catering_bids", cateringController.Store)
	app.Put("/catering_bids/:id/:customer_id?/:booking_id?", cateringController.Update)
	app.Delete("/catering_bids/:id/:customer_id?/:booking_id?", cateringController.Destroy)
}
