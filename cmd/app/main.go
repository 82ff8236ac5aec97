package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"carlink/cmd/fx/account_fx"
	"carlink/cmd/fx/booking_fx"
	"carlink/cmd/fx/car_fx"
	"carlink/cmd/fx/db_fx"
	"carlink/cmd/fx/dispute_fx"
	"carlink/cmd/fx/inspection_fx"
	"carlink/cmd/fx/mail_fx"
	"carlink/cmd/fx/message_fx"
	"carlink/cmd/fx/notification_fx"
	"carlink/cmd/fx/payment_fx"
	"carlink/internal/api/controllers"
	"carlink/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		notification_fx.Module,
		account_fx.Module,
		car_fx.Module,
		booking_fx.Module,
		payment_fx.Module,
		dispute_fx.Module,
		inspection_fx.Module,
		message_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	carController *controllers.CarController,
	bookingController *controllers.BookingController,
	paymentController *controllers.PaymentController,
	disputeController *controllers.DisputeController,
	inspectionController *controllers.InspectionController,
	messageController *controllers.MessageController,
	notificationController *controllers.NotificationController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		accountController,
		carController,
		bookingController,
		paymentController,
		disputeController,
		inspectionController,
		messageController,
		notificationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	carController *controllers.CarController,
	bookingController *controllers.BookingController,
	paymentController *controllers.PaymentController,
	disputeController *controllers.DisputeController,
	inspectionController *controllers.InspectionController,
	messageController *controllers.MessageController,
	notificationController *controllers.NotificationController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountController.Profile)

	cars := r.Group("/cars")
	cars.GET("", carController.SearchCars)
	cars.GET("/makes", carController.ListMakes)
	cars.GET("/:id", carController.GetCar)
	cars.POST("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("host", "admin"), carController.CreateCar)
	cars.PUT("/:id", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("host", "admin"), carController.UpdateCar)
	cars.POST("/makes", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), carController.CreateMake)
	cars.POST("/models", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), carController.CreateModel)

	bookings := r.Group("/bookings", middleware.JWTAuthMiddleware())
	bookings.POST("", bookingController.CreateBooking)
	bookings.GET("", bookingController.ListMyBookings)
	bookings.GET("/:id", bookingController.GetBooking)
	bookings.PATCH("/:id/status", bookingController.ChangeStatus)
	bookings.DELETE("/:id", middleware.RoleMiddleware("admin"), bookingController.DeleteBooking)

	payments := r.Group("/payments", middleware.JWTAuthMiddleware())
	payments.POST("", paymentController.CreatePayment)
	payments.GET("", paymentController.ListPayments)
	payments.POST("/booking/:bookingId/complete", paymentController.CompletePayment)
	payments.POST("/release", middleware.RoleMiddleware("admin", "support"), paymentController.ReleaseToHost)
	payments.POST("/refund", middleware.RoleMiddleware("admin", "support"), paymentController.Refund)
	payments.GET("/:id", paymentController.GetPayment)
	payments.GET("/:id/transactions", paymentController.ListTransactions)
	payments.GET("/booking/:bookingId", paymentController.GetPaymentByBooking)

	disputes := r.Group("/disputes", middleware.JWTAuthMiddleware())
	disputes.POST("", disputeController.CreateDispute)
	disputes.GET("", middleware.RoleMiddleware("admin"), disputeController.ListDisputes)
	disputes.GET("/:id", middleware.RoleMiddleware("admin"), disputeController.GetDispute)
	disputes.POST("/:id/review", middleware.RoleMiddleware("admin"), disputeController.MarkUnderReview)
	disputes.POST("/:id/resolve", middleware.RoleMiddleware("admin"), disputeController.ResolveDispute)
	disputes.POST("/:id/reject", middleware.RoleMiddleware("admin"), disputeController.RejectDispute)

	inspections := r.Group("/inspections", middleware.JWTAuthMiddleware())
	inspections.POST("", inspectionController.RecordInspection)
	inspections.GET("/booking/:bookingId", inspectionController.ListForBooking)

	messages := r.Group("/messages", middleware.JWTAuthMiddleware())
	messages.POST("", messageController.SendMessage)
	messages.GET("/:userId", messageController.ListConversation)

	notifications := r.Group("/notifications", middleware.JWTAuthMiddleware())
	notifications.GET("", notificationController.ListNotifications)
	notifications.POST("/:id/read", notificationController.MarkRead)
}
