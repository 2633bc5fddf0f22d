package routes

import (
	"github.com/labstack/echo/v4"

	"DestinyRealEstate/events"
	"DestinyRealEstate/handlers"
	"DestinyRealEstate/middleware"
)

func RegisterRoutes(e *echo.Echo, pub events.Publisher) {
	e.GET("/health", handlers.HealthCheck)

	userController := handlers.NewUserController()
	propertyController := handlers.NewPropertyController()
	wishlistController := handlers.NewWishlistController()
	bookingController := handlers.NewBookingController(pub)
	agreementController := handlers.NewAgreementController(pub)
	constructionController := handlers.NewConstructionController(pub)

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", userController.Signup)
	auth.POST("/login", userController.Login)
	auth.GET("/me", userController.Me, middleware.JWTMiddleware())

	api.GET("/properties", propertyController.ListProperties)
	api.GET("/properties/:id", propertyController.GetProperty)
	api.POST("/properties", propertyController.CreateProperty, middleware.JWTMiddleware())

	wishlist := api.Group("/wishlist", middleware.JWTMiddleware())
	wishlist.GET("", wishlistController.GetWishlist)
	wishlist.POST("", wishlistController.AddToWishlist)
	wishlist.POST("/toggle", wishlistController.Toggle)
	wishlist.DELETE("/:propertyId", wishlistController.RemoveFromWishlist)

	bookings := api.Group("/bookings", middleware.JWTMiddleware())
	bookings.POST("", bookingController.CreateBooking)
	bookings.GET("", bookingController.ListBookings)
	bookings.GET("/:id", bookingController.GetBooking)
	bookings.POST("/:id/confirm", bookingController.Confirm)
	bookings.POST("/:id/complete", bookingController.Complete)
	bookings.POST("/:id/cancel", bookingController.Cancel)
	bookings.POST("/:id/pay", bookingController.Pay)
	bookings.POST("/:id/refund", bookingController.RefundPayment)

	recommendationController := handlers.NewRecommendationController()
	recommendations := api.Group("/recommendations", middleware.JWTMiddleware())
	recommendations.POST("", recommendationController.CreateRecommendation)
	recommendations.GET("", recommendationController.GetReceivedRecommendations)

	agreements := api.Group("/agreements", middleware.JWTMiddleware())
	agreements.POST("", agreementController.CreateAgreement)
	agreements.GET("/:id", agreementController.GetAgreement)
	agreements.POST("/:id/submit", agreementController.Submit)
	agreements.POST("/:id/sign", agreementController.Sign)
	agreements.POST("/:id/activate", agreementController.Activate)
	agreements.POST("/:id/complete", agreementController.Complete)
	agreements.POST("/:id/cancel", agreementController.Cancel)

	construction := api.Group("/construction", middleware.JWTMiddleware())
	construction.GET("", constructionController.ListProjects)
	construction.POST("", constructionController.CreateProject)
	construction.GET("/:id", constructionController.GetProject)
	construction.POST("/:id/bid", constructionController.OpenBidding)
	construction.POST("/:id/start", constructionController.Start)
	construction.POST("/:id/complete", constructionController.Complete)
	construction.POST("/:id/cancel", constructionController.Cancel)
	construction.POST("/:id/milestones", constructionController.AddMilestone)
	construction.POST("/:id/milestones/:milestoneId/complete", constructionController.CompleteMilestone)
	construction.POST("/:id/materials", constructionController.AddMaterial)
	construction.POST("/:id/materials/:materialId/status", constructionController.SetMaterialStatus)

	echo.NotFoundHandler = handlers.NotFoundHandler
}
