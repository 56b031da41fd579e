package api

import (
	"net/http"

	authDelivery "parkhub-backend/internal/auth/delivery"
	authUsecase "parkhub-backend/internal/auth/usecase"
	parkDelivery "parkhub-backend/internal/park/delivery"
	proxyDelivery "parkhub-backend/internal/proxy/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, authHandler *authDelivery.AuthHandler, parkHandler *parkDelivery.ParkHandler, proxyHandler *proxyDelivery.ProxyHandler) {
	api := r.Group("/api/v1")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/google", authHandler.GoogleAuth)
			auth.GET("/user", authHandler.GetUser)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
		}

		// Park routes; mutations carry the bearer token through to the
		// service, deletion is additionally admin-gated.
		parks := api.Group("/parks")
		{
			parks.GET("/list-parks", parkHandler.ListParks)
			parks.GET("/:parkId", parkHandler.GetPark)
			parks.POST("/add-park", parkHandler.AddPark)
			parks.POST("/update-park", parkHandler.UpdatePark)
			parks.POST("/delete-park",
				authDelivery.AuthMiddleware(authUc),
				authDelivery.AdminMiddleware(),
				parkHandler.DeletePark)
		}

		// Stateless proxy to third-party geo/weather/events APIs
		proxy := api.Group("/proxy")
		{
			proxy.GET("/weather", proxyHandler.Weather)
			proxy.GET("/air-quality", proxyHandler.AirQuality)
			proxy.GET("/directions", proxyHandler.Directions)
			proxy.GET("/speak", proxyHandler.Speak)
			proxy.GET("/events", proxyHandler.Events)
			proxy.POST("/points-of-interest", proxyHandler.PointsOfInterest)
		}
	}
}
