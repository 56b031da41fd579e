package api

import (
	authDelivery "parkhub-backend/internal/auth/delivery"
	authUsecase "parkhub-backend/internal/auth/usecase"
	parkDelivery "parkhub-backend/internal/park/delivery"
	parkUsecasePkg "parkhub-backend/internal/park/usecase"
	proxyDelivery "parkhub-backend/internal/proxy/delivery"
	"parkhub-backend/pkg/config"
	"parkhub-backend/pkg/googleauth"
	"parkhub-backend/pkg/proxyclient"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase  authUsecase.AuthUsecase
	parkUsecase  parkUsecasePkg.ParkUsecase
	proxyHandler *proxyDelivery.ProxyHandler
	authHandler  *authDelivery.AuthHandler
	parkHandler  *parkDelivery.ParkHandler
	config       *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, parkUc parkUsecasePkg.ParkUsecase, cfg *config.Config) *Handler {
	googleVerifier := googleauth.NewVerifier(cfg)
	proxyClient := proxyclient.NewClient(cfg)

	return &Handler{
		authUsecase:  authUc,
		parkUsecase:  parkUc,
		proxyHandler: proxyDelivery.NewProxyHandler(proxyClient),
		authHandler:  authDelivery.NewAuthHandler(authUc, googleVerifier),
		parkHandler:  parkDelivery.NewParkHandler(parkUc),
		config:       cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.authHandler, h.parkHandler, h.proxyHandler)

	return r.Run(addr)
}
