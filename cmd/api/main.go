package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sessiondesk/internal/config"
	"sessiondesk/internal/modules/auth"
	"sessiondesk/internal/modules/booking"
	"sessiondesk/internal/modules/catalog"
	"sessiondesk/internal/modules/opencall"
	"sessiondesk/internal/modules/social"
	jwtsvc "sessiondesk/internal/pkg/jwt"
	"sessiondesk/internal/pkg/logger"
	"sessiondesk/internal/repository"
	"sessiondesk/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db := store.Open()
	store.Seed(db)

	userRepo := repository.NewUserRepository(db)
	studioRepo := repository.NewStudioRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	requestRepo := repository.NewBookingRequestRepository(db)
	openCallRepo := repository.NewOpenCallRepository(db)

	j := jwtsvc.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := auth.NewService(userRepo, studioRepo, j)
	catalogService := catalog.NewService(studioRepo)
	bookingService := booking.NewService(bookingRepo, requestRepo, studioRepo)
	socialService := social.NewService(userRepo, studioRepo)
	openCallService := opencall.NewService(openCallRepo, studioRepo, userRepo)

	r := gin.Default()
	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := r.Group("/api")
	{
		auth.NewHandler(authService).RegisterRoutes(api)
		catalog.NewHandler(catalogService).RegisterRoutes(api)
		booking.NewHandler(bookingService).RegisterRoutes(api)
		social.NewHandler(socialService).RegisterRoutes(api)
		opencall.NewHandler(openCallService).RegisterRoutes(api)
	}

	logger.Info("starting api server", "port", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Error("server exited", "error", err)
	}
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	origin := "*"
	if len(origins) > 0 {
		origin = origins[0]
	}
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
