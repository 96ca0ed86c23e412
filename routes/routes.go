package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"booking-wizard/controllers"
	"booking-wizard/middleware"
)

// Options are the HTTP-edge settings taken from config.Config.
type Options struct {
	CorsOrigins []string
	// TrustedProxies may forward the client address in X-Forwarded-For.
	// With none, the rate limiter keys on the TCP peer.
	TrustedProxies []string
}

// SetupRouter wires the controllers onto a gin engine.
func SetupRouter(
	ec *controllers.EntryController,
	rbc *controllers.RoomBookingController,
	limiter *middleware.RateLimiter,
	opts Options,
	log *zap.Logger,
) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log))

	origins := opts.CorsOrigins
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	if limiter != nil {
		api.Use(middleware.RateLimit(limiter))
	}
	api.POST("/submit", ec.SubmitEntry)
	api.POST("/room-booking", rbc.CreateRoomBooking)

	return r, nil
}
