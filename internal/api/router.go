package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/internal/hotel"
	"hotel-reservation-backend/internal/mw"
	"hotel-reservation-backend/internal/store"
)

func cacheTTL(cfg config.ServerConfig) time.Duration {
	if cfg.CacheTTL <= 0 {
		return 30 * time.Second
	}
	return cfg.CacheTTL
}

// NewResponseCache creates the store backing the GET response cache. Callers
// that change inventory outside the API flush it.
func NewResponseCache(cfg config.ServerConfig) *cache.Cache {
	ttl := cacheTTL(cfg)
	return cache.New(ttl, 2*ttl)
}

// NewRouter creates and configures a new Gin router. A nil responseCache gets
// a private one.
func NewRouter(chain *hotel.Chain, s store.Store, webpushOptions *webpush.Options, cfg config.ServerConfig, responseCache *cache.Cache) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(chain, s, webpushOptions)

	ttl := cacheTTL(cfg)
	if responseCache == nil {
		responseCache = NewResponseCache(cfg)
	}
	perSec, burst := cfg.RateLimitPerSec, cfg.RateLimitBurst
	if perSec <= 0 {
		perSec = 10
	}
	if burst <= 0 {
		burst = 5
	}
	rateLimiter := mw.RateLimiter(rate.Limit(perSec), burst)
	caching := mw.Cache(responseCache, ttl)

	api := r.Group("/api")
	api.Use(rateLimiter, mw.Invalidate(responseCache))
	{
		api.GET("/hotels", caching, handler.ListHotels)

		hotels := api.Group("/hotels/:hotel")
		hotels.GET("/rooms", caching, handler.ListRooms)
		hotels.GET("/availability", handler.Availability)
		hotels.GET("/reservations", handler.ListReservations)
		hotels.POST("/reservations", handler.CreateReservation)
		hotels.DELETE("/reservations/:number", handler.CancelReservation)
		hotels.POST("/rooms/:room/check-in", handler.CheckIn)
		hotels.POST("/rooms/:room/check-out", handler.CheckOut)
		hotels.GET("/rooms/:room/history", handler.RoomHistory)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
