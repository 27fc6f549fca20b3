package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"hotel-reservation-backend/internal/hotel"
	"hotel-reservation-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	chain   *hotel.Chain
	store   store.Store
	webpush *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(chain *hotel.Chain, s store.Store, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		chain:   chain,
		store:   s,
		webpush: webpushOptions,
	}
}
