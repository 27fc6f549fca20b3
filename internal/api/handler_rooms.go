package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/internal/domain"
)

const defaultHistoryLimit = 50

type addressRequest struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	ZipCode string `json:"zipCode" binding:"required"`
}

type checkInRequest struct {
	Name     string          `json:"name" binding:"required"`
	Address  addressRequest  `json:"address" binding:"required"`
	Identity identityRequest `json:"identity" binding:"required"`
}

func roomParam(c *gin.Context) (int, bool) {
	number, err := strconv.Atoi(c.Param("room"))
	if err != nil || number <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid room number"})
		return 0, false
	}
	return number, true
}

// CheckIn handles POST /api/hotels/:hotel/rooms/:room/check-in.
func (h *Handler) CheckIn(c *gin.Context) {
	number, ok := roomParam(c)
	if !ok {
		return
	}
	var req checkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	address, err := domain.NewAddress(req.Address.Street, req.Address.City, req.Address.ZipCode)
	if err != nil {
		abortWithError(c, err)
		return
	}
	identity, err := domain.NewIdentity(req.Identity.Type, req.Identity.Number)
	if err != nil {
		abortWithError(c, err)
		return
	}
	guest, err := domain.NewGuest(req.Name, address, identity)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.chain.CheckInGuest(c.Param("hotel"), number, guest); err != nil {
		abortWithError(c, err)
		return
	}
	h.respondRoom(c, number)
}

// CheckOut handles POST /api/hotels/:hotel/rooms/:room/check-out.
func (h *Handler) CheckOut(c *gin.Context) {
	number, ok := roomParam(c)
	if !ok {
		return
	}
	if err := h.chain.CheckOutGuest(c.Param("hotel"), number); err != nil {
		abortWithError(c, err)
		return
	}
	h.respondRoom(c, number)
}

func (h *Handler) respondRoom(c *gin.Context, number int) {
	ht, err := h.chain.Hotel(c.Param("hotel"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	view, err := ht.Room(number)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRoomResponse(view))
}

// RoomHistory handles GET /api/hotels/:hotel/rooms/:room/history. It reads
// the event ledger, newest first.
func (h *Handler) RoomHistory(c *gin.Context) {
	number, ok := roomParam(c)
	if !ok {
		return
	}
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}

	ht, err := h.chain.Hotel(c.Param("hotel"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if _, err := ht.Room(number); err != nil {
		abortWithError(c, err)
		return
	}

	events, err := h.store.RoomHistory(c.Request.Context(), ht.Name(), number, limit)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
