package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/internal/domain"
	"hotel-reservation-backend/internal/parse"
)

// roomResponse is the public view of a room. Of the occupant only the name
// is shown; address and identity document stay with the front desk.
type roomResponse struct {
	Number       int              `json:"number"`
	Type         domain.RoomType  `json:"type"`
	State        domain.RoomState `json:"state"`
	OccupantName string           `json:"occupantName,omitempty"`
}

func newRoomResponse(v domain.RoomView) roomResponse {
	resp := roomResponse{Number: v.Number, Type: v.Type, State: v.State}
	if v.Occupant != nil {
		resp.OccupantName = v.Occupant.Name
	}
	return resp
}

type hotelResponse struct {
	Name         string `json:"name"`
	Rooms        int    `json:"rooms"`
	Reservations int    `json:"reservations"`
}

// ListHotels handles GET /api/hotels.
func (h *Handler) ListHotels(c *gin.Context) {
	hotels := h.chain.Hotels()
	response := make([]hotelResponse, 0, len(hotels))
	for _, ht := range hotels {
		response = append(response, hotelResponse{
			Name:         ht.Name(),
			Rooms:        len(ht.Rooms()),
			Reservations: len(ht.Reservations()),
		})
	}
	c.JSON(http.StatusOK, gin.H{"chain": h.chain.Name(), "hotels": response})
}

// ListRooms handles GET /api/hotels/:hotel/rooms.
func (h *Handler) ListRooms(c *gin.Context) {
	ht, err := h.chain.Hotel(c.Param("hotel"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	rooms := ht.Rooms()
	response := make([]roomResponse, 0, len(rooms))
	for _, v := range rooms {
		response = append(response, newRoomResponse(v))
	}
	c.JSON(http.StatusOK, response)
}

// Availability handles GET /api/hotels/:hotel/availability.
func (h *Handler) Availability(c *gin.Context) {
	start, end, err := parse.ParseDateRange(c.Query("start"), c.Query("end"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	roomType, err := parse.ParseRoomType(c.Query("kind"), c.Query("amount"), c.Query("currency"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	available, err := h.chain.Available(c.Param("hotel"), start, end, roomType)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available": available,
		"start":     start.Format(parse.DateLayout),
		"end":       end.Format(parse.DateLayout),
		"roomType":  roomType,
	})
}
