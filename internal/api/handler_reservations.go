package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/internal/domain"
	"hotel-reservation-backend/internal/parse"
)

type roomTypeRequest struct {
	Kind     string `json:"kind" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"required"`
}

type identityRequest struct {
	Type   string `json:"type" binding:"required"`
	Number string `json:"number" binding:"required"`
}

type cardRequest struct {
	Number string `json:"number" binding:"required"`
	Expiry string `json:"expiry" binding:"required"`
	CVV    string `json:"cvv" binding:"required"`
}

type payerRequest struct {
	Identity identityRequest `json:"identity" binding:"required"`
	Card     cardRequest     `json:"card" binding:"required"`
}

type createReservationRequest struct {
	Start    string          `json:"start" binding:"required"`
	End      string          `json:"end" binding:"required"`
	RoomType roomTypeRequest `json:"roomType" binding:"required"`
	Payer    payerRequest    `json:"payer" binding:"required"`
}

// reservationResponse is the JSON view of a reservation. The card is masked
// and the payer id, which push subscriptions are keyed by, is only returned
// to the client that made the booking.
type reservationResponse struct {
	Number     int    `json:"number"`
	RoomNumber int    `json:"roomNumber"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Nights     int    `json:"nights"`
	PayerID    string `json:"payerId,omitempty"`
	Card       string `json:"card"`
}

func newReservationResponse(r domain.Reservation) reservationResponse {
	resp := reservationResponse{
		Number:     r.Number(),
		RoomNumber: r.RoomNumber(),
		Start:      r.Start().Format(parse.DateLayout),
		End:        r.End().Format(parse.DateLayout),
		Nights:     r.Nights(),
	}
	if p := r.Payer(); p != nil {
		resp.Card = p.Card.String()
	}
	return resp
}

// ListReservations handles GET /api/hotels/:hotel/reservations.
func (h *Handler) ListReservations(c *gin.Context) {
	ht, err := h.chain.Hotel(c.Param("hotel"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	reservations := ht.Reservations()
	response := make([]reservationResponse, 0, len(reservations))
	for _, r := range reservations {
		response = append(response, newReservationResponse(r))
	}
	c.JSON(http.StatusOK, response)
}

// CreateReservation handles POST /api/hotels/:hotel/reservations.
func (h *Handler) CreateReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	start, end, err := parse.ParseDateRange(req.Start, req.End)
	if err != nil {
		abortWithError(c, err)
		return
	}
	roomType, err := parse.ParseRoomType(req.RoomType.Kind, req.RoomType.Amount, req.RoomType.Currency)
	if err != nil {
		abortWithError(c, err)
		return
	}
	payer, err := h.payerFrom(req.Payer)
	if err != nil {
		abortWithError(c, err)
		return
	}

	reservation, err := h.chain.MakeReservation(c.Param("hotel"), start, end, roomType, payer)
	if err != nil {
		abortWithError(c, err)
		return
	}
	resp := newReservationResponse(reservation)
	resp.PayerID = payer.ID()
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) payerFrom(req payerRequest) (*domain.ReserverPayer, error) {
	identity, err := domain.NewIdentity(req.Identity.Type, req.Identity.Number)
	if err != nil {
		return nil, err
	}
	card, err := domain.NewCreditCard(req.Card.Number, req.Card.Expiry, req.Card.CVV)
	if err != nil {
		return nil, err
	}
	return h.chain.ReserverPayer(identity, card)
}

// CancelReservation handles DELETE /api/hotels/:hotel/reservations/:number.
func (h *Handler) CancelReservation(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation number"})
		return
	}
	if err := h.chain.CancelReservation(c.Param("hotel"), number); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
