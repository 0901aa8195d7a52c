package api

import (
	"net/http"

	"github.com/Domenick1991/flynow/internal/domain"
	"github.com/Domenick1991/flynow/internal/service/passengers"
	"github.com/gin-gonic/gin"
)

type PassengerHandler struct {
	service passengers.PassengerUseCase
}

type createPassengerRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Flight      string `json:"flight"`
}

type flightRef struct {
	FlightID string `json:"flightId"`
}

// passengerDetail is the single-record read shape; the list shape carries
// the record id as well.
type passengerDetail struct {
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	DateOfBirth string      `json:"dateOfBirth"`
	Flights     []flightRef `json:"flights"`
}

type passengerItem struct {
	PassengerRecordID string `json:"passengerRecordId"`
	passengerDetail
}

func NewPassengerHandler(service passengers.PassengerUseCase) *PassengerHandler {
	return &PassengerHandler{service: service}
}

func (h *PassengerHandler) Register(router *gin.RouterGroup) {
	router.POST("/passenger", h.create)
	router.GET("/passengers", h.list)
	router.GET("/passenger/:id", h.get)
}

func (h *PassengerHandler) create(c *gin.Context) {
	var req createPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Passenger record payload is malformed."})
		return
	}

	passenger, err := h.service.Create(c.Request.Context(), passengers.CreatePassengerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Flight:      req.Flight,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"passengerRecordId": passenger.ID})
}

func (h *PassengerHandler) list(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]passengerItem, 0, len(records))
	for i := range records {
		items = append(items, passengerItem{
			PassengerRecordID: records[i].ID,
			passengerDetail:   toPassengerDetail(&records[i]),
		})
	}
	c.JSON(http.StatusOK, items)
}

func (h *PassengerHandler) get(c *gin.Context) {
	passenger, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPassengerDetail(passenger))
}

func toPassengerDetail(p *domain.Passenger) passengerDetail {
	refs := make([]flightRef, 0, len(p.FlightIDs))
	for _, id := range p.FlightIDs {
		refs = append(refs, flightRef{FlightID: id})
	}
	return passengerDetail{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth.Format(domain.DateLayout),
		Flights:     refs,
	}
}
