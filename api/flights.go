package api

import (
	"net/http"

	"github.com/Domenick1991/flynow/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type dateField struct {
	Date string `json:"date"`
}

type legField struct {
	IATA  string `json:"iata"`
	Order int    `json:"order"`
}

type createFlightRequest struct {
	From dateField  `json:"from"`
	To   dateField  `json:"to"`
	Leg  []legField `json:"leg"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.POST("/flight", h.create)
	router.GET("/flights", h.list)
	router.GET("/flight/:id", h.get)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Flight record payload is malformed."})
		return
	}

	legs := make([]flights.LegInput, 0, len(req.Leg))
	for _, l := range req.Leg {
		legs = append(legs, flights.LegInput{IATA: l.IATA, Order: l.Order})
	}

	flight, err := h.service.Create(c.Request.Context(), flights.CreateFlightInput{
		FromDate: req.From.Date,
		ToDate:   req.To.Date,
		Legs:     legs,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"flightRecordId": flight.ID})
}

func (h *FlightHandler) list(c *gin.Context) {
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *FlightHandler) get(c *gin.Context) {
	view, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
