// README: Quote handler: per-vehicle quotes for the booking wizard.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"charter/internal/maps"
	"charter/internal/modules/fare"
	"charter/internal/modules/fleet"
	"charter/internal/modules/tariff"
)

// estimateTimeout caps the advisory Maps call so a slow upstream cannot
// delay the quote itself for long.
const estimateTimeout = 3 * time.Second

type QuoteHandler struct {
	fleet  *fleet.Service
	routes *maps.RouteService
}

// NewQuoteHandler wires the quote endpoint. routes may be nil when no Maps
// API key is configured.
func NewQuoteHandler(fleetSvc *fleet.Service, routes *maps.RouteService) *QuoteHandler {
	return &QuoteHandler{fleet: fleetSvc, routes: routes}
}

type tripRequestBody struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	TripType string `json:"trip_type"`

	ReturnFrom string `json:"return_from"`
	ReturnTo   string `json:"return_to"`
	ReturnDate string `json:"return_date"`
	ReturnTime string `json:"return_time"`

	DayTripHours int `json:"day_trip_hours"`

	PaxAdults        int `json:"pax_adults"`
	PaxChildren      int `json:"pax_children"`
	LuggageLarge     int `json:"luggage_large"`
	LuggageMedium    int `json:"luggage_medium"`
	LuggageSmall     int `json:"luggage_small"`
	LuggageHandCarry int `json:"luggage_hand_carry"`

	Vehicle string `json:"vehicle"`
}

func (b tripRequestBody) toRequest() fare.Request {
	tripType := fare.TripType(b.TripType)
	if tripType == "" {
		tripType = fare.TripOneWay
	}
	return fare.Request{
		From:             b.From,
		To:               b.To,
		Date:             b.Date,
		Time:             b.Time,
		TripType:         tripType,
		ReturnFrom:       b.ReturnFrom,
		ReturnTo:         b.ReturnTo,
		ReturnDate:       b.ReturnDate,
		ReturnTime:       b.ReturnTime,
		DayTripHours:     b.DayTripHours,
		PaxAdults:        b.PaxAdults,
		PaxChildren:      b.PaxChildren,
		LuggageLarge:     b.LuggageLarge,
		LuggageMedium:    b.LuggageMedium,
		LuggageSmall:     b.LuggageSmall,
		LuggageHandCarry: b.LuggageHandCarry,
		Vehicle:          tariff.VehicleClass(b.Vehicle),
	}
}

type quoteBody struct {
	Display       string   `json:"display"`
	Tags          []string `json:"tags"`
	QuoteRequired bool     `json:"quote_required"`
}

type vehicleOptionBody struct {
	Class       string    `json:"class"`
	MaxPax      int       `json:"max_pax"`
	MaxLuggage  int       `json:"max_luggage"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CapacityOk  bool      `json:"capacity_ok"`
	Price       quoteBody `json:"price"`
}

type estimateBody struct {
	DurationMinutes int    `json:"duration_minutes"`
	Distance        string `json:"distance"`
}

type quoteResponse struct {
	Vehicles []vehicleOptionBody `json:"vehicles"`
	Estimate *estimateBody       `json:"estimate,omitempty"`
}

// Quote handles POST /api/quotes. It is called on every wizard change, so
// incomplete requests are quoted as neutral rather than rejected.
func (h *QuoteHandler) Quote(c *gin.Context) {
	var body tripRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req := body.toRequest()

	options := h.fleet.EligibleVehicles(req)
	resp := quoteResponse{Vehicles: make([]vehicleOptionBody, 0, len(options))}
	for _, opt := range options {
		resp.Vehicles = append(resp.Vehicles, vehicleOptionBody{
			Class:       string(opt.Spec.Class),
			MaxPax:      opt.Spec.MaxPax,
			MaxLuggage:  opt.Spec.MaxLuggage,
			Description: opt.Spec.Description,
			Image:       opt.Spec.Image,
			CapacityOk:  opt.CapacityOk,
			Price: quoteBody{
				Display:       opt.Quote.Display,
				Tags:          opt.Quote.Tags,
				QuoteRequired: opt.Quote.QuoteRequired,
			},
		})
	}

	resp.Estimate = h.travelEstimate(c.Request.Context(), req)
	writeJSON(c, http.StatusOK, resp)
}

// travelEstimate is advisory only; any failure just omits it.
func (h *QuoteHandler) travelEstimate(ctx context.Context, req fare.Request) *estimateBody {
	if h.routes == nil || req.From == "" || req.To == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, estimateTimeout)
	defer cancel()

	est, err := h.routes.GetTravelEstimate(ctx, req.From, req.To)
	if err != nil {
		return nil
	}
	return &estimateBody{
		DurationMinutes: int(est.Duration.Minutes()),
		Distance:        est.Distance,
	}
}
