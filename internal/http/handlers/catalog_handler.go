// README: Catalog handler: locations, vehicle specs, published rate card.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"charter/internal/modules/fare"
	"charter/internal/modules/tariff"
)

type CatalogHandler struct {
	tariffs *tariff.Service
	fares   *fare.Service
}

func NewCatalogHandler(tariffs *tariff.Service, fares *fare.Service) *CatalogHandler {
	return &CatalogHandler{tariffs: tariffs, fares: fares}
}

// Locations handles GET /api/locations.
func (h *CatalogHandler) Locations(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]any{"locations": h.tariffs.Locations()})
}

type vehicleBody struct {
	Class       string `json:"class"`
	MaxPax      int    `json:"max_pax"`
	MaxLuggage  int    `json:"max_luggage"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Vehicles handles GET /api/vehicles.
func (h *CatalogHandler) Vehicles(c *gin.Context) {
	specs := h.tariffs.Vehicles()
	out := make([]vehicleBody, 0, len(specs))
	for _, v := range specs {
		out = append(out, vehicleBody{
			Class:       string(v.Class),
			MaxPax:      v.MaxPax,
			MaxLuggage:  v.MaxLuggage,
			Description: v.Description,
			Image:       v.Image,
		})
	}
	writeJSON(c, http.StatusOK, map[string]any{"vehicles": out})
}

type rateRowBody struct {
	From     string           `json:"from"`
	To       string           `json:"to"`
	Currency string           `json:"currency"`
	Prices   map[string]int64 `json:"prices"`
}

// Routes handles GET /api/routes; the data behind the public price table.
func (h *CatalogHandler) Routes(c *gin.Context) {
	rows := h.fares.RateCard()
	out := make([]rateRowBody, 0, len(rows))
	for _, row := range rows {
		prices := make(map[string]int64, len(row.Prices))
		for class, p := range row.Prices {
			prices[string(class)] = p
		}
		out = append(out, rateRowBody{
			From:     row.From,
			To:       row.To,
			Currency: row.Currency,
			Prices:   prices,
		})
	}
	writeJSON(c, http.StatusOK, map[string]any{"routes": out})
}
