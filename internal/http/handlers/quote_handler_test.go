// README: Handler tests for the quote endpoint.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"charter/internal/config"
	"charter/internal/http/handlers"
	"charter/internal/modules/fare"
	"charter/internal/modules/fleet"
	"charter/internal/modules/tariff"
)

// buildQuoteRouter wires a minimal engine with the quote handler and no maps
// client, matching the default deployment.
func buildQuoteRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tariffs := tariff.NewService(context.Background(), nil)
	fares := fare.NewService(tariffs, config.FareConfig{ExchangeRate: 3.2, PeakMultiplier: 1.30})
	fleetSvc := fleet.NewService(tariffs, fares)

	r := gin.New()
	h := handlers.NewQuoteHandler(fleetSvc, nil)
	r.POST("/api/quotes", h.Quote)
	return r
}

type quoteRespBody struct {
	Vehicles []struct {
		Class      string `json:"class"`
		CapacityOk bool   `json:"capacity_ok"`
		Price      struct {
			Display       string   `json:"display"`
			Tags          []string `json:"tags"`
			QuoteRequired bool     `json:"quote_required"`
		} `json:"price"`
	} `json:"vehicles"`
	Estimate *struct{} `json:"estimate"`
}

func postQuote(t *testing.T, r *gin.Engine, payload map[string]any) (*httptest.ResponseRecorder, quoteRespBody) {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp quoteRespBody
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return w, resp
}

func TestQuote_OneWay(t *testing.T) {
	r := buildQuoteRouter(t)

	w, resp := postQuote(t, r, map[string]any{
		"from":          "Singapore - Changi Airport",
		"to":            "Johor Bahru - City / JB Sentral",
		"date":          "2030-06-15",
		"time":          "09:00",
		"trip_type":     "one-way",
		"pax_adults":    2,
		"luggage_large": 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(resp.Vehicles) != 4 {
		t.Fatalf("got %d vehicles, want 4", len(resp.Vehicles))
	}
	sedan := resp.Vehicles[0]
	if sedan.Class != string(tariff.Sedan) {
		t.Errorf("first vehicle = %s, want sedan (catalog order)", sedan.Class)
	}
	if !sedan.CapacityOk {
		t.Error("sedan should fit 2 pax / 1 large bag")
	}
	if sedan.Price.Display != "SGD 88" || sedan.Price.QuoteRequired {
		t.Errorf("sedan price = %+v", sedan.Price)
	}
	if resp.Estimate != nil {
		t.Error("estimate should be omitted without a maps client")
	}
}

func TestQuote_IncompleteFormIsNeutral(t *testing.T) {
	r := buildQuoteRouter(t)

	// The wizard quotes continuously; a half-filled form must not error.
	w, resp := postQuote(t, r, map[string]any{"from": "Singapore - Changi Airport"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	for _, v := range resp.Vehicles {
		if v.Price.QuoteRequired {
			t.Errorf("%s: incomplete form should not require a quote", v.Class)
		}
	}
}

func TestQuote_PeakLongDistance(t *testing.T) {
	r := buildQuoteRouter(t)

	w, resp := postQuote(t, r, map[string]any{
		"from":      "Johor Bahru - City / JB Sentral",
		"to":        "Kuala Lumpur - City Center",
		"date":      "2024-12-25",
		"trip_type": "one-way",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	for _, v := range resp.Vehicles {
		if !v.Price.QuoteRequired {
			t.Errorf("%s: peak long-distance should require a quote", v.Class)
		}
		if len(v.Price.Tags) != 1 || v.Price.Tags[0] != "Peak Season Demand" {
			t.Errorf("%s: tags = %v", v.Class, v.Price.Tags)
		}
	}
}

func TestQuote_InvalidJSON(t *testing.T) {
	r := buildQuoteRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/quotes", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
