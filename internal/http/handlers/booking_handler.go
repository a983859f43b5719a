// README: Booking handler: submission, deep-link response, enquiry link.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"charter/internal/modules/booking"
)

type BookingHandler struct {
	booking *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{booking: svc}
}

type bookingRequestBody struct {
	tripRequestBody
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type bookingResponse struct {
	Summary     string    `json:"summary"`
	WhatsAppURL string    `json:"whatsapp_url"`
	Price       quoteBody `json:"price"`
}

// Submit handles POST /api/bookings.
func (h *BookingHandler) Submit(c *gin.Context) {
	var body bookingRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Name == "" || body.Phone == "" {
		writeError(c, http.StatusBadRequest, "missing name or phone")
		return
	}

	result, err := h.booking.Submit(c.Request.Context(), booking.Enquiry{
		Trip: body.toRequest(),
		Contact: booking.Contact{
			Name:  body.Name,
			Phone: body.Phone,
			Notes: body.Notes,
		},
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, bookingResponse{
		Summary:     result.Summary,
		WhatsAppURL: result.WhatsAppURL,
		Price: quoteBody{
			Display:       result.Quote.Display,
			Tags:          result.Quote.Tags,
			QuoteRequired: result.Quote.QuoteRequired,
		},
	})
}

// EnquiryLink handles GET /api/enquiry; it backs the floating contact button.
func (h *BookingHandler) EnquiryLink(c *gin.Context) {
	writeJSON(c, http.StatusOK, map[string]string{"whatsapp_url": h.booking.GeneralEnquiryURL()})
}
