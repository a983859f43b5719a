// README: Booking service: summary assembly, deep links, fire-and-forget dispatch.
package booking

import (
	"context"
	"net/url"
	"strings"

	"charter/internal/modules/fare"
)

// SheetLogger receives a copy of each enquiry. Implementations must swallow
// their own errors; a dead logging endpoint never blocks a booking.
type SheetLogger interface {
	LogBooking(ctx context.Context, entry LogEntry)
}

// ConversionTracker fires an analytics signal on submission.
type ConversionTracker interface {
	Track(ctx context.Context)
}

type Service struct {
	fares   *fare.Service
	number  string
	sheet   SheetLogger
	tracker ConversionTracker
}

// NewService wires the booking flow. sheet and tracker may be nil when the
// corresponding endpoint is not configured.
func NewService(fares *fare.Service, whatsAppNumber string, sheet SheetLogger, tracker ConversionTracker) *Service {
	return &Service{fares: fares, number: whatsAppNumber, sheet: sheet, tracker: tracker}
}

// Submit turns a completed enquiry into a summary and deep link, and
// dispatches the log and conversion calls in the background. The dispatched
// calls get a fresh context: the HTTP request that triggered them will be
// long gone by the time they finish.
func (s *Service) Submit(ctx context.Context, enq Enquiry) (Result, error) {
	req := enq.Trip
	if req.TripType == fare.TripMultiStop {
		return s.submitCustom(enq)
	}
	if req.From == "" || req.To == "" || req.Vehicle == "" {
		return Result{}, ErrBadRequest
	}

	if req.TripType == fare.TripRoundTrip {
		if req.ReturnFrom == "" {
			req.ReturnFrom = enq.Trip.To
		}
		if req.ReturnTo == "" {
			req.ReturnTo = enq.Trip.From
		}
		if req.ReturnDate == "" {
			req.ReturnDate = enq.Trip.Date
		}
	}

	quote := s.fares.PriceTrip(req, req.Vehicle)
	returnTime := s.fares.ReturnTime(req)
	summary := enquiryMessage(Enquiry{Trip: req, Contact: enq.Contact}, quote, returnTime)

	s.dispatch(func(bg context.Context) {
		if s.sheet != nil {
			s.sheet.LogBooking(bg, buildLogEntry(req, enq.Contact, quote, returnTime))
		}
		if s.tracker != nil {
			s.tracker.Track(bg)
		}
	})

	return Result{
		Summary:     summary,
		WhatsAppURL: s.deepLink(summary),
		Quote:       quote,
	}, nil
}

func (s *Service) submitCustom(enq Enquiry) (Result, error) {
	quote := s.fares.PriceTrip(enq.Trip, enq.Trip.Vehicle)
	summary := customEnquiryMessage(enq.Trip)

	s.dispatch(func(bg context.Context) {
		if s.tracker != nil {
			s.tracker.Track(bg)
		}
	})

	return Result{
		Summary:     summary,
		WhatsAppURL: s.deepLink(summary),
		Quote:       quote,
	}, nil
}

// GeneralEnquiryURL is the deep link behind the floating contact button.
func (s *Service) GeneralEnquiryURL() string {
	return s.deepLink(generalEnquiryMessage())
}

func (s *Service) deepLink(msg string) string {
	return "https://wa.me/" + s.number + "?text=" + url.QueryEscape(msg)
}

func (s *Service) dispatch(fn func(ctx context.Context)) {
	go fn(context.Background())
}

func buildLogEntry(req fare.Request, contact Contact, quote fare.Quote, returnTime string) LogEntry {
	entry := LogEntry{
		TripType:    string(req.TripType),
		From:        req.From,
		To:          req.To,
		Date:        req.Date,
		Time:        req.Time,
		Vehicle:     string(req.Vehicle),
		PaxAdults:   req.PaxAdults,
		PaxChildren: req.PaxChildren,
		Luggage:     luggageSummary(req),
		Price:       quote.Display,
		Tags:        strings.Join(quote.Tags, ", "),
		Name:        contact.Name,
		Phone:       contact.Phone,
		Notes:       contact.Notes,
	}
	if req.TripType == fare.TripRoundTrip {
		entry.ReturnFrom = req.ReturnFrom
		entry.ReturnTo = req.ReturnTo
		entry.ReturnDate = req.ReturnDate
		entry.ReturnTime = returnTime
	}
	return entry
}
