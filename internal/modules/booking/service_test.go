// README: Booking service tests (summary text, deep links, dispatch).
package booking

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"charter/internal/config"
	"charter/internal/modules/fare"
	"charter/internal/modules/tariff"
)

type stubSheet struct {
	entries chan LogEntry
}

func (s *stubSheet) LogBooking(_ context.Context, entry LogEntry) {
	s.entries <- entry
}

type stubTracker struct {
	fired chan struct{}
}

func (s *stubTracker) Track(_ context.Context) {
	s.fired <- struct{}{}
}

func newTestService(t *testing.T, sheet SheetLogger, tracker ConversionTracker) *Service {
	t.Helper()
	tariffs := tariff.NewService(context.Background(), nil)
	fares := fare.NewService(tariffs, config.FareConfig{ExchangeRate: 3.2, PeakMultiplier: 1.30})
	return NewService(fares, "60188706966", sheet, tracker)
}

func oneWayEnquiry() Enquiry {
	return Enquiry{
		Trip: fare.Request{
			From: "Singapore - Changi Airport", To: "Johor Bahru - City / JB Sentral",
			Date: "2030-06-15", Time: "09:00", TripType: fare.TripOneWay,
			PaxAdults: 2, LuggageLarge: 1, LuggageHandCarry: 1,
			Vehicle: tariff.Sedan,
		},
		Contact: Contact{Name: "Jason", Phone: "+65 9123 4567"},
	}
}

func TestSubmit_OneWay(t *testing.T) {
	sheet := &stubSheet{entries: make(chan LogEntry, 1)}
	tracker := &stubTracker{fired: make(chan struct{}, 1)}
	svc := newTestService(t, sheet, tracker)

	result, err := svc.Submit(context.Background(), oneWayEnquiry())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	for _, want := range []string{
		"*New Booking Enquiry*",
		"*Trip Type:* One Way",
		"*From:* Singapore - Changi Airport",
		"*Est. Price:* SGD 88",
		"*Name:* Jason",
		"*Luggage:* 1 Large (28\"), 1 Hand Carry",
		"*Notes:* None",
	} {
		if !strings.Contains(result.Summary, want) {
			t.Errorf("summary missing %q:\n%s", want, result.Summary)
		}
	}
	if strings.Contains(result.Summary, "*Return Trip:*") {
		t.Error("one-way summary should not contain a return block")
	}

	select {
	case entry := <-sheet.entries:
		if entry.Price != "SGD 88" || entry.Name != "Jason" {
			t.Errorf("log entry = %+v", entry)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("sheet log was never dispatched")
	}
	select {
	case <-tracker.fired:
	case <-time.After(2 * time.Second):
		t.Fatal("conversion ping was never dispatched")
	}
}

func TestSubmit_DeepLinkEscaped(t *testing.T) {
	svc := newTestService(t, nil, nil)

	result, err := svc.Submit(context.Background(), oneWayEnquiry())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	const prefix = "https://wa.me/60188706966?text="
	if !strings.HasPrefix(result.WhatsAppURL, prefix) {
		t.Fatalf("url = %q, want prefix %q", result.WhatsAppURL, prefix)
	}
	encoded := strings.TrimPrefix(result.WhatsAppURL, prefix)
	if strings.ContainsAny(encoded, " \n*") {
		t.Errorf("deep link text is not escaped: %q", encoded)
	}
	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		t.Fatalf("unescape: %v", err)
	}
	if decoded != result.Summary {
		t.Error("decoded deep link text does not round-trip to the summary")
	}
}

func TestSubmit_RoundTripDefaultsReturnLeg(t *testing.T) {
	sheet := &stubSheet{entries: make(chan LogEntry, 1)}
	svc := newTestService(t, sheet, nil)

	enq := oneWayEnquiry()
	enq.Trip.TripType = fare.TripRoundTrip

	result, err := svc.Submit(context.Background(), enq)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	for _, want := range []string{
		"*Return Trip:*",
		"*From:* Johor Bahru - City / JB Sentral",
		"*Date:* 2030-06-15 @ 12:00",
		"*Est. Price:* SGD 176",
	} {
		if !strings.Contains(result.Summary, want) {
			t.Errorf("summary missing %q:\n%s", want, result.Summary)
		}
	}

	select {
	case entry := <-sheet.entries:
		if entry.ReturnFrom != "Johor Bahru - City / JB Sentral" ||
			entry.ReturnTo != "Singapore - Changi Airport" ||
			entry.ReturnDate != "2030-06-15" || entry.ReturnTime != "12:00" {
			t.Errorf("return defaults not applied: %+v", entry)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("sheet log was never dispatched")
	}
}

func TestSubmit_MultiStop(t *testing.T) {
	svc := newTestService(t, nil, nil)

	result, err := svc.Submit(context.Background(), Enquiry{
		Trip: fare.Request{TripType: fare.TripMultiStop, From: "Singapore - City / Hotel"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !strings.Contains(result.Summary, "*Custom / Multi-Trip Enquiry*") {
		t.Errorf("summary = %q", result.Summary)
	}
	if !strings.Contains(result.Summary, "*Start Location:* Singapore - City / Hotel") {
		t.Errorf("summary missing start location:\n%s", result.Summary)
	}
	if !strings.Contains(result.Summary, "*Date:* Not specified") {
		t.Errorf("summary should mark the missing date:\n%s", result.Summary)
	}
	if !result.Quote.QuoteRequired || result.Quote.Display != "Custom Quote" {
		t.Errorf("quote = %+v", result.Quote)
	}
}

func TestSubmit_RejectsIncompleteStandardBooking(t *testing.T) {
	svc := newTestService(t, nil, nil)

	enq := oneWayEnquiry()
	enq.Trip.Vehicle = ""
	if _, err := svc.Submit(context.Background(), enq); err != ErrBadRequest {
		t.Errorf("err = %v, want ErrBadRequest", err)
	}

	enq = oneWayEnquiry()
	enq.Trip.To = ""
	if _, err := svc.Submit(context.Background(), enq); err != ErrBadRequest {
		t.Errorf("err = %v, want ErrBadRequest", err)
	}
}

func TestGeneralEnquiryURL(t *testing.T) {
	svc := newTestService(t, nil, nil)

	u := svc.GeneralEnquiryURL()
	if !strings.HasPrefix(u, "https://wa.me/60188706966?text=") {
		t.Errorf("url = %q", u)
	}
	decoded, err := url.QueryUnescape(strings.TrimPrefix(u, "https://wa.me/60188706966?text="))
	if err != nil {
		t.Fatalf("unescape: %v", err)
	}
	if !strings.Contains(decoded, "Private Chauffeur & Transfer Service") {
		t.Errorf("decoded = %q", decoded)
	}
}
