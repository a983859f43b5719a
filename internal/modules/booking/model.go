// README: Booking domain types: enquiry payloads handed to outbound channels.
package booking

import (
	"errors"

	"charter/internal/modules/fare"
)

var ErrBadRequest = errors.New("bad request")

type Contact struct {
	Name  string
	Phone string
	Notes string
}

// Enquiry is a completed wizard submission. It is never persisted; it is
// serialized for the messaging deep link and the optional sheet log.
type Enquiry struct {
	Trip    fare.Request
	Contact Contact
}

// Result is returned to the wizard so it can open the deep link itself.
type Result struct {
	Summary     string
	WhatsAppURL string
	Quote       fare.Quote
}

// LogEntry is the JSON shape posted to the sheet logging endpoint.
type LogEntry struct {
	TripType    string `json:"trip_type"`
	From        string `json:"from"`
	To          string `json:"to"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	ReturnFrom  string `json:"return_from,omitempty"`
	ReturnTo    string `json:"return_to,omitempty"`
	ReturnDate  string `json:"return_date,omitempty"`
	ReturnTime  string `json:"return_time,omitempty"`
	Vehicle     string `json:"vehicle"`
	PaxAdults   int    `json:"pax_adults"`
	PaxChildren int    `json:"pax_children"`
	Luggage     string `json:"luggage"`
	Price       string `json:"price"`
	Tags        string `json:"tags,omitempty"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Notes       string `json:"notes,omitempty"`
}
