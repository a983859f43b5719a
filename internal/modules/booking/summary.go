// README: Enquiry message formatting for the WhatsApp deep link.
package booking

import (
	"fmt"
	"strings"

	"charter/internal/modules/fare"
)

func tripTypeLabel(t fare.TripType) string {
	switch t {
	case fare.TripRoundTrip:
		return "Round Trip"
	case fare.TripDayTrip:
		return "Day Charter"
	case fare.TripMultiStop:
		return "Multi-Stop"
	default:
		return "One Way"
	}
}

// luggageSummary renders the bag counts as a compact human-readable list.
func luggageSummary(req fare.Request) string {
	var parts []string
	if req.LuggageLarge > 0 {
		parts = append(parts, fmt.Sprintf("%d Large (28\")", req.LuggageLarge))
	}
	if req.LuggageMedium > 0 {
		parts = append(parts, fmt.Sprintf("%d Med (24\")", req.LuggageMedium))
	}
	if req.LuggageSmall > 0 {
		parts = append(parts, fmt.Sprintf("%d Small (20\")", req.LuggageSmall))
	}
	if req.LuggageHandCarry > 0 {
		parts = append(parts, fmt.Sprintf("%d Hand Carry", req.LuggageHandCarry))
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}

// enquiryMessage builds the booking summary text in the widget's format.
func enquiryMessage(enq Enquiry, quote fare.Quote, returnTime string) string {
	req := enq.Trip

	priceDisplay := quote.Display
	if quote.QuoteRequired {
		priceDisplay = "Quote Required"
	}

	var b strings.Builder
	b.WriteString("*New Booking Enquiry*\n")
	b.WriteString("-------------------\n")
	fmt.Fprintf(&b, "*Trip Type:* %s\n\n", tripTypeLabel(req.TripType))
	b.WriteString("*Outbound Trip:*\n")
	fmt.Fprintf(&b, "*From:* %s\n", req.From)
	fmt.Fprintf(&b, "*To:* %s\n", req.To)
	fmt.Fprintf(&b, "*Date:* %s @ %s\n", req.Date, req.Time)

	if req.TripType == fare.TripRoundTrip {
		b.WriteString("\n*Return Trip:*\n")
		fmt.Fprintf(&b, "*From:* %s\n", req.ReturnFrom)
		fmt.Fprintf(&b, "*To:* %s\n", req.ReturnTo)
		fmt.Fprintf(&b, "*Date:* %s @ %s\n", req.ReturnDate, returnTime)
	}

	fmt.Fprintf(&b, "\n*Vehicle:* %s\n", req.Vehicle)
	fmt.Fprintf(&b, "*Pax:* %d Adults, %d Children\n", req.PaxAdults, req.PaxChildren)
	fmt.Fprintf(&b, "*Luggage:* %s\n\n", luggageSummary(req))
	fmt.Fprintf(&b, "*Est. Price:* %s\n", priceDisplay)
	if len(quote.Tags) > 0 {
		fmt.Fprintf(&b, "*Notes:* Includes %s\n", strings.Join(quote.Tags, ", "))
	}
	b.WriteString("-------------------\n")
	fmt.Fprintf(&b, "*Name:* %s\n", enq.Contact.Name)
	notes := enq.Contact.Notes
	if notes == "" {
		notes = "None"
	}
	fmt.Fprintf(&b, "*Notes:* %s", notes)
	return b.String()
}

// customEnquiryMessage is the shorter form for multi-stop itineraries.
func customEnquiryMessage(req fare.Request) string {
	from := req.From
	if from == "" {
		from = "Not specified"
	}
	date := req.Date
	if date == "" {
		date = "Not specified"
	}

	var b strings.Builder
	b.WriteString("*Custom / Multi-Trip Enquiry*\n")
	b.WriteString("-------------------\n")
	b.WriteString("Hi, I have a multi-stop or complex itinerary (more than 2 trips).\n\n")
	b.WriteString("*Rough Details:*\n")
	fmt.Fprintf(&b, "*Start Location:* %s\n", from)
	fmt.Fprintf(&b, "*Date:* %s\n\n", date)
	b.WriteString("Please assist with a quote.")
	return b.String()
}

// generalEnquiryMessage backs the floating contact button on the site.
func generalEnquiryMessage() string {
	var b strings.Builder
	b.WriteString("Hi, I'm interested in your Private Chauffeur & Transfer Service.\n\n")
	b.WriteString("My Trip Details:\n")
	b.WriteString("Date: \n")
	b.WriteString("Pickup: \n")
	b.WriteString("Destination: \n")
	b.WriteString("Pax: ")
	return b.String()
}
