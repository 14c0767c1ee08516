// Package compose renders the Portuguese approval email for a travel
// request. Composition is a pure function of the request and its cost
// breakdown, so regenerating the preview on every field change is cheap
// and always yields byte-identical output for identical input.
package compose

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dpereira/travel-assistant/internal/domain/trip"
	"github.com/dpereira/travel-assistant/internal/estimate"
)

// Subject is the fixed subject line of every request email.
const Subject = "Pedido de Viagem"

// defaultCity is substituted when no destination city has been set.
const defaultCity = "Picoas"

// Draft is a composed email ready to be handed to a mail client.
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

var months = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatDate renders a date as the pt-PT long form used in the email,
// e.g. "10 de março".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s", t.Day(), months[t.Month()-1])
}

// formatRate renders a per-night rate with the comma decimal separator
// the email uses for rates (computed totals keep the dot).
func formatRate(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

// Compose builds the email draft for a request. Missing fields degrade
// to placeholder text rather than failing; the function never errors.
func Compose(req *trip.Request, b estimate.Breakdown, rates estimate.Rates) Draft {
	checkIn := "[Data início]"
	if !req.Lodging.CheckIn.IsZero() {
		checkIn = FormatDate(req.Lodging.CheckIn)
	}
	checkOut := "[Data fim]"
	if !req.Lodging.CheckOut.IsZero() {
		checkOut = FormatDate(req.Lodging.CheckOut)
	}

	city := req.Lodging.City
	if city == "" {
		city = defaultCity
	}

	hasLodging := req.HasLodging && req.Lodging.DatesSet()
	hasTransport := req.HasTransport()

	var opening string
	switch {
	case hasLodging && hasTransport:
		opening = fmt.Sprintf("No seguimento da %s, solicito o OK para pedir estadia e viagem para %s de %s a %s.",
			req.Motive, city, checkIn, checkOut)
	case hasLodging:
		opening = fmt.Sprintf("No seguimento da %s, solicito o OK para pedir estadia para %s de %s a %s.",
			req.Motive, city, checkIn, checkOut)
	case hasTransport:
		opening = fmt.Sprintf("No seguimento da %s, solicito o OK para pedir viagem para %s.",
			req.Motive, city)
	default:
		opening = fmt.Sprintf("No seguimento da %s, solicito o OK para pedir autorização para %s.",
			req.Motive, city)
	}

	var sb strings.Builder
	sb.WriteString("Olá Paulo,\n\n")
	sb.WriteString(opening)
	sb.WriteString("\n\n")

	if b.Nights > 0 {
		fmt.Fprintf(&sb, "Estadia: %s Eur / noite / pessoa %.2f€\n", formatRate(rates.NightlyRate), b.Accommodation)
		fmt.Fprintf(&sb, "City Tax: %s Eur / noite / pessoa %.2f€", formatRate(rates.CityTaxRate), b.CityTax)
	}
	if b.Transport > 0 {
		journey := "apenas ida"
		if req.HasReturn {
			journey = "ida e volta"
		}
		fmt.Fprintf(&sb, "\nComboio %.0f Eur (%s)", b.Transport, journey)
	}

	fmt.Fprintf(&sb, "\n \nTotal: %.2f€\n \n", b.Total)
	sb.WriteString("Obrigado desde já,\nOs meus cumprimentos,\n\n")
	fmt.Fprintf(&sb, "%s %s", req.Traveler.FirstName, req.Traveler.LastName)

	return Draft{Subject: Subject, Body: sb.String()}
}

// MailtoURL builds the mailto: URI that opens the draft in the user's
// mail client. The final payload is whatever text the user left in the
// preview, so the body is passed in rather than regenerated.
func MailtoURL(subject, body string) string {
	return fmt.Sprintf("mailto:?subject=%s&body=%s", escape(subject), escape(body))
}

// escape mirrors encodeURIComponent: query escaping with spaces as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
