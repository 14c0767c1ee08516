// Package estimate derives the cost breakdown for a travel request from
// a fixed rate table. All functions are pure; monetary values stay as
// float64 during accumulation and are rounded to two decimals only when
// displayed.
package estimate

import (
	"time"

	"github.com/dpereira/travel-assistant/internal/domain/trip"
)

// Rates is the canonical rate table. The values are configuration, not
// constants, so an inconsistent source can be corrected in one place.
type Rates struct {
	NightlyRate     float64 // accommodation, per night per person
	CityTaxRate     float64 // city tax, per night per person
	TrainOneWayFare float64
	TrainReturnFare float64
}

// DefaultRates returns the rate table in effect today: 83.30/night
// lodging, 4.00/night city tax, 36.00 one-way / 72.00 round-trip train.
func DefaultRates() Rates {
	return Rates{
		NightlyRate:     83.30,
		CityTaxRate:     4.00,
		TrainOneWayFare: 36.00,
		TrainReturnFare: 72.00,
	}
}

// Breakdown is the cost estimate for one request.
type Breakdown struct {
	Nights        int     `json:"nights"`
	Accommodation float64 `json:"accommodation"`
	CityTax       float64 `json:"city_tax"`
	Transport     float64 `json:"transport"`
	Total         float64 `json:"total"`
}

// Nights returns the number of billable nights between two calendar
// dates: the absolute difference in calendar days, ignoring any
// time-of-day component. A zero value on either side yields 0, so the
// result is always a defined non-negative integer.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	a := midnight(checkIn)
	b := midnight(checkOut)
	days := int(b.Sub(a).Hours() / 24)
	if days < 0 {
		return -days
	}
	return days
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Estimate computes the cost breakdown for a request against a rate
// table. Nights count only when lodging was opted into; only the train
// carries a fixed fare, plane and car are recorded but priced at zero.
func Estimate(req *trip.Request, rates Rates) Breakdown {
	var b Breakdown

	if req.HasLodging {
		b.Nights = Nights(req.Lodging.CheckIn, req.Lodging.CheckOut)
	}
	b.Accommodation = float64(b.Nights) * rates.NightlyRate
	b.CityTax = float64(b.Nights) * rates.CityTaxRate

	if req.Transport == trip.TransportTrain {
		if req.HasReturn {
			b.Transport = rates.TrainReturnFare
		} else {
			b.Transport = rates.TrainOneWayFare
		}
	}

	b.Total = b.Accommodation + b.CityTax + b.Transport
	return b
}
