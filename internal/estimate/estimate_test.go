package estimate

import (
	"testing"
	"time"

	"github.com/dpereira/travel-assistant/internal/domain/trip"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "two nights",
			checkIn:  date(2025, time.March, 10),
			checkOut: date(2025, time.March, 12),
			want:     2,
		},
		{
			name:     "same day is zero nights",
			checkIn:  date(2025, time.March, 10),
			checkOut: date(2025, time.March, 10),
			want:     0,
		},
		{
			name:     "reversed dates yield the same count",
			checkIn:  date(2025, time.March, 12),
			checkOut: date(2025, time.March, 10),
			want:     2,
		},
		{
			name:     "time of day is ignored",
			checkIn:  time.Date(2025, time.March, 10, 23, 30, 0, 0, time.UTC),
			checkOut: time.Date(2025, time.March, 12, 0, 15, 0, 0, time.UTC),
			want:     2,
		},
		{
			name:     "missing check-in",
			checkOut: date(2025, time.March, 12),
			want:     0,
		},
		{
			name:    "missing check-out",
			checkIn: date(2025, time.March, 10),
			want:    0,
		},
		{
			name:     "across month boundary",
			checkIn:  date(2025, time.January, 30),
			checkOut: date(2025, time.February, 2),
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestEstimate_LodgingOnly(t *testing.T) {
	req := trip.NewRequest()
	req.HasLodging = true
	req.Lodging.CheckIn = date(2025, time.March, 10)
	req.Lodging.CheckOut = date(2025, time.March, 12)

	b := Estimate(req, DefaultRates())

	assert.Equal(t, 2, b.Nights)
	assert.InDelta(t, 166.60, b.Accommodation, 0.001)
	assert.InDelta(t, 8.00, b.CityTax, 0.001)
	assert.Equal(t, 0.0, b.Transport)
	assert.InDelta(t, 174.60, b.Total, 0.001)
}

func TestEstimate_TrainFares(t *testing.T) {
	tests := []struct {
		name      string
		hasReturn bool
		want      float64
	}{
		{name: "one way", hasReturn: false, want: 36.00},
		{name: "round trip", hasReturn: true, want: 72.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := trip.NewRequest()
			req.Transport = trip.TransportTrain
			req.HasReturn = tt.hasReturn

			b := Estimate(req, DefaultRates())

			assert.Equal(t, tt.want, b.Transport)
			assert.Equal(t, tt.want, b.Total)
		})
	}
}

func TestEstimate_OtherTransportPricedAtZero(t *testing.T) {
	for _, transport := range []trip.TransportType{trip.TransportPlane, trip.TransportCar} {
		req := trip.NewRequest()
		req.Transport = transport

		b := Estimate(req, DefaultRates())

		assert.Equal(t, 0.0, b.Transport, "transport %s", transport)
		assert.Equal(t, 0.0, b.Total)
	}
}

func TestEstimate_LodgingDatesIgnoredWithoutOptIn(t *testing.T) {
	req := trip.NewRequest()
	req.HasLodging = false
	req.Lodging.CheckIn = date(2025, time.March, 10)
	req.Lodging.CheckOut = date(2025, time.March, 12)

	b := Estimate(req, DefaultRates())

	assert.Equal(t, 0, b.Nights)
	assert.Equal(t, 0.0, b.Total)
}

func TestEstimate_EmptyRequest(t *testing.T) {
	b := Estimate(trip.NewRequest(), DefaultRates())
	assert.Equal(t, Breakdown{}, b)
}
