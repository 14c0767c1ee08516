// Package trip defines the travel request aggregate that the wizard
// builds up and the estimator, composer and exporter consume.
package trip

import (
	"strings"
	"time"
)

// TransportType identifies the chosen means of transport.
type TransportType string

const (
	TransportNone  TransportType = "nenhum"
	TransportTrain TransportType = "comboio"
	TransportPlane TransportType = "aviao"
	TransportCar   TransportType = "carro"
)

var validTransportTypes = map[TransportType]bool{
	TransportNone:  true,
	TransportTrain: true,
	TransportPlane: true,
	TransportCar:   true,
}

// IsValid returns true if the transport type is one of the recognized choices.
func (t TransportType) IsValid() bool {
	return validTransportTypes[t]
}

// String returns the string representation of the transport type.
func (t TransportType) String() string {
	return string(t)
}

// Traveler holds the employee identity block. The first six fields are
// mandatory for a request to be considered complete; TaxID and Phone are
// optional.
type Traveler struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	EmployeeID string `json:"employee_id"`
	Department string `json:"department"`
	CostCenter string `json:"cost_center"`
	IDDocument string `json:"id_document"`
	TaxID      string `json:"tax_id,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// Complete reports whether all mandatory traveler fields are filled.
func (t Traveler) Complete() bool {
	for _, field := range []string{
		t.FirstName, t.LastName, t.EmployeeID,
		t.Department, t.CostCenter, t.IDDocument,
	} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}

// Lodging holds the hotel reservation details. CheckIn/CheckOut are
// calendar dates; a zero time means the date has not been chosen yet.
type Lodging struct {
	City     string    `json:"city"`
	Hotel    string    `json:"hotel,omitempty"`
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	RoomType string    `json:"room_type"`
	Notes    string    `json:"notes,omitempty"`
}

// DatesSet reports whether both lodging dates have been chosen.
func (l Lodging) DatesSet() bool {
	return !l.CheckIn.IsZero() && !l.CheckOut.IsZero()
}

// TrainLeg describes one leg of a train journey.
type TrainLeg struct {
	From  string    `json:"from"`
	To    string    `json:"to"`
	Date  time.Time `json:"date"`
	Time  string    `json:"time,omitempty"`
	Class string    `json:"class"`
	Notes string    `json:"notes,omitempty"`
}

// Request is the in-memory aggregate for one authorization email. It is
// built field by field as the user walks through the wizard and consumed
// to produce an email draft, a cost breakdown and a spreadsheet payload.
type Request struct {
	Traveler   Traveler      `json:"traveler"`
	Motive     string        `json:"motive"`
	HasLodging bool          `json:"has_lodging"`
	Lodging    Lodging       `json:"lodging"`
	Transport  TransportType `json:"transport"`
	// Train details, only meaningful when Transport == TransportTrain.
	Outbound  TrainLeg `json:"outbound"`
	HasReturn bool     `json:"has_return"`
	Return    TrainLeg `json:"return"`
}

// NewRequest returns a request prefilled with the usual defaults:
// Lisboa as destination, 1PAX room, the Porto-Lisboa Alfa Pendular
// route in both directions.
func NewRequest() *Request {
	return &Request{
		Transport: TransportNone,
		Lodging: Lodging{
			City:     "Lisboa",
			RoomType: "1PAX",
		},
		Outbound: TrainLeg{
			From:  "Porto Campanha",
			To:    "Lisboa Oriente",
			Class: "Alfa Pendular",
		},
		Return: TrainLeg{
			From:  "Lisboa Oriente",
			To:    "Porto Campanha",
			Class: "Alfa Pendular",
		},
	}
}

// HasTransport reports whether a transport option other than "none" is
// chosen.
func (r *Request) HasTransport() bool {
	return r.Transport != "" && r.Transport != TransportNone
}

// SetRoute updates the outbound stations and mirrors them reversed into
// the return leg, matching how the form keeps both legs consistent.
func (r *Request) SetRoute(from, to string) {
	r.Outbound.From = from
	r.Outbound.To = to
	r.Return.From = to
	r.Return.To = from
}
