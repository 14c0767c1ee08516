package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTravelerComplete(t *testing.T) {
	traveler := Traveler{
		FirstName:  "Ana",
		LastName:   "Silva",
		EmployeeID: "12345",
		Department: "Engenharia",
		CostCenter: "CC-100",
		IDDocument: "98765432",
	}
	assert.True(t, traveler.Complete())

	// TaxID and Phone are optional.
	traveler.TaxID = ""
	traveler.Phone = ""
	assert.True(t, traveler.Complete())

	// Whitespace does not count as filled.
	traveler.CostCenter = "   "
	assert.False(t, traveler.Complete())

	assert.False(t, Traveler{}.Complete())
}

func TestTransportTypeIsValid(t *testing.T) {
	assert.True(t, TransportNone.IsValid())
	assert.True(t, TransportTrain.IsValid())
	assert.True(t, TransportPlane.IsValid())
	assert.True(t, TransportCar.IsValid())
	assert.False(t, TransportType("autocarro").IsValid())
	assert.False(t, TransportType("").IsValid())
}

func TestHasTransport(t *testing.T) {
	req := NewRequest()
	assert.False(t, req.HasTransport())

	req.Transport = TransportCar
	assert.True(t, req.HasTransport())
}

func TestSetRouteMirrorsReturnLeg(t *testing.T) {
	req := NewRequest()
	req.SetRoute("Braga", "Faro")

	assert.Equal(t, "Braga", req.Outbound.From)
	assert.Equal(t, "Faro", req.Outbound.To)
	assert.Equal(t, "Faro", req.Return.From)
	assert.Equal(t, "Braga", req.Return.To)
}

func TestNewRequestDefaults(t *testing.T) {
	req := NewRequest()

	assert.Equal(t, "Lisboa", req.Lodging.City)
	assert.Equal(t, "1PAX", req.Lodging.RoomType)
	assert.Equal(t, TransportNone, req.Transport)
	assert.Equal(t, "Porto Campanha", req.Outbound.From)
	assert.Equal(t, "Lisboa Oriente", req.Outbound.To)
	assert.Equal(t, "Alfa Pendular", req.Outbound.Class)
	assert.Equal(t, "Lisboa Oriente", req.Return.From)
	assert.False(t, req.Lodging.DatesSet())
}
