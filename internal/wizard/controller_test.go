package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/dpereira/travel-assistant/internal/domain/trip"
	"github.com/stretchr/testify/assert"
)

func completeTraveler() trip.Traveler {
	return trip.Traveler{
		FirstName:  "Ana",
		LastName:   "Silva",
		EmployeeID: "12345",
		Department: "Engenharia",
		CostCenter: "CC-100",
		IDDocument: "98765432",
	}
}

func TestController_NextBlockedByIncompleteStep(t *testing.T) {
	req := trip.NewRequest()
	c := NewController(req)

	// Traveler profile empty: Next is a no-op.
	c.Next(context.Background())
	assert.Equal(t, StepStart, c.Current())

	req.Traveler = completeTraveler()
	c.Next(context.Background())
	assert.Equal(t, StepMotive, c.Current())

	// Motive empty, including whitespace-only.
	req.Motive = "   "
	c.Next(context.Background())
	assert.Equal(t, StepMotive, c.Current())

	req.Motive = "formação"
	c.Next(context.Background())
	assert.Equal(t, StepTransport, c.Current())
}

func TestController_TrainDetailsSkippedWithoutTrain(t *testing.T) {
	req := trip.NewRequest()
	req.Traveler = completeTraveler()
	req.Motive = "formação"
	req.Transport = trip.TransportPlane

	c := NewController(req)
	assert.NotContains(t, c.EffectiveSequence(), StepTrainDetails)
	assert.Equal(t, 6, c.TotalSteps())

	c.Next(context.Background())
	c.Next(context.Background())
	assert.Equal(t, StepTransport, c.Current())

	// Plane chosen: transport leads straight to lodging.
	c.Next(context.Background())
	assert.Equal(t, StepLodging, c.Current())
}

func TestController_TrainDetailsIncludedForTrain(t *testing.T) {
	req := trip.NewRequest()
	req.Traveler = completeTraveler()
	req.Motive = "formação"
	req.Transport = trip.TransportTrain

	c := NewController(req)
	assert.Contains(t, c.EffectiveSequence(), StepTrainDetails)
	assert.Equal(t, 7, c.TotalSteps())

	assert.NoError(t, c.GoTo(StepTransport))
	c.Next(context.Background())
	assert.Equal(t, StepTrainDetails, c.Current())

	// Outbound date not chosen yet: stuck here.
	c.Next(context.Background())
	assert.Equal(t, StepTrainDetails, c.Current())

	req.Outbound.Date = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	c.Next(context.Background())
	assert.Equal(t, StepLodging, c.Current())
}

func TestController_CurrentStepFilteredOutFallsForward(t *testing.T) {
	req := trip.NewRequest()
	req.Traveler = completeTraveler()
	req.Motive = "formação"
	req.Transport = trip.TransportTrain

	c := NewController(req)
	assert.NoError(t, c.GoTo(StepTrainDetails))

	// Switching away from the train removes the step under our feet; the
	// wizard resolves to the next applicable one.
	req.Transport = trip.TransportCar
	assert.Equal(t, 4, c.StepNumber()) // hotel is 4th of 6
	c.Previous(context.Background())
	assert.Equal(t, StepTransport, c.Current())
}

func TestController_PreviousIsUnguarded(t *testing.T) {
	req := trip.NewRequest()
	c := NewController(req)
	assert.NoError(t, c.GoTo(StepDates))

	c.Previous(context.Background())
	assert.Equal(t, StepLodging, c.Current())
	c.Previous(context.Background())
	assert.Equal(t, StepTransport, c.Current())
}

func TestController_PreviousOnFirstStepStays(t *testing.T) {
	c := NewController(trip.NewRequest())
	c.Previous(context.Background())
	assert.Equal(t, StepStart, c.Current())
}

func TestController_NextOnLastStepStays(t *testing.T) {
	req := trip.NewRequest()
	req.Traveler = completeTraveler()
	req.Motive = "formação"
	c := NewController(req)
	assert.NoError(t, c.GoTo(StepPreview))

	c.Next(context.Background())
	assert.Equal(t, StepPreview, c.Current())
}

func TestController_GoToUnknownStep(t *testing.T) {
	c := NewController(trip.NewRequest())
	err := c.GoTo(Step("resumo"))
	assert.ErrorIs(t, err, ErrUnknownStep)
	assert.Equal(t, StepStart, c.Current())
}

func TestController_DatesGuardOnlyWithLodging(t *testing.T) {
	req := trip.NewRequest()
	req.Traveler = completeTraveler()
	req.Motive = "formação"
	req.HasLodging = true

	c := NewController(req)
	assert.NoError(t, c.GoTo(StepDates))

	c.Next(context.Background())
	assert.Equal(t, StepDates, c.Current())

	req.Lodging.CheckIn = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	req.Lodging.CheckOut = time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	c.Next(context.Background())
	assert.Equal(t, StepPreview, c.Current())

	// Without lodging the dates step is a pass-through.
	req2 := trip.NewRequest()
	req2.Traveler = completeTraveler()
	req2.Motive = "formação"
	c2 := NewController(req2)
	assert.NoError(t, c2.GoTo(StepDates))
	c2.Next(context.Background())
	assert.Equal(t, StepPreview, c2.Current())
}

func TestController_Progress(t *testing.T) {
	req := trip.NewRequest()
	c := NewController(req)

	// 6 effective steps without the train: 1/6 ~ 17%.
	assert.Equal(t, 17, c.Progress())

	// Choosing the train grows the sequence to 7: 1/7 ~ 14%.
	req.Transport = trip.TransportTrain
	assert.Equal(t, 14, c.Progress())

	assert.NoError(t, c.GoTo(StepPreview))
	assert.Equal(t, 100, c.Progress())
}
