// Package wizard drives the ordered step sequence of the travel request
// form. Navigation is expressed as a guarded state machine rebuilt from
// the effective step sequence on every call, so conditional steps are
// filtered by computation rather than list surgery.
package wizard

// Step identifies one screen of the wizard.
type Step string

const (
	StepStart        Step = "inicio"
	StepMotive       Step = "motivo"
	StepTransport    Step = "transporte"
	StepTrainDetails Step = "comboio_detalhes"
	StepLodging      Step = "hotel"
	StepDates        Step = "datas"
	StepPreview      Step = "preview"
)

// allSteps is the full ordered sequence before conditional filtering.
var allSteps = []Step{
	StepStart,
	StepMotive,
	StepTransport,
	StepTrainDetails,
	StepLodging,
	StepDates,
	StepPreview,
}

var validSteps = map[Step]bool{
	StepStart:        true,
	StepMotive:       true,
	StepTransport:    true,
	StepTrainDetails: true,
	StepLodging:      true,
	StepDates:        true,
	StepPreview:      true,
}

// IsValid returns true if the step is part of the wizard.
func (s Step) IsValid() bool {
	return validSteps[s]
}

// String returns the string representation of the step.
func (s Step) String() string {
	return string(s)
}
