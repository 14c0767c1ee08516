package export

// Template layout contract. The binary template TemplateViagens is an
// external fixed schema: each section owns a block of rows and the
// repeated sections hold at most six entries. Coordinates are 1-based
// (row, column) as the template documents them.
const (
	travelerRow = 8 // one row, columns B..I

	planeFirstRow   = 24 // six rows, columns B..G
	lodgingFirstRow = 36 // six rows, columns B..G
	carFirstRow     = 49 // six rows, columns B..L

	sectionMaxRows = 6

	otherServicesRow = 60 // single cell, column B

	trainRow = 92 // one row: outbound B..F, return G..K

	trainNotesRow = 102 // outbound B, return G
)

// Traveler block columns.
const (
	colTravelerLastName   = 2
	colTravelerFirstName  = 3
	colTravelerEmployeeID = 4
	colTravelerDepartment = 5
	colTravelerCostCenter = 6
	colTravelerIDDocument = 7
	colTravelerTaxID      = 8
	colTravelerPhone      = 9
)

// Lodging section columns.
const (
	colLodgingCity     = 2
	colLodgingHotel    = 3
	colLodgingCheckIn  = 4
	colLodgingCheckOut = 5
	colLodgingRoomType = 6
	colLodgingNotes    = 7
)

// Train row columns; the return leg block starts five columns after the
// outbound one.
const (
	colTrainFrom  = 2
	colTrainTo    = 3
	colTrainDate  = 4
	colTrainTime  = 5
	colTrainClass = 6

	trainReturnOffset = 5
)
