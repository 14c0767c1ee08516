package export

import "errors"

var (
	// ErrTemplateUnavailable indicates the template workbook could not
	// be opened.
	ErrTemplateUnavailable = errors.New("template file unavailable")

	// ErrTemplateNoSheets indicates the template has no worksheets.
	ErrTemplateNoSheets = errors.New("template has no sheets")

	// ErrSaveFailed indicates the filled workbook could not be written.
	ErrSaveFailed = errors.New("failed to save workbook")

	// ErrExportInFlight indicates an export is already running for this
	// session.
	ErrExportInFlight = errors.New("export already in progress")
)
