// Package export fills the fixed travel-request spreadsheet template
// from a trip request and writes a date-stamped workbook. The template
// layout is treated as an external contract, declared once in
// cellmap.go.
package export

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dpereira/travel-assistant/internal/domain/trip"
	"github.com/dpereira/travel-assistant/internal/notify"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const dateLayout = "02/01/2006"

// Filler fills the spreadsheet template with trip request data. The
// notifier is an injected dependency: the pipeline reports progress and
// outcome through it and additionally returns failures to the caller.
type Filler struct {
	templatePath string
	outputDir    string
	notifier     notify.Notifier
	logger       *zap.Logger
	now          func() time.Time
}

// NewFiller creates a template filler.
func NewFiller(templatePath, outputDir string, notifier notify.Notifier, logger *zap.Logger) *Filler {
	return &Filler{
		templatePath: templatePath,
		outputDir:    outputDir,
		notifier:     notifier,
		logger:       logger,
		now:          time.Now,
	}
}

// Export fills the template from the request and saves the workbook as
// TemplateViagens_DD_MM_YYYY.xlsx in the output directory, returning
// the written path. Failures are published as error notifications and
// returned so caller-side state can react too.
func (f *Filler) Export(ctx context.Context, req *trip.Request) (string, error) {
	f.notifier.Publish(ctx, notify.Notification{
		Type:    notify.TypeInfo,
		Title:   "A Gerar Excel...",
		Message: "A preparar o ficheiro de viagem.",
	})

	path, err := f.fill(req)
	if err != nil {
		f.logger.Error("Excel export failed", zap.Error(err))
		f.notifier.Publish(ctx, notify.Notification{
			Type:       notify.TypeError,
			Title:      "Erro no Download",
			Message:    fmt.Sprintf("Erro ao gerar Excel: %v", err),
			DurationMS: 8000,
		})
		return "", err
	}

	f.notifier.Publish(ctx, notify.Notification{
		Type:       notify.TypeSuccess,
		Title:      "Download Concluído!",
		Message:    fmt.Sprintf("Ficheiro: %s", filepath.Base(path)),
		DurationMS: 5000,
	})
	return path, nil
}

func (f *Filler) fill(req *trip.Request) (string, error) {
	wb, err := excelize.OpenFile(f.templatePath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateUnavailable, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return "", ErrTemplateNoSheets
	}
	sheet := sheets[0]

	f.fillTraveler(wb, sheet, req.Traveler)

	if req.HasLodging {
		f.fillLodging(wb, sheet, lodgingFirstRow, req.Lodging)
	}

	if req.Transport == trip.TransportTrain {
		f.fillTrainLeg(wb, sheet, colTrainFrom, req.Outbound)
		if req.HasReturn {
			f.fillTrainLeg(wb, sheet, colTrainFrom+trainReturnOffset, req.Return)
		}
		if req.Outbound.Notes != "" {
			f.setCell(wb, sheet, trainNotesRow, colTrainFrom, req.Outbound.Notes)
		}
		if req.HasReturn && req.Return.Notes != "" {
			f.setCell(wb, sheet, trainNotesRow, colTrainFrom+trainReturnOffset, req.Return.Notes)
		}
	}

	filename := fmt.Sprintf("TemplateViagens_%s.xlsx", f.now().Format("02_01_2006"))
	outputPath := filepath.Join(f.outputDir, filename)
	if err := wb.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	f.logger.Info("Excel template filled",
		zap.String("output_path", outputPath))
	return outputPath, nil
}

func (f *Filler) fillTraveler(wb *excelize.File, sheet string, t trip.Traveler) {
	f.setCell(wb, sheet, travelerRow, colTravelerLastName, t.LastName)
	f.setCell(wb, sheet, travelerRow, colTravelerFirstName, t.FirstName)
	f.setCell(wb, sheet, travelerRow, colTravelerEmployeeID, t.EmployeeID)
	f.setCell(wb, sheet, travelerRow, colTravelerDepartment, t.Department)
	f.setCell(wb, sheet, travelerRow, colTravelerCostCenter, t.CostCenter)
	f.setCell(wb, sheet, travelerRow, colTravelerIDDocument, t.IDDocument)
	f.setCell(wb, sheet, travelerRow, colTravelerTaxID, t.TaxID)
	f.setCell(wb, sheet, travelerRow, colTravelerPhone, t.Phone)
}

func (f *Filler) fillLodging(wb *excelize.File, sheet string, row int, l trip.Lodging) {
	f.setCell(wb, sheet, row, colLodgingCity, l.City)
	f.setCell(wb, sheet, row, colLodgingHotel, l.Hotel)
	f.setCell(wb, sheet, row, colLodgingCheckIn, formatDate(l.CheckIn))
	f.setCell(wb, sheet, row, colLodgingCheckOut, formatDate(l.CheckOut))
	f.setCell(wb, sheet, row, colLodgingRoomType, l.RoomType)
	f.setCell(wb, sheet, row, colLodgingNotes, l.Notes)
}

func (f *Filler) fillTrainLeg(wb *excelize.File, sheet string, startCol int, leg trip.TrainLeg) {
	f.setCell(wb, sheet, trainRow, startCol, leg.From)
	f.setCell(wb, sheet, trainRow, startCol+1, leg.To)
	f.setCell(wb, sheet, trainRow, startCol+2, formatDate(leg.Date))
	f.setCell(wb, sheet, trainRow, startCol+3, leg.Time)
	f.setCell(wb, sheet, trainRow, startCol+4, leg.Class)
}

// setCell writes a value by (row, column), the coordinate form the
// template contract is documented in.
func (f *Filler) setCell(wb *excelize.File, sheet string, row, col int, value string) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		f.logger.Warn("Invalid cell coordinates",
			zap.Int("row", row),
			zap.Int("col", col),
			zap.Error(err))
		return
	}
	if err := wb.SetCellValue(sheet, cell, value); err != nil {
		f.logger.Warn("Failed to set cell value",
			zap.String("sheet", sheet),
			zap.String("cell", cell),
			zap.Error(err))
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
