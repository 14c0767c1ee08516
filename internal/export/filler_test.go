package export

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dpereira/travel-assistant/internal/domain/trip"
	"github.com/dpereira/travel-assistant/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// captureNotifier records published notifications for assertions.
type captureNotifier struct {
	published []notify.Notification
}

func (c *captureNotifier) Publish(ctx context.Context, n notify.Notification) error {
	c.published = append(c.published, n)
	return nil
}

func writeTemplate(t *testing.T, dir string) string {
	t.Helper()
	wb := excelize.NewFile()
	path := filepath.Join(dir, "template.xlsx")
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())
	return path
}

func fullRequest() *trip.Request {
	req := trip.NewRequest()
	req.Traveler = trip.Traveler{
		FirstName:  "Ana",
		LastName:   "Silva",
		EmployeeID: "12345",
		Department: "Engenharia",
		CostCenter: "CC-100",
		IDDocument: "98765432",
		TaxID:      "123456789",
		Phone:      "912345678",
	}
	req.Motive = "formação"
	req.HasLodging = true
	req.Lodging.Hotel = "Hotel Oriente"
	req.Lodging.CheckIn = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	req.Lodging.CheckOut = time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	req.Transport = trip.TransportTrain
	req.Outbound.Date = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	req.Outbound.Time = "08:00"
	req.HasReturn = true
	req.Return.Date = time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	req.Return.Time = "18:30"
	return req
}

func cell(t *testing.T, wb *excelize.File, sheet string, row, col int) string {
	t.Helper()
	name, err := excelize.CoordinatesToCellName(col, row)
	require.NoError(t, err)
	value, err := wb.GetCellValue(sheet, name)
	require.NoError(t, err)
	return value
}

func TestFiller_Export(t *testing.T) {
	dir := t.TempDir()
	template := writeTemplate(t, dir)
	notifier := &captureNotifier{}

	filler := NewFiller(template, dir, notifier, zap.NewNop())
	filler.now = func() time.Time {
		return time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)
	}

	path, err := filler.Export(context.Background(), fullRequest())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "TemplateViagens_15_03_2025.xlsx"), path)

	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer wb.Close()
	sheet := wb.GetSheetList()[0]

	// Traveler row.
	assert.Equal(t, "Silva", cell(t, wb, sheet, 8, 2))
	assert.Equal(t, "Ana", cell(t, wb, sheet, 8, 3))
	assert.Equal(t, "12345", cell(t, wb, sheet, 8, 4))
	assert.Equal(t, "912345678", cell(t, wb, sheet, 8, 9))

	// Lodging section, first row.
	assert.Equal(t, "Lisboa", cell(t, wb, sheet, 36, 2))
	assert.Equal(t, "Hotel Oriente", cell(t, wb, sheet, 36, 3))
	assert.Equal(t, "10/03/2025", cell(t, wb, sheet, 36, 4))
	assert.Equal(t, "12/03/2025", cell(t, wb, sheet, 36, 5))
	assert.Equal(t, "1PAX", cell(t, wb, sheet, 36, 6))

	// Train row: outbound then return, five columns each.
	assert.Equal(t, "Porto Campanha", cell(t, wb, sheet, 92, 2))
	assert.Equal(t, "Lisboa Oriente", cell(t, wb, sheet, 92, 3))
	assert.Equal(t, "10/03/2025", cell(t, wb, sheet, 92, 4))
	assert.Equal(t, "08:00", cell(t, wb, sheet, 92, 5))
	assert.Equal(t, "Alfa Pendular", cell(t, wb, sheet, 92, 6))
	assert.Equal(t, "Lisboa Oriente", cell(t, wb, sheet, 92, 7))
	assert.Equal(t, "18:30", cell(t, wb, sheet, 92, 10))

	// Progress then success notification.
	require.Len(t, notifier.published, 2)
	assert.Equal(t, notify.TypeInfo, notifier.published[0].Type)
	assert.Equal(t, notify.TypeSuccess, notifier.published[1].Type)
	assert.Contains(t, notifier.published[1].Message, "TemplateViagens_15_03_2025.xlsx")
}

func TestFiller_ExportWithoutOptionalSections(t *testing.T) {
	dir := t.TempDir()
	template := writeTemplate(t, dir)

	req := trip.NewRequest()
	req.Traveler.FirstName = "Ana"
	req.Traveler.LastName = "Silva"

	filler := NewFiller(template, dir, &captureNotifier{}, zap.NewNop())
	path, err := filler.Export(context.Background(), req)
	require.NoError(t, err)

	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer wb.Close()
	sheet := wb.GetSheetList()[0]

	assert.Equal(t, "Silva", cell(t, wb, sheet, 8, 2))
	assert.Empty(t, cell(t, wb, sheet, 36, 2))
	assert.Empty(t, cell(t, wb, sheet, 92, 2))
}

func TestFiller_TemplateMissing(t *testing.T) {
	dir := t.TempDir()
	notifier := &captureNotifier{}

	filler := NewFiller(filepath.Join(dir, "missing.xlsx"), dir, notifier, zap.NewNop())
	_, err := filler.Export(context.Background(), trip.NewRequest())
	assert.ErrorIs(t, err, ErrTemplateUnavailable)

	require.Len(t, notifier.published, 2)
	assert.Equal(t, notify.TypeError, notifier.published[1].Type)
	assert.Equal(t, "Erro no Download", notifier.published[1].Title)
}
