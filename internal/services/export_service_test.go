package services

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/gravadigital/promoter-portal-api/internal/domain/event"
	"github.com/gravadigital/promoter-portal-api/internal/domain/reporting"
	"github.com/gravadigital/promoter-portal-api/internal/storage/postgres"
)

func newExportFixture(t *testing.T) (*ExportService, *fakeReportingRepo, *event.Event) {
	t.Helper()

	reportingRepo := &fakeReportingRepo{rows: make(map[uuid.UUID]*reporting.Reporting)}
	eventRepo := &fakeEventRepo{rows: make(map[string]*event.Event)}

	e := event.NewEvent("Sommerfest", nil)
	require.NoError(t, eventRepo.Create(e))

	return NewExportService(reportingRepo, eventRepo, 100), reportingRepo, e
}

func seedReporting(t *testing.T, repo *fakeReportingRepo, eventID uuid.UUID, promoter string) {
	t.Helper()
	r := reporting.NewReporting(eventID, map[string]any{
		reporting.AnswerPromoterName: promoter,
		reporting.AnswerWorkDate:     "2026-08-30",
		reporting.AnswerStartTime:    "09:00",
		reporting.AnswerLeaveTime:    "17:00",
		reporting.AnswerFrequency:    "stark",
	})
	require.NoError(t, repo.Create(r))
}

func TestExportWritesRowPerReporting(t *testing.T) {
	svc, repo, e := newExportFixture(t)
	seedReporting(t, repo, e.ID, "Anna")
	seedReporting(t, repo, e.ID, "Ben")

	var buf bytes.Buffer
	require.NoError(t, svc.WriteReportingsXLSX(e.ID.String(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sommerfest")
	require.NoError(t, err)
	// header plus one row per reporting
	require.Len(t, rows, 3)

	assert.Equal(t, "Event", rows[0][0])
	assert.Equal(t, "Promoter", rows[0][2])

	assert.Equal(t, "Sommerfest", rows[1][0])
	promoters := []string{rows[1][2], rows[2][2]}
	assert.ElementsMatch(t, []string{"Anna", "Ben"}, promoters)
}

func TestExportScopesToRequestedEvent(t *testing.T) {
	svc, repo, e := newExportFixture(t)
	seedReporting(t, repo, e.ID, "Anna")
	seedReporting(t, repo, uuid.New(), "Stranger")

	var buf bytes.Buffer
	require.NoError(t, svc.WriteReportingsXLSX(e.ID.String(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sommerfest")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Anna", rows[1][2])
}

func TestExportAllSpansEvents(t *testing.T) {
	svc, repo, e := newExportFixture(t)
	seedReporting(t, repo, e.ID, "Anna")
	seedReporting(t, repo, uuid.New(), "Ben")

	var buf bytes.Buffer
	require.NoError(t, svc.WriteReportingsXLSX(postgres.FilterAll, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Reportings")
	require.NoError(t, err)
	require.Len(t, rows, 3)
}

func TestExportUnknownEventFails(t *testing.T) {
	svc, _, _ := newExportFixture(t)

	var buf bytes.Buffer
	err := svc.WriteReportingsXLSX(uuid.New().String(), &buf)
	assert.Error(t, err)
}

func TestSanitizeSheetName(t *testing.T) {
	assert.Equal(t, "Sommerfest", sanitizeSheetName("Sommerfest"))
	assert.Equal(t, "A_B", sanitizeSheetName("A/B"))
	assert.Equal(t, "Reportings", sanitizeSheetName(""))
	assert.Len(t, sanitizeSheetName("this event name is far longer than excel allows"), 31)
}
