package services

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/gravadigital/promoter-portal-api/internal/domain/reporting"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
	"github.com/gravadigital/promoter-portal-api/internal/storage/postgres"
)

// ExportService renders workday reportings as spreadsheets.
type ExportService struct {
	reportings postgres.ReportingRepository
	events     postgres.EventRepository
	listCap    int
}

// NewExportService creates a new export service
func NewExportService(reportings postgres.ReportingRepository, events postgres.EventRepository, listCap int) *ExportService {
	return &ExportService{
		reportings: reportings,
		events:     events,
		listCap:    listCap,
	}
}

var exportHeaders = []string{
	"Event", "Submitted", "Promoter", "Date", "Start", "End",
	"Frequency", "Contacts", "Pause (min)", "Notes",
}

var exportAnswerKeys = []string{
	reporting.AnswerPromoterName,
	reporting.AnswerWorkDate,
	reporting.AnswerStartTime,
	reporting.AnswerLeaveTime,
	reporting.AnswerFrequency,
	reporting.AnswerContactCount,
	reporting.AnswerPauseMinutes,
	reporting.AnswerNotes,
}

// WriteReportingsXLSX writes an xlsx workbook of the event's reportings
// to w. The eventFilter follows the list semantics: an event ID scopes
// the export, "all" exports across events.
func (s *ExportService) WriteReportingsXLSX(eventFilter string, w io.Writer) error {
	log := logger.Service("export")

	sheetName := "Reportings"
	if eventFilter != postgres.FilterAll {
		event, err := s.events.GetByID(eventFilter)
		if err != nil {
			return fmt.Errorf("event not found: %w", err)
		}
		sheetName = sanitizeSheetName(event.Name)
	}

	rows, err := s.reportings.GetRecent(eventFilter, s.listCap)
	if err != nil {
		return fmt.Errorf("failed to load reportings: %w", err)
	}

	events, err := s.events.GetAll()
	if err != nil {
		return fmt.Errorf("failed to resolve event names: %w", err)
	}
	eventNames := make(map[uuid.UUID]string, len(events))
	for _, e := range events {
		eventNames[e.ID] = e.Name
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	for col, header := range exportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		f.SetCellStyle(sheetName, "A1", endCell, headerStyle)
	}

	for i, r := range rows {
		values := []string{
			eventNames[r.EventID],
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
		for _, key := range exportAnswerKeys {
			values = append(values, r.Answer(key))
		}

		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	log.Info("Reportings exported", "event", eventFilter, "rows", len(rows))
	return nil
}

// sanitizeSheetName trims an event name to something Excel accepts as a
// sheet name: at most 31 characters, none of []:*?/\.
func sanitizeSheetName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			out = append(out, '_')
		default:
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return "Reportings"
	}
	if len(out) > 31 {
		out = out[:31]
	}
	return string(out)
}
