package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const incidentSheetName = "Incidents"

var incidentExportHeader = []string{
	"ID",
	"Type",
	"Date",
	"Time",
	"Latitude",
	"Longitude",
	"Description",
	"Reporter Phone",
	"Reporter Name",
	"Images",
	"Status",
	"Internal Notes",
	"Created At",
}

var incidentExportColumnWidths = []float64{38, 16, 12, 8, 12, 12, 50, 18, 22, 8, 14, 40, 22}

// Export строит XLSX-книгу по тому же фильтру, что и административный список
func (s *incidentService) Export(ctx context.Context, filter models.IncidentFilter) ([]byte, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "Export",
	})

	incidents, err := s.AdminList(ctx, filter)
	if err != nil {
		return nil, err
	}

	data, err := buildIncidentWorkbook(incidents)
	if err != nil {
		log.WithError(err).Error("Failed to build incident workbook")
		return nil, fmt.Errorf("service: could not export incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents exported")
	return data, nil
}

func buildIncidentWorkbook(incidents []*models.Incident) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(incidentSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range incidentExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(incidentSheetName, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(incidentSheetName, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for i, width := range incidentExportColumnWidths {
		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(incidentSheetName, colName, colName, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for row, incident := range incidents {
		values := []any{
			incident.ID,
			incident.IncidentType,
			incident.Date,
			incident.Time,
			incident.Latitude,
			incident.Longitude,
			incident.Description,
			derefString(incident.ReporterPhone),
			derefString(incident.ReporterName),
			len(incident.Images),
			string(incident.Status),
			incident.InternalNotes,
			incident.CreatedAt.UTC().Format(time.RFC3339),
		}
		cell, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(incidentSheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", row+2, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
