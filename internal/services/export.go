package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"smartrecruit/api/internal/models"
)

// ExportService builds the recruiter-facing Excel report of applications
// and their analysis scores.
type ExportService interface {
	BuildApplicationsWorkbook(apps []models.Application, results map[uuid.UUID]models.AnalysisResult) (*bytes.Buffer, error)
}

type exportService struct{}

func NewExportService() ExportService {
	return &exportService{}
}

// BuildApplicationsWorkbook implements ExportService.
func (e *exportService) BuildApplicationsWorkbook(apps []models.Application, results map[uuid.UUID]models.AnalysisResult) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Candidatures"
	f.SetSheetName("Sheet1", sheetName)

	f.SetColWidth(sheetName, "A", "A", 38)
	f.SetColWidth(sheetName, "B", "B", 22)
	f.SetColWidth(sheetName, "C", "C", 22)
	f.SetColWidth(sheetName, "D", "D", 16)
	f.SetColWidth(sheetName, "E", "I", 14)
	f.SetColWidth(sheetName, "J", "J", 20)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{
		"ID", "Candidat", "Poste", "Statut",
		"Score global", "Similarité", "Compétences", "Expérience", "Qualité",
		"Date de candidature",
	}
	for col, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, app := range apps {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), app.ID.String())
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), app.Candidate.Username)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), app.RoleName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), StatusLabel(app.Status))

		if result, ok := results[app.ID]; ok {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), result.ScoreGlobal)
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), result.ScoreSimilarity)
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), result.ScoreSkills)
			f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), result.ScoreExperience)
			f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), result.ScoreQuality)
		} else {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), "Non analysé")
		}

		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), app.CreatedAt.Format("2006-01-02 15:04"))
	}

	if len(apps) > 0 {
		f.AutoFilter(sheetName, fmt.Sprintf("A1:J%d", len(apps)+1), []excelize.AutoFilterOptions{})
	}

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", len(apps)+3), fmt.Sprintf("Généré le %s", time.Now().Format("2006-01-02 15:04:05")))

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return &buf, nil
}
