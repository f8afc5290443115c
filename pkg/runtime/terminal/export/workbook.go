package export

import (
	"fmt"

	"github.com/hr-tools/social-atlas/pkg/models/domain"
	"github.com/hr-tools/social-atlas/pkg/services/labels"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Questionnaire"

// WorkbookExporter writes the questionnaire with its answers to an xlsx
// workbook, one sheet, one row per question/dimension combination.
type WorkbookExporter struct {
	registry labels.Registry
}

func NewWorkbookExporter(registry labels.Registry) *WorkbookExporter {
	if registry == nil {
		registry = labels.Empty()
	}
	return &WorkbookExporter{registry: registry}
}

func (e *WorkbookExporter) Export(report *domain.Report, path string) error {
	view := BuildView(report, e.registry)

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"Key", "Question", "Answer", "Source", "Explanation"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	row := 2
	for _, section := range view.Sections {
		if err := e.writeRow(f, row, []string{"", section.Title, "", "", ""}); err != nil {
			return err
		}
		row++

		for _, line := range section.Lines {
			values := []string{line.Key, line.Label, line.Value, line.Source, line.Explanation}
			if err := e.writeRow(f, row, values); err != nil {
				return err
			}
			row++
		}
	}

	if err := f.SetColWidth(sheetName, "A", "B", 42); err != nil {
		return fmt.Errorf("failed to set column widths: %w", err)
	}
	if err := f.SetColWidth(sheetName, "E", "E", 64); err != nil {
		return fmt.Errorf("failed to set column widths: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (e *WorkbookExporter) writeRow(f *excelize.File, row int, values []string) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
	}
	return nil
}
