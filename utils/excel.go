package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExportDir is where generated spreadsheets are written before download.
// The scheduled cleanup sweeps this directory.
const ExportDir = "./public/exports"

// EnsureDirectoryExists ensures the specified directory exists before file saving
func EnsureDirectoryExists(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %v", err)
		}
	}
	return nil
}

// GenerateExcel writes an ordered table to an xlsx file under ExportDir and
// returns the path of the saved file. Columns and rows are written exactly as
// given; the caller decides ordering and which columns to include.
func GenerateExcel(title string, columns []string, rows [][]string) (string, error) {
	if err := EnsureDirectoryExists(ExportDir); err != nil {
		return "", fmt.Errorf("failed to ensure export directory exists: %v", err)
	}

	f := excelize.NewFile()
	sheetName := "Sheet1"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}

	for col, header := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", fmt.Errorf("error addressing header cell: %v", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", fmt.Errorf("error setting header %s: %v", header, err)
		}
	}

	for row, values := range rows {
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", fmt.Errorf("error addressing cell: %v", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", fmt.Errorf("error setting value at row %d column %d: %v", row+2, col+1, err)
			}
		}
	}

	f.SetActiveSheet(index)

	fileName := fmt.Sprintf("%s_%s.xlsx",
		sanitizeFileName(title),
		time.Now().Format("2006-01-02_15-04-05"))
	filePath := filepath.Join(ExportDir, fileName)

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving excel file: %v", err)
	}

	return filePath, nil
}

func sanitizeFileName(title string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '_'
		default:
			return -1
		}
	}, title)
	if cleaned == "" {
		cleaned = "export"
	}
	return cleaned
}
