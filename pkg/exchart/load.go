package exchart

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"github.com/ukaji3/exchart-go/pkg/exchart/parser"
	"github.com/xuri/excelize/v2"
)

// Load reads a workbook file. xlsx-family files keep their sheet order;
// a csv file becomes a single sheet.
func Load(path string, logger *slog.Logger) (*models.Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	defer f.Close()

	return LoadReader(f, filepath.Base(path), logger)
}

// LoadReader reads a workbook from r. The name's extension selects the format.
func LoadReader(r io.Reader, name string, logger *slog.Logger) (*models.Workbook, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		table, err := parser.ReadCSV(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, NewLoadError(parser.CSVSheetName, "csv", err))
		}
		return models.NewWorkbook(name, models.Sheet{Name: parser.CSVSheetName, Table: table}), nil
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return loadExcel(r, name, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

func loadExcel(r io.Reader, name string, logger *slog.Logger) (*models.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	wb := models.NewWorkbook(name)
	for _, sheetName := range f.GetSheetList() {
		table, err := parser.ReadSheet(f, sheetName)
		if err != nil {
			// Keep the sheet so later sheets stay at their positions.
			logger.Warn("sheet unreadable, treating as empty",
				"book", name, "error", NewLoadError(sheetName, "rows", err))
			table = models.NewTableViewFromGrid(nil, nil)
		}
		wb.Sheets = append(wb.Sheets, models.Sheet{Name: sheetName, Table: table})
	}

	logger.Debug("workbook loaded", "book", name, "sheets", wb.Len())
	return wb, nil
}
