package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
)

// CSVSheetName is the sheet name given to CSV input.
const CSVSheetName = "Sheet1"

// ReadCSV reads comma-separated input into a single TableView.
func ReadCSV(r io.Reader) (*models.TableView, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return BuildTable(rows), nil
}
