package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing column")

// Table is one spreadsheet: the header row plus its non-blank data rows.
type Table struct {
	Name    string
	Headers []string
	Rows    []Record
}

// Record is a data row keyed by header. Line is the 1-based row number in the source file.
type Record struct {
	Line   int
	Values map[string]string
}

// Get returns the trimmed cell under column, or "" when the row has no such cell.
func (r Record) Get(column string) string {
	return strings.TrimSpace(r.Values[column])
}

// ReadFile loads a spreadsheet, choosing the parser from the file extension.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f, name)
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return ReadXLSX(f, name)
	default:
		return nil, fmt.Errorf("%s: unsupported spreadsheet format %q", name, filepath.Ext(path))
	}
}

// ReadXLSX parses the first sheet of a workbook. Cell values are read raw so numbers keep their
// stored precision and dates arrive as Excel serials (see NormalizeDate).
func ReadXLSX(r io.Reader, name string) (*Table, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: read workbook: %w", name, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", name)
	}
	rows, err := wb.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%s: read sheet %q: %w", name, sheets[0], err)
	}
	return newTable(name, rows, nil)
}

// ReadCSV parses comma-separated input with a header row.
func ReadCSV(r io.Reader, name string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows [][]string
	var lines []int
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: read CSV: %w", name, err)
		}
		// the reader drops empty lines, so keep the source line of every record
		line, _ := reader.FieldPos(0)
		rows = append(rows, rec)
		lines = append(lines, line)
	}
	return newTable(name, rows, lines)
}

// newTable builds a Table from raw rows. lines holds the source line of each row; when nil,
// row i is line i+1.
func newTable(name string, rows [][]string, lines []int) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no header row", name)
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	t := &Table{Name: name, Headers: headers}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		line := i + 1
		if lines != nil {
			line = lines[i]
		}
		values := make(map[string]string, len(headers))
		for ci, h := range headers {
			if h == "" || ci >= len(row) {
				continue
			}
			// first occurrence of a duplicated header wins
			if _, seen := values[h]; !seen {
				values[h] = row[ci]
			}
		}
		t.Rows = append(t.Rows, Record{Line: line, Values: values})
	}
	return t, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Require fails with ErrMissingColumn listing every absent column.
func (t *Table) Require(columns ...string) error {
	have := make(map[string]bool, len(t.Headers))
	for _, h := range t.Headers {
		have[h] = true
	}
	var missing []string
	for _, c := range columns {
		if !have[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w: %s", t.Name, ErrMissingColumn, strings.Join(missing, ", "))
	}
	return nil
}
