package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	pkgerrors "github.com/Greenkack/pvoffer-backend/pkg/errors"
)

// Kind classifies the raw content of a spreadsheet cell.
type Kind int

const (
	KindEmpty Kind = iota
	KindString
	KindNumber
)

// Value is a single spreadsheet cell. Numeric-looking cells keep their
// original text so string reads do not reformat them.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// StringValue builds a text cell.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// NumberValue builds a numeric cell.
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, str: strconv.FormatFloat(f, 'f', -1, 64), num: f}
}

// Kind returns the cell classification.
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty reports whether the cell carries no content.
func (v Value) IsEmpty() bool {
	return v.kind == KindEmpty || (v.kind == KindString && v.str == "")
}

// String returns the cell text. Numbers keep their spreadsheet formatting.
func (v Value) String() string {
	return v.str
}

// Number returns the numeric cell value, parsing text cells on demand.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Row maps header names to cell values. Cells that were empty in the sheet
// are absent from the map.
type Row map[string]Value

// ReadRows parses the first sheet of the named spreadsheet into rows keyed by
// the header line. The format is chosen by file extension.
func ReadRows(r io.Reader, filename string) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(r)
	case ".xlsx":
		return readExcel(r)
	case ".xls":
		return readLegacyExcel(r)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeUnsupportedFormat, "Unsupported file format. Only CSV, XLS, and XLSX are supported.")
	}
}

func readCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeParse, err, "parsing csv")
	}
	if len(records) == 0 {
		return nil, nil
	}
	return recordsToRows(records), nil
}

func readExcel(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeParse, err, "parsing workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeParse, err, fmt.Sprintf("reading sheet %s", sheets[0]))
	}
	return recordsToRows(records), nil
}

// readLegacyExcel decodes the pre-2007 BIFF container, which excelize does
// not speak.
func readLegacyExcel(r io.Reader) ([]Row, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeParse, err, "reading workbook")
	}

	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeParse, err, "parsing workbook")
	}
	sheet, err := workbook.GetSheet(0)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeParse, err, "reading first sheet")
	}

	records := make([][]string, 0, sheet.GetNumberRows())
	for i := 0; i < sheet.GetNumberRows(); i++ {
		row, err := sheet.GetRow(i)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeParse, err, fmt.Sprintf("reading row %d", i+1))
		}
		cells := row.GetCols()
		record := make([]string, len(cells))
		for j, cell := range cells {
			record[j] = cell.GetString()
		}
		records = append(records, record)
	}
	return recordsToRows(records), nil
}

func recordsToRows(records [][]string) []Row {
	if len(records) < 2 {
		return nil
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := Row{}
		for i, cell := range record {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if strings.TrimSpace(cell) == "" {
				continue
			}
			row[header[i]] = classifyCell(cell)
		}
		rows = append(rows, row)
	}
	return rows
}

func classifyCell(cell string) Value {
	trimmed := strings.TrimSpace(cell)
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Value{kind: KindNumber, str: trimmed, num: n}
	}
	return StringValue(trimmed)
}
