package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrUnsupportedFormat is returned for file extensions outside the
// upload allow-list.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Extensions accepted by Parse.
var allowedExtensions = map[string]struct{}{
	".csv":  {},
	".tsv":  {},
	".txt":  {},
	".json": {},
}

// Allowed reports whether filename has a parseable extension.
func Allowed(filename string) bool {
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// Parse reads r into a Table, picking the format from the filename
// extension: .csv is comma-delimited, .tsv and .txt are tab-delimited,
// .json is an array of flat objects.
func Parse(filename string, r io.Reader) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseDelimited(r, ',')
	case ".tsv", ".txt":
		return ParseDelimited(r, '\t')
	case ".json":
		return ParseJSON(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// ParseDelimited reads delimiter-separated values with the first
// record as the header row.
func ParseDelimited(r io.Reader, delim rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1 // tolerate ragged rows, missing cells stay empty
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse delimited data: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	t := &Table{Columns: records[0]}
	for _, rec := range records[1:] {
		row := make([]string, len(rec))
		for i, cell := range rec {
			row[i] = strings.TrimSpace(cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// ParseJSON reads an array of flat objects. Columns are sorted by
// name since the decoder does not preserve object key order; objects
// missing a key get an empty cell.
func ParseJSON(r io.Reader) (*Table, error) {
	var records []map[string]any
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse json data: %w", err)
	}

	t := &Table{}
	index := make(map[string]int)
	for _, rec := range records {
		for key := range rec {
			if _, ok := index[key]; !ok {
				index[key] = len(t.Columns)
				t.Columns = append(t.Columns, key)
			}
		}
	}
	sortColumns(t, index)

	for _, rec := range records {
		row := make([]string, len(t.Columns))
		for key, val := range rec {
			row[index[key]] = formatCell(val)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func sortColumns(t *Table, index map[string]int) {
	sort.Strings(t.Columns)
	for i, c := range t.Columns {
		index[c] = i
	}
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
