package peptides

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"
)

// Table is a small in-memory data frame: an ordered header plus string
// cells. The quantification input may carry columns that are unknown ahead
// of time and must pass through to the output unchanged, so the header is
// data, not a struct.
type Table struct {
	Columns []string
	Rows    [][]string

	colMap map[string]int
}

// NewTable creates an empty table with the given header.
func NewTable(columns []string) *Table {
	t := &Table{Columns: columns}
	t.reindex()
	return t
}

func (t *Table) reindex() {
	t.colMap = make(map[string]int, len(t.Columns))
	for i, col := range t.Columns {
		t.colMap[col] = i
	}
}

// ColumnIndex returns the position of a named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, exists := t.colMap[name]
	return i, exists
}

// HasColumn reports whether the table carries a named column.
func (t *Table) HasColumn(name string) bool {
	_, exists := t.colMap[name]
	return exists
}

// Cell returns the value at a row for a named column.
func (t *Table) Cell(row int, name string) (string, bool) {
	i, exists := t.colMap[name]
	if !exists || row < 0 || row >= len(t.Rows) {
		return "", false
	}
	return t.Rows[row][i], true
}

// Rename retitles columns in place according to the old-name to new-name
// mapping. Columns absent from the mapping keep their names.
func (t *Table) Rename(renames map[string]string) {
	for i, col := range t.Columns {
		if newName, exists := renames[col]; exists {
			t.Columns[i] = newName
		}
	}
	t.reindex()
}

// Apply transforms every value of a named column.
func (t *Table) Apply(name string, fn func(string) string) error {
	i, exists := t.colMap[name]
	if !exists {
		return fmt.Errorf("table has no column %q", name)
	}
	for _, row := range t.Rows {
		row[i] = fn(row[i])
	}
	return nil
}

// AppendConstColumn adds a column holding the same value on every row.
func (t *Table) AppendConstColumn(name, value string) {
	t.Columns = append(t.Columns, name)
	t.colMap[name] = len(t.Columns) - 1
	for i, row := range t.Rows {
		t.Rows[i] = append(row, value)
	}
}

// Select returns a new table restricted to the named columns, in the given
// order. Missing columns are reported as a SchemaError.
func (t *Table) Select(columns []string) (*Table, error) {
	indices := make([]int, 0, len(columns))
	var missing []string
	for _, col := range columns {
		i, exists := t.colMap[col]
		if !exists {
			missing = append(missing, col)
			continue
		}
		indices = append(indices, i)
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	out := NewTable(append([]string{}, columns...))
	out.Rows = make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		selected := make([]string, len(indices))
		for j, i := range indices {
			selected[j] = row[i]
		}
		out.Rows = append(out.Rows, selected)
	}
	return out, nil
}

// ReadTable parses a delimited table with a header row.
func ReadTable(r io.Reader, comma rune) (*Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma

	header, err := reader.Read()
	if err == io.EOF {
		return nil, pfx.Err(fmt.Errorf("table is empty"))
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	t := NewTable(header)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}
		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// WriteCSV serializes the table as comma-separated values with a header
// row and no index column.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Columns); err != nil {
		return pfx.Err(err)
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return pfx.Err(err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return pfx.Err(err)
	}
	return nil
}

// SchemaError reports required columns missing from an input table.
type SchemaError struct {
	Path    string
	Missing []string
	Hint    string
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("missing required column(s): %s", strings.Join(e.Missing, ", "))
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// checkColumns verifies that every required column is present, attaching a
// delimiter hint when the table parsed to a single column, which usually
// means the wrong separator.
func checkColumns(t *Table, required []string, path string, detect func() (rune, bool)) error {
	var missing []string
	for _, col := range required {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	schemaErr := &SchemaError{Path: path, Missing: missing}
	if len(t.Columns) == 1 && detect != nil {
		if delim, ok := detect(); ok {
			schemaErr.Hint = fmt.Sprintf("file appears to be %q-delimited", delim)
		}
	}
	return schemaErr
}
