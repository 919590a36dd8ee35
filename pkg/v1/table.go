package v1

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// lineCutset is trimmed off both ends of a raw line before splitting it
// into cells. Trailing delimiters accumulate when words are saved back.
const lineCutset = ",\r"

// RowTable holds a row-major data file: each line is one section, the
// first cell is the section label and the remaining cells are options.
// The raw lines are retained so saved words can be written back without
// disturbing the rest of the file.
type RowTable struct {
	path  string
	lines []string
}

// LoadRowTable reads a delimited file for row-major traversal.
func LoadRowTable(path string) (*RowTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var lines []string
	if len(data) > 0 {
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}
	Logf(LogTypeTable, "Loaded %d rows from %s", len(lines), path)
	return &RowTable{path: path, lines: lines}, nil
}

// Len returns the number of rows.
func (t *RowTable) Len() int {
	return len(t.lines)
}

// Row returns the cells of row i, with leading/trailing delimiters
// stripped from the line before splitting. An empty line yields a
// single empty cell.
func (t *RowTable) Row(i int) []string {
	return strings.Split(strings.Trim(t.lines[i], lineCutset), ",")
}

// AppendWord appends a word to row i and rewrites the whole file,
// preserving row order. The write is a plain overwrite, not atomic.
func (t *RowTable) AppendWord(i int, word string) error {
	if i < 0 || i >= len(t.lines) {
		return fmt.Errorf("row %d out of range (have %d rows)", i, len(t.lines))
	}
	t.lines[i] = strings.Trim(t.lines[i], lineCutset) + "," + word
	out := strings.Join(t.lines, "\n") + "\n"
	if err := os.WriteFile(t.path, []byte(out), 0644); err != nil {
		return fmt.Errorf("save word to %s: %w", t.path, err)
	}
	Logf(LogTypeSave, "Saved %q into row %d of %s", word, i, t.path)
	return nil
}

// ColumnTable holds a column-major data file: each original column is
// one traversal step. The row-major cells are kept alongside the
// transposed view because subsection lookups index into the original
// rows.
type ColumnTable struct {
	path       string
	original   [][]string
	transposed [][]string
}

// LoadColumnTable parses a CSV file and builds its transposed view.
// Ragged rows are tolerated; missing cells read as empty.
func LoadColumnTable(path string) (*ColumnTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	t := &ColumnTable{path: path, original: records, transposed: transpose(records)}
	Logf(LogTypeTable, "Loaded %d columns (%d rows) from %s", len(t.transposed), len(records), path)
	return t, nil
}

// Columns returns the number of traversal steps (original columns).
func (t *ColumnTable) Columns() int {
	return len(t.transposed)
}

// headerAt returns the label cell of column col, or "" when the header
// row is shorter than col.
func (t *ColumnTable) headerAt(col int) string {
	if len(t.original) == 0 || col >= len(t.original[0]) {
		return ""
	}
	return t.original[0][col]
}

// cellAt returns the original cell at (row, col), or "" when out of range.
func (t *ColumnTable) cellAt(row, col int) string {
	if row < 0 || row >= len(t.original) || col < 0 || col >= len(t.original[row]) {
		return ""
	}
	return t.original[row][col]
}

// transpose re-expresses row-major cells column by column, padded to
// the widest row so ragged input stays indexable.
func transpose(rows [][]string) [][]string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	out := make([][]string, width)
	for c := 0; c < width; c++ {
		col := make([]string, len(rows))
		for r, row := range rows {
			if c < len(row) {
				col[r] = row[c]
			}
		}
		out[c] = col
	}
	return out
}
