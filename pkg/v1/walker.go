package v1

// Section is one labeled step of the title-building flow, presented to
// the user with a set of selectable option tokens.
type Section struct {
	Label   string
	Options []string
}

// RowWalker presents each row of a RowTable as a section, in file order.
type RowWalker struct {
	table  *RowTable
	cursor int
	last   int
}

// NewRowWalker creates a walker positioned before the first row.
func NewRowWalker(t *RowTable) *RowWalker {
	return &RowWalker{table: t, last: -1}
}

// Next returns the next section, or false when the table is exhausted.
// The first cell is the label; remaining cells are options, verbatim.
func (w *RowWalker) Next() (Section, bool) {
	if w.cursor >= w.table.Len() {
		return Section{}, false
	}
	cells := w.table.Row(w.cursor)
	w.last = w.cursor
	w.cursor++
	return Section{Label: cells[0], Options: cells[1:]}, true
}

// LastIndex returns the row index of the most recently presented
// section, or -1 before the first call to Next. Save-back targets this
// row.
func (w *RowWalker) LastIndex() int {
	return w.last
}

// ColumnWalker presents each labeled column of a ColumnTable as a
// section. Columns whose header cell is empty are never presented
// directly; their values belong to a folder under the nearest labeled
// column to their left and are reachable only through Subsection.
type ColumnWalker struct {
	table   *ColumnTable
	cursor  int
	lastRow []string
}

// NewColumnWalker creates a walker positioned before the first column.
func NewColumnWalker(t *ColumnTable) *ColumnWalker {
	return &ColumnWalker{table: t}
}

// Next returns the next labeled section, skipping anonymous columns,
// or false when the table is exhausted. Empty option cells are dropped.
func (w *ColumnWalker) Next() (Section, bool) {
	for w.cursor < len(w.table.transposed) {
		row := w.table.transposed[w.cursor]
		w.cursor++
		if len(row) == 0 || row[0] == "" {
			continue
		}
		w.lastRow = row
		return Section{Label: row[0], Options: nonEmpty(row[1:])}, true
	}
	return Section{}, false
}

// Subsection expands the folder of values grouped under the selected
// token. The token's position in the last presented section identifies
// the original row it came from; the scan then collects that row's
// cells from every consecutive anonymous column starting at the
// cursor. The cursor moves past all scanned columns whether or not any
// values were found, so the folder columns are consumed exactly once.
//
// Returns false when the next column is labeled, the token is unknown,
// or the folder holds no values; the caller then treats the token as a
// plain selection.
func (w *ColumnWalker) Subsection(token string) (Section, bool) {
	if w.lastRow == nil || w.cursor >= len(w.table.transposed) {
		return Section{}, false
	}
	next := w.table.transposed[w.cursor]
	if len(next) == 0 || next[0] != "" {
		return Section{}, false
	}
	rowIdx := indexOf(w.lastRow, token)
	if rowIdx < 0 {
		return Section{}, false
	}
	var values []string
	for w.cursor < len(w.table.transposed) && w.table.headerAt(w.cursor) == "" {
		if v := w.table.cellAt(rowIdx, w.cursor); v != "" {
			values = append(values, v)
		}
		w.cursor++
	}
	if len(values) == 0 {
		return Section{}, false
	}
	Logf(LogTypeSection, "Expanded %d values under %q", len(values), token)
	return Section{Label: token + " values", Options: values}, true
}

func nonEmpty(cells []string) []string {
	var out []string
	for _, c := range cells {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func indexOf(cells []string, want string) int {
	for i, c := range cells {
		if c == want {
			return i
		}
	}
	return -1
}
