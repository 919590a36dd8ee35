package v1

import "time"

// Seed timestamp layouts matching each tool's default.
const (
	RowSeedLayout    = "02-Jan-2006-15:04:05"
	ColumnSeedLayout = "02_Jan_06"
)

// Default separators between accumulated tokens.
const (
	RowSeparator    = "_"
	ColumnSeparator = " - "
)

// Accumulator builds the separator-joined title string. It is seeded
// with a default value and only ever appends; accumulated tokens are
// never reordered or dropped.
type Accumulator struct {
	value     string
	separator string
}

// NewAccumulator creates an accumulator holding the seed value.
func NewAccumulator(seed, separator string) *Accumulator {
	return &Accumulator{value: seed, separator: separator}
}

// Accept appends separator+token to the title. An empty token is a
// skip: the title is left unchanged for that turn.
func (a *Accumulator) Accept(token string) {
	if token == "" {
		return
	}
	a.value += a.separator + token
}

// String returns the accumulated title.
func (a *Accumulator) String() string {
	return a.value
}

// Timestamp returns the current PC time in the given layout, used to
// seed new titles.
func Timestamp(layout string) string {
	return time.Now().Format(layout)
}
