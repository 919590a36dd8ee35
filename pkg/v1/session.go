package v1

// State identifies where the interactive flow currently is.
type State int

const (
	// StateAwaitingSelection means a section is on screen and the
	// session is waiting for a token.
	StateAwaitingSelection State = iota
	// StateAwaitingSubsection means an expanded folder of sub-options
	// is on screen; the top-level cursor was not consumed on entry.
	StateAwaitingSubsection
	// StateDone means the table is exhausted and the title is final.
	StateDone
)

// Outcome tells the UI surface what a Select call did.
type Outcome int

const (
	// OutcomePending: the token should fill the editable entry and
	// wait for confirmation.
	OutcomePending Outcome = iota
	// OutcomeCommitted: alt mode submitted the token directly.
	OutcomeCommitted
	// OutcomeExpanded: a subsection folder replaced the current
	// section; re-render and clear the entry.
	OutcomeExpanded
	// OutcomeIgnored: the session is done and no longer accepts input.
	OutcomeIgnored
)

// Config carries the session knobs shared by both tools. Zero
// values select the per-tool defaults.
type Config struct {
	Separator string
	Seed      string
	AltMode   bool
}

// Session owns the cursor, the accumulated title and the UI flags for
// one interactive title-building run. The UI surface reads its state
// and requests transitions; it never mutates session data directly.
type Session struct {
	rowTable  *RowTable
	rowWalker *RowWalker
	colWalker *ColumnWalker

	acc      *Accumulator
	state    State
	current  Section
	altMode  bool
	saveNext bool
}

// NewRowSession starts a row-major session with the first section
// already loaded.
func NewRowSession(t *RowTable, cfg Config) *Session {
	s := &Session{
		rowTable:  t,
		rowWalker: NewRowWalker(t),
		acc:       newAccumulatorFor(cfg, RowSeparator, RowSeedLayout),
		altMode:   cfg.AltMode,
	}
	s.advance()
	return s
}

// NewColumnSession starts a column-major session with the first
// section already loaded.
func NewColumnSession(t *ColumnTable, cfg Config) *Session {
	s := &Session{
		colWalker: NewColumnWalker(t),
		acc:       newAccumulatorFor(cfg, ColumnSeparator, ColumnSeedLayout),
		altMode:   cfg.AltMode,
	}
	s.advance()
	return s
}

func newAccumulatorFor(cfg Config, defaultSep, seedLayout string) *Accumulator {
	sep := cfg.Separator
	if sep == "" {
		sep = defaultSep
	}
	seed := cfg.Seed
	if seed == "" {
		seed = Timestamp(seedLayout)
	}
	return NewAccumulator(seed, sep)
}

// Current returns the section on screen. Zero value once done.
func (s *Session) Current() Section {
	return s.current
}

// State returns the session state.
func (s *Session) State() State {
	return s.state
}

// Title returns the accumulated title so far.
func (s *Session) Title() string {
	return s.acc.String()
}

// AltMode reports whether clicking an option commits it immediately.
func (s *Session) AltMode() bool {
	return s.altMode
}

// ToggleAltMode flips the alt-button behavior.
func (s *Session) ToggleAltMode() {
	s.altMode = !s.altMode
	Logf(LogTypeUI, "Alt button mode: %v", s.altMode)
}

// SetSaveNext arms (or disarms) saving the next submitted word back
// into the data file. Row sessions only; the flag is one-shot and
// resets after each submit.
func (s *Session) SetSaveNext(on bool) {
	s.saveNext = on
}

// SaveNext reports whether the next submit will be saved back.
func (s *Session) SaveNext() bool {
	return s.saveNext
}

// Select handles a click on an option button. In a column session a
// click may open a subsection folder instead of selecting; in alt mode
// a plain click submits the token directly.
func (s *Session) Select(token string) Outcome {
	if s.state == StateDone {
		return OutcomeIgnored
	}
	if s.colWalker != nil && s.state == StateAwaitingSelection {
		if sub, ok := s.colWalker.Subsection(token); ok {
			s.current = sub
			s.state = StateAwaitingSubsection
			return OutcomeExpanded
		}
	}
	if s.altMode {
		s.Submit(token)
		return OutcomeCommitted
	}
	return OutcomePending
}

// Submit commits the confirmed text: saves it back if armed, appends
// it to the title unless empty, and advances to the next section. A
// save failure is reported and absorbed; the in-memory session keeps
// going. Once done, further submits are ignored.
func (s *Session) Submit(text string) {
	if s.state == StateDone {
		return
	}
	if s.saveNext && s.rowTable != nil {
		if err := s.rowTable.AppendWord(s.rowWalker.LastIndex(), text); err != nil {
			Log(LogTypeError, "Save word failed", err.Error())
		}
	}
	s.saveNext = false
	s.acc.Accept(text)
	if text != "" {
		Logf(LogTypeTitle, "Accepted %q, title now %q", text, s.acc.String())
	}
	s.advance()
}

// advance consumes exactly one section, or finishes the session when
// the table is exhausted.
func (s *Session) advance() {
	var sec Section
	var ok bool
	if s.rowWalker != nil {
		sec, ok = s.rowWalker.Next()
	} else {
		sec, ok = s.colWalker.Next()
	}
	if !ok {
		s.current = Section{}
		s.state = StateDone
		Log(LogTypeSection, "End of data", "")
		return
	}
	s.current = sec
	s.state = StateAwaitingSelection
	Logf(LogTypeSection, "Section %q (%d options)", sec.Label, len(sec.Options))
}
