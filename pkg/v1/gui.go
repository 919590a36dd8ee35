package v1

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

// GUIOptions controls the window chrome for each tool.
type GUIOptions struct {
	Title    string
	SaveWord bool      // show the "Save Word?" checkbox (row mode)
	MinSize  fyne.Size // zero means default sizing
}

// ui holds the widgets that re-render as the session advances. The
// widgets only read session state and request transitions.
type ui struct {
	session *Session
	window  fyne.Window

	sectionLabel *widget.Label
	buttons      *fyne.Container
	entry        *widget.Entry
	result       binding.String
	save         *widget.Check // nil when save-back is unavailable
}

func newUI(s *Session, w fyne.Window, withSave bool) *ui {
	u := &ui{session: s, window: w}

	u.sectionLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	u.buttons = container.NewHBox()
	u.result = binding.NewString()
	u.result.Set(s.Title())

	u.entry = widget.NewEntry()
	u.entry.OnSubmitted = func(string) { u.submit() }

	if withSave {
		u.save = widget.NewCheck("Save Word?", func(on bool) { s.SetSaveNext(on) })
	}

	u.render()
	return u
}

// content lays out the window: section label on top, option buttons,
// the entry row, then the accumulated title.
func (u *ui) content() fyne.CanvasObject {
	var left fyne.CanvasObject
	if u.save != nil {
		left = u.save
	}
	inputRow := container.NewBorder(nil, nil, left, nil, u.entry)
	return container.NewVBox(
		u.sectionLabel,
		u.buttons,
		inputRow,
		widget.NewLabelWithData(u.result),
	)
}

// render rebuilds the option buttons from the session's current
// section. Buttons are recreated on every transition; the session
// never sees widgets.
func (u *ui) render() {
	if u.session.State() == StateDone {
		u.sectionLabel.SetText("No more lines to read.")
		u.buttons.Objects = nil
		u.buttons.Refresh()
		return
	}
	sec := u.session.Current()
	u.sectionLabel.SetText(sec.Label)
	u.buttons.Objects = nil
	for _, opt := range sec.Options {
		opt := opt
		u.buttons.Add(widget.NewButton(opt, func() { u.selectToken(opt) }))
	}
	u.buttons.Refresh()
}

func (u *ui) selectToken(token string) {
	switch u.session.Select(token) {
	case OutcomeExpanded:
		u.entry.SetText("")
		u.render()
	case OutcomeCommitted:
		u.afterSubmit()
	case OutcomePending:
		u.entry.SetText(token)
	}
}

func (u *ui) submit() {
	u.session.Submit(u.entry.Text)
	u.afterSubmit()
}

func (u *ui) afterSubmit() {
	u.result.Set(u.session.Title())
	u.entry.SetText("")
	if u.save != nil {
		u.save.SetChecked(false)
	}
	if u.session.State() == StateDone {
		if u.window != nil {
			u.window.Close()
		}
		return
	}
	u.render()
}

// RunGUI opens the interactive window and blocks until the table is
// exhausted or the window is closed. It returns the final accumulated
// title, which is the integration point for embedding the tool in
// another program.
func RunGUI(s *Session, opts GUIOptions) string {
	myApp := app.New()
	myWindow := myApp.NewWindow(opts.Title)

	u := newUI(s, myWindow, opts.SaveWord)

	altItem := fyne.NewMenuItem("Alt Button", nil)
	altItem.Checked = s.AltMode()
	buttonMenu := fyne.NewMenu("Button", altItem)
	altItem.Action = func() {
		s.ToggleAltMode()
		altItem.Checked = s.AltMode()
		buttonMenu.Refresh()
	}
	myWindow.SetMainMenu(fyne.NewMainMenu(buttonMenu))

	myWindow.SetContent(u.content())
	if opts.MinSize.Width > 0 {
		myWindow.Resize(opts.MinSize)
	}
	myWindow.Canvas().Focus(u.entry)

	Log(LogTypeUI, "Opening window", "")
	myWindow.ShowAndRun()

	return s.Title()
}
