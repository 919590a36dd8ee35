package v1

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func optionButton(t *testing.T, u *ui, i int) *widget.Button {
	t.Helper()
	if i >= len(u.buttons.Objects) {
		t.Fatalf("No button at index %d (have %d)", i, len(u.buttons.Objects))
	}
	btn, ok := u.buttons.Objects[i].(*widget.Button)
	if !ok {
		t.Fatalf("Object at index %d is not a button", i)
	}
	return btn
}

func TestUIRowFlow(t *testing.T) {
	test.NewApp()

	sess, _ := newRowFixtureSession(t, Config{Seed: "seed"})
	u := newUI(sess, nil, true)

	if u.sectionLabel.Text != "Freq" {
		t.Errorf("Expected Freq label, got %q", u.sectionLabel.Text)
	}
	if len(u.buttons.Objects) != 2 {
		t.Fatalf("Expected 2 option buttons, got %d", len(u.buttons.Objects))
	}

	// Without alt mode a click only fills the entry.
	test.Tap(optionButton(t, u, 0))
	if u.entry.Text != "2.4" {
		t.Errorf("Expected entry '2.4', got %q", u.entry.Text)
	}

	u.entry.OnSubmitted(u.entry.Text)
	if u.sectionLabel.Text != "Mod" {
		t.Errorf("Expected Mod section after submit, got %q", u.sectionLabel.Text)
	}
	if u.entry.Text != "" {
		t.Errorf("Expected entry cleared, got %q", u.entry.Text)
	}
	result, _ := u.result.Get()
	if result != "seed_2.4" {
		t.Errorf("Expected result 'seed_2.4', got %q", result)
	}
}

func TestUIAltModeCommitsOnTap(t *testing.T) {
	test.NewApp()

	sess, _ := newRowFixtureSession(t, Config{Seed: "seed", AltMode: true})
	u := newUI(sess, nil, true)

	test.Tap(optionButton(t, u, 1)) // 5.1

	result, _ := u.result.Get()
	if result != "seed_5.1" {
		t.Errorf("Expected committed result 'seed_5.1', got %q", result)
	}
	if u.sectionLabel.Text != "Mod" {
		t.Errorf("Expected Mod section, got %q", u.sectionLabel.Text)
	}
}

func TestUISaveCheckboxResets(t *testing.T) {
	test.NewApp()

	sess, _ := newRowFixtureSession(t, Config{Seed: "seed"})
	u := newUI(sess, nil, true)

	test.Tap(u.save)
	if !sess.SaveNext() {
		t.Fatal("Expected save flag armed by checkbox")
	}

	u.entry.SetText("6.0")
	u.entry.OnSubmitted(u.entry.Text)

	if u.save.Checked {
		t.Error("Expected checkbox unchecked after submit")
	}
	if sess.SaveNext() {
		t.Error("Expected save flag reset after submit")
	}
}

func TestUIColumnSubsection(t *testing.T) {
	test.NewApp()

	sess := newColumnFixtureSession(t, Config{Seed: "seed"})
	u := newUI(sess, nil, false)
	if u.save != nil {
		t.Fatal("Column mode must not show the save checkbox")
	}

	for u.sectionLabel.Text != "Freq" {
		u.entry.OnSubmitted("")
	}

	u.entry.SetText("draft")
	test.Tap(optionButton(t, u, 0)) // 2.4 opens the folder

	if u.sectionLabel.Text != "2.4 values" {
		t.Errorf("Expected folder label, got %q", u.sectionLabel.Text)
	}
	if len(u.buttons.Objects) != 3 {
		t.Fatalf("Expected 3 folder values, got %d", len(u.buttons.Objects))
	}
	if u.entry.Text != "" {
		t.Errorf("Expected entry cleared by expansion, got %q", u.entry.Text)
	}

	test.Tap(optionButton(t, u, 1)) // 2437
	u.entry.OnSubmitted(u.entry.Text)

	result, _ := u.result.Get()
	if result != "seed - 2437" {
		t.Errorf("Expected 'seed - 2437', got %q", result)
	}
}

func TestUIEmptyTable(t *testing.T) {
	test.NewApp()

	table, err := LoadRowTable(writeTemp(t, "rows.csv", ""))
	if err != nil {
		t.Fatalf("LoadRowTable failed: %v", err)
	}
	u := newUI(NewRowSession(table, Config{Seed: "seed"}), nil, true)

	if u.sectionLabel.Text != "No more lines to read." {
		t.Errorf("Expected end-of-data label, got %q", u.sectionLabel.Text)
	}
	if len(u.buttons.Objects) != 0 {
		t.Errorf("Expected no buttons, got %d", len(u.buttons.Objects))
	}
}

func TestRunGUI(t *testing.T) {
	// Opening a real window requires a display and blocks on the event
	// loop; widget behavior is covered by the headless tests above.
	t.Skip("Skipping windowed GUI test")
}
