package selector

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	return NewApp(dir, filepath.Join(dir, "omarchy-cmd-screensaver"),
		filepath.Join(dir, "backup"), &fakeRunner{})
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func special(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestListNavigation(t *testing.T) {
	a := newTestApp(t)
	last := len(a.catalog) - 1

	a.handleListKey(key('j'))
	a.handleListKey(key('j'))
	a.handleListKey(key('k'))
	if a.selected != 1 {
		t.Fatalf("selected = %d after jjk, want 1", a.selected)
	}

	a.handleListKey(key('G'))
	if a.selected != last {
		t.Fatalf("G selected %d, want %d", a.selected, last)
	}

	a.handleListKey(key('g'))
	a.handleListKey(key('g'))
	if a.selected != 0 {
		t.Fatalf("gg selected %d, want 0", a.selected)
	}

	// A lone g followed by another key must not jump.
	a.handleListKey(key('j'))
	a.handleListKey(key('g'))
	a.handleListKey(key('j'))
	if a.selected != 2 {
		t.Fatalf("g then j selected %d, want 2", a.selected)
	}

	a.handleListKey(special(tcell.KeyCtrlD))
	if a.selected != 12 {
		t.Fatalf("Ctrl-D selected %d, want 12", a.selected)
	}
	a.handleListKey(special(tcell.KeyCtrlD))
	if a.selected != last {
		t.Fatalf("Ctrl-D clamp selected %d, want %d", a.selected, last)
	}
	a.handleListKey(special(tcell.KeyCtrlU))
	a.handleListKey(special(tcell.KeyCtrlU))
	if a.selected != 0 {
		t.Fatalf("Ctrl-U clamp selected %d, want 0", a.selected)
	}
}

func TestQuitKeys(t *testing.T) {
	a := newTestApp(t)
	if a.handleListKey(key('q')) {
		t.Error("q did not quit")
	}
	if a.handleListKey(special(tcell.KeyEscape)) {
		t.Error("Esc did not quit")
	}
	if a.handleListKey(key('j')) == false {
		t.Error("j must not quit")
	}
}

func TestEditorOpensOnlyForConfigurable(t *testing.T) {
	a := newTestApp(t)

	// starsclean (index 1) has no schema.
	a.selected = 1
	a.handleListKey(key('c'))
	if a.mode != modeNotice {
		t.Fatalf("mode = %d, want notice for non-configurable entry", a.mode)
	}
	a.mode = modeList
	a.notice = nil

	a.selected = 0 // starrynight
	a.handleListKey(key('c'))
	if a.mode != modeEditor || a.editor == nil {
		t.Fatal("editor did not open for starrynight")
	}
}

func TestEditorAdjustSaveAndCancel(t *testing.T) {
	a := newTestApp(t)
	a.selected = 0
	a.handleListKey(key('c'))

	a.handleEditorKey(key('+'))
	a.handleEditorKey(key('+'))
	a.handleEditorKey(key('s'))
	if a.mode != modeList {
		t.Fatal("save did not close the editor")
	}
	if !strings.Contains(a.catalog[0].Options, "-s 1.2") {
		t.Fatalf("options = %q, want speed bumped to 1.2", a.catalog[0].Options)
	}

	// Reopen, adjust, cancel: saved options stay as they were.
	a.handleListKey(key('c'))
	a.handleEditorKey(key('+'))
	a.handleEditorKey(special(tcell.KeyEscape))
	if !strings.Contains(a.catalog[0].Options, "-s 1.2") {
		t.Fatalf("cancel overwrote options: %q", a.catalog[0].Options)
	}
}

func TestEditorTextInput(t *testing.T) {
	a := newTestApp(t)
	for i, d := range a.catalog {
		if d.Key == "messages" {
			a.selected = i
		}
	}
	a.handleListKey(key('c'))
	a.handleEditorKey(special(tcell.KeyEnter))
	if a.mode != modeInput {
		t.Fatal("Enter on a string option did not open text input")
	}

	for _, r := range "HI!" {
		a.handleInputKey(key(r))
	}
	a.handleInputKey(special(tcell.KeyBackspace2))
	a.handleInputKey(special(tcell.KeyEnter))
	if a.mode != modeEditor {
		t.Fatal("Enter did not close text input")
	}
	a.handleEditorKey(key('s'))
	if got := a.catalog[a.selected].Options; got != `-t "HI"` {
		t.Fatalf("options = %q, want -t \"HI\"", got)
	}
}

func TestCommitWritesHook(t *testing.T) {
	a := newTestApp(t)
	a.selected = 0
	a.catalog[0].Options = "-s 2.0"
	a.commit()

	data, err := os.ReadFile(a.hookPath)
	if err != nil {
		t.Fatal(err)
	}
	launch := "SDL_VIDEODRIVER=wayland " + filepath.Join(a.installDir, "starrynight") + " -s 2.0 >/dev/null 2>&1 &"
	if !strings.Contains(string(data), launch) {
		t.Fatalf("hook missing launch line %q", launch)
	}
	if a.mode != modeNotice {
		t.Error("commit did not show the confirmation notice")
	}
}

func TestPageStart(t *testing.T) {
	a := newTestApp(t)
	if got := a.pageStart(); got != 0 {
		t.Fatalf("pageStart at top = %d, want 0", got)
	}
	a.selected = len(a.catalog) - 1
	if got := a.pageStart(); got != 0 {
		// 19 entries fit in one 20-row page.
		t.Fatalf("pageStart at bottom = %d, want 0", got)
	}
}
