package selector

import (
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"omarchy.dev/screensaver/internal/platform"
)

const (
	pageStep   = 10
	maxVisible = 20
)

type mode int

const (
	modeList mode = iota
	modeEditor
	modeInput
	modeNotice
)

var (
	styleNormal   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleAccent   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	styleSelected = styleNormal.Reverse(true)
)

type editorState struct {
	index   int
	title   string
	opts    []Option
	current int
	buf     []rune
}

// App is the selector TUI.
type App struct {
	screen  tcell.Screen
	catalog []Descriptor

	selected int
	pendingG bool
	mode     mode
	editor   *editorState
	notice   []string
	status   string

	installDir string
	hookPath   string
	backupPath string
	preview    *Preview
}

// NewApp builds the TUI over the given paths and subprocess runner.
func NewApp(installDir, hookPath, backupPath string, runner platform.Runner) *App {
	return &App{
		catalog:    Catalog(),
		installDir: installDir,
		hookPath:   hookPath,
		backupPath: backupPath,
		preview:    NewPreview(runner),
	}
}

// Run drives the event loop until the user quits.
func (a *App) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	a.screen = screen
	screen.EnableMouse()
	defer func() {
		a.preview.Stop()
		screen.Fini()
	}()

	for {
		a.draw()
		if !a.handleEvent(screen.PollEvent()) {
			return nil
		}
	}
}

// handleEvent processes one event; false means quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		return true
	case *tcell.EventMouse:
		a.handleMouse(ev)
		return true
	case *tcell.EventKey:
		switch a.mode {
		case modeEditor:
			a.handleEditorKey(ev)
			return true
		case modeInput:
			a.handleInputKey(ev)
			return true
		case modeNotice:
			a.mode = modeList
			a.notice = nil
			return true
		default:
			return a.handleListKey(ev)
		}
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	if a.mode != modeList || ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	w, _ := a.screen.Size()
	if x >= a.listWidth(w) || y < 2 {
		return
	}
	idx := a.pageStart() + y - 2
	if idx >= 0 && idx < len(a.catalog) {
		a.selected = idx
	}
}

func (a *App) handleListKey(ev *tcell.EventKey) bool {
	defer func() {
		if ev.Key() != tcell.KeyRune || ev.Rune() != 'g' {
			a.pendingG = false
		}
	}()

	switch ev.Key() {
	case tcell.KeyUp, tcell.KeyLeft:
		a.move(-1)
	case tcell.KeyDown, tcell.KeyRight:
		a.move(1)
	case tcell.KeyPgUp, tcell.KeyCtrlU:
		a.move(-pageStep)
	case tcell.KeyPgDn, tcell.KeyCtrlD:
		a.move(pageStep)
	case tcell.KeyEnter:
		a.commit()
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'h':
			a.move(-1)
		case 'j', 'l':
			a.move(1)
		case 'g':
			if a.pendingG {
				a.selected = 0
				a.pendingG = false
			} else {
				a.pendingG = true
			}
		case 'G':
			a.selected = len(a.catalog) - 1
		case 'q', 'Q':
			return false
		case 'c', 'C':
			a.openEditor()
		case 'p', 'P':
			a.startPreview()
		case 'r', 'R':
			a.restoreDefault()
		}
	}
	return true
}

func (a *App) move(delta int) {
	a.selected += delta
	if a.selected < 0 {
		a.selected = 0
	}
	if a.selected >= len(a.catalog) {
		a.selected = len(a.catalog) - 1
	}
}

func (a *App) binaryPath(d *Descriptor) string {
	return filepath.Join(a.installDir, d.Key)
}

func (a *App) commit() {
	d := &a.catalog[a.selected]
	path := a.binaryPath(d)
	if err := WriteHook(a.hookPath, path, d.Options); err != nil {
		a.status = "Install failed: " + err.Error()
		return
	}
	a.notice = []string{
		fmt.Sprintf("Screensaver Selected: %s %s", d.Emoji, d.Key),
		"",
		"Script updated successfully!",
		fmt.Sprintf("Command: SDL_VIDEODRIVER=wayland %s %s", path, d.Options),
		"",
		"The screensaver will now use this selection.",
		"",
		"Press any key to continue...",
	}
	a.mode = modeNotice
	a.status = "Selected: " + d.Key
}

func (a *App) openEditor() {
	d := &a.catalog[a.selected]
	opts := SchemaFor(d.Key)
	if opts == nil {
		a.notice = []string{
			fmt.Sprintf("%s %s", d.Emoji, d.Key),
			"",
			"No configuration options",
			"available for this screensaver.",
			"",
			"Press any key to continue...",
		}
		a.mode = modeNotice
		return
	}
	ParseInto(opts, d.Options)
	a.editor = &editorState{
		index: a.selected,
		title: fmt.Sprintf("Configure %s %s", d.Emoji, d.Key),
		opts:  opts,
	}
	a.mode = modeEditor
}

func (a *App) startPreview() {
	d := &a.catalog[a.selected]
	if err := a.preview.Start(a.binaryPath(d), d.Options); err != nil {
		a.status = "Preview failed: " + err.Error()
		return
	}
	a.status = "Previewing " + d.Key + " (10s)"
}

func (a *App) restoreDefault() {
	if err := RestoreDefault(a.backupPath, a.hookPath); err != nil {
		a.status = "Restore failed: " + err.Error()
		return
	}
	a.status = "Restored: Default screensaver"
}

func (a *App) handleEditorKey(ev *tcell.EventKey) {
	ed := a.editor
	switch ev.Key() {
	case tcell.KeyUp:
		if ed.current > 0 {
			ed.current--
		}
	case tcell.KeyDown:
		if ed.current < len(ed.opts)-1 {
			ed.current++
		}
	case tcell.KeyEnter:
		if ed.opts[ed.current].Kind == KindString {
			ed.buf = []rune(ed.opts[ed.current].Text)
			a.mode = modeInput
		}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.editor = nil
		a.mode = modeList
	case tcell.KeyRune:
		switch ev.Rune() {
		case '+', '=':
			ed.opts[ed.current].Adjust(1)
		case '-':
			ed.opts[ed.current].Adjust(-1)
		case 's', 'S':
			a.catalog[ed.index].Options = Compose(ed.opts)
			a.status = "Saved options for " + a.catalog[ed.index].Key
			a.editor = nil
			a.mode = modeList
		case 'q', 'Q':
			a.editor = nil
			a.mode = modeList
		}
	}
}

func (a *App) handleInputKey(ev *tcell.EventKey) {
	ed := a.editor
	switch ev.Key() {
	case tcell.KeyEnter:
		ed.opts[ed.current].Text = string(ed.buf)
		a.mode = modeEditor
	case tcell.KeyEscape:
		a.mode = modeEditor
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(ed.buf) > 0 {
			ed.buf = ed.buf[:len(ed.buf)-1]
		}
	case tcell.KeyRune:
		ed.buf = append(ed.buf, ev.Rune())
	}
}

func (a *App) listWidth(total int) int {
	return total * 6 / 10
}

// pageStart is the first catalog index of the page holding the selection.
func (a *App) pageStart() int {
	start := (a.selected / maxVisible) * maxVisible
	if start+maxVisible > len(a.catalog) {
		start = len(a.catalog) - maxVisible
		if start < 0 {
			start = 0
		}
	}
	return start
}

func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()

	switch a.mode {
	case modeEditor, modeInput:
		a.drawEditor(w, h)
	default:
		a.drawPanes(w, h)
		if a.mode == modeNotice {
			a.drawNotice(w, h)
		}
	}
	a.screen.Show()
}

func (a *App) drawPanes(w, h int) {
	listW := a.listWidth(w)
	a.drawBox(0, 0, listW, h, styleNormal)
	a.drawText(2, 1, styleAccent, "Screensaver Configuration Tool")

	start := a.pageStart()
	for i := start; i < len(a.catalog) && i < start+maxVisible; i++ {
		d := &a.catalog[i]
		style := styleNormal
		if i == a.selected {
			style = styleSelected
		}
		line := fmt.Sprintf("%d. %s %s", i+1, d.Emoji, d.Key)
		a.drawText(2, 2+i-start, style, runewidth.Truncate(line, listW-4, "..."))
	}

	a.drawText(2, h-3, styleNormal, runewidth.Truncate(
		"Nav: ↑↓hjkl PgUp/PgDn gg/G Ctrl+U/D | ENTER select | C config | P preview | R restore | Q quit",
		listW-4, ""))
	if a.status != "" {
		a.drawText(2, h-2, styleAccent, runewidth.Truncate(a.status, listW-4, ""))
	}

	a.drawDescription(listW+1, 0, w-listW-1, h)
}

func (a *App) drawDescription(x, y, w, h int) {
	d := &a.catalog[a.selected]
	a.drawBox(x, y, w, h, styleNormal)

	header := fmt.Sprintf("%s %s %s", d.Emoji, d.Key, d.Title)
	if d.Options != "" {
		header += " [CONFIGURED]"
	}
	a.drawText(x+2, y, styleAccent, runewidth.Truncate(header, w-4, ""))

	row := y + 2
	for _, line := range WordWrap(d.Description, w-4) {
		if row >= h-5 {
			break
		}
		a.drawText(x+2, row, styleNormal, line)
		row++
	}

	if d.Options != "" {
		a.drawText(x+2, row+1, styleNormal, runewidth.Truncate("Options: "+d.Options, w-4, ""))
	}

	hint := "(Non-configurable)"
	if d.Configurable() {
		hint = "(Configurable with C key)"
	}
	a.drawText(x+2, h-3, styleAccent, hint)
}

func (a *App) drawEditor(w, h int) {
	ed := a.editor
	a.drawBox(2, 1, w-4, h-2, styleNormal)
	a.drawText(4, 2, styleAccent, ed.title)

	for i := range ed.opts {
		o := &ed.opts[i]
		style := styleNormal
		if i == ed.current {
			style = styleSelected
		}
		row := 4 + i*2
		a.drawText(6, row, style, fmt.Sprintf("%-10s %s", o.Name+":", o.Display()))
		a.drawText(8, row+1, styleNormal, o.Description)
	}

	a.drawText(4, h-6, styleNormal, "Use ↑↓ to navigate, +/- to adjust values, Enter edits text")
	a.drawText(4, h-5, styleNormal, "S: Save configuration | Esc: Cancel")

	if a.mode == modeInput {
		a.drawText(4, h-4, styleAccent, "Enter text:")
		a.drawText(4, h-3, styleNormal, string(ed.buf)+"_")
	}
}

func (a *App) drawNotice(w, h int) {
	boxW := w - 8
	boxH := len(a.notice) + 2
	x := 4
	y := (h - boxH) / 2
	a.fillRect(x, y, boxW, boxH, styleNormal)
	a.drawBox(x, y, boxW, boxH, styleAccent)
	for i, line := range a.notice {
		a.drawText(x+2, y+1+i, styleNormal, runewidth.Truncate(line, boxW-4, ""))
	}
}

func (a *App) drawText(x, y int, style tcell.Style, s string) {
	col := x
	for _, r := range s {
		a.screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

func (a *App) fillRect(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			a.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (a *App) drawBox(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for col := x + 1; col < x+w-1; col++ {
		a.screen.SetContent(col, y, tcell.RuneHLine, nil, style)
		a.screen.SetContent(col, y+h-1, tcell.RuneHLine, nil, style)
	}
	for row := y + 1; row < y+h-1; row++ {
		a.screen.SetContent(x, row, tcell.RuneVLine, nil, style)
		a.screen.SetContent(x+w-1, row, tcell.RuneVLine, nil, style)
	}
	a.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	a.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	a.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	a.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}
