package pages

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Qendolin/line-set-tool/pkg/logging"
	"github.com/Qendolin/line-set-tool/pkg/ui"
	"github.com/Qendolin/line-set-tool/pkg/ui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// DirEntry is one row of the file picker.
type DirEntry struct {
	Name  string
	Path  string
	IsDir bool
}

// ListDir returns the entries of dir for the picker: a ".." entry unless dir
// is a filesystem root, then directories, then files, each group sorted
// case-insensitively. Hidden entries (leading dot) are skipped unless
// showHidden is set. Symlinks are classified by their target.
func ListDir(dir string, showHidden bool) ([]DirEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var dirs, files []DirEntry
	for _, de := range dirEntries {
		name := de.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)
		isDir := de.IsDir()
		if de.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil {
				isDir = info.IsDir()
			}
		}
		entry := DirEntry{Name: name, Path: path, IsDir: isDir}
		if isDir {
			dirs = append(dirs, entry)
		} else {
			files = append(files, entry)
		}
	}

	byName := func(entries []DirEntry) {
		sort.SliceStable(entries, func(i, j int) bool {
			return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
		})
	}
	byName(dirs)
	byName(files)

	result := make([]DirEntry, 0, len(dirs)+len(files)+1)
	if parent := filepath.Dir(dir); parent != dir {
		result = append(result, DirEntry{Name: "..", Path: parent, IsDir: true})
	}
	result = append(result, dirs...)
	return append(result, files...), nil
}

// PickerPage is a modal directory browser used to choose an input file.
type PickerPage struct {
	*tview.Flex
	app        ui.AppInterface
	statusText *tview.TextView
	list       *tview.List
	frame      *widgets.TitleFrame

	dir        string
	showHidden bool
	entries    []DirEntry
	onPick     func(path string)
	onCancel   func()
}

// NewPickerPage creates a picker starting in startDir. onPick receives the
// absolute path of the chosen file; onCancel is called on Escape.
func NewPickerPage(app ui.AppInterface, slot int, startDir string, showHidden bool, onPick func(path string), onCancel func()) *PickerPage {
	p := &PickerPage{
		Flex:       tview.NewFlex().SetDirection(tview.FlexRow),
		app:        app,
		statusText: tview.NewTextView().SetDynamicColors(true),
		list:       tview.NewList().ShowSecondaryText(false).SetHighlightFullLine(true),
		showHidden: showHidden,
		onPick:     onPick,
		onCancel:   onCancel,
	}
	p.list.SetSelectedBackgroundColor(tcell.ColorBlue)
	p.list.SetBorderPadding(0, 0, 1, 1)
	p.frame = widgets.NewTitleFrame(p.list, "")
	p.AddItem(p.frame, 0, 1, true)

	p.list.SetSelectedFunc(func(index int, _ string, _ string, _ rune) {
		if index < 0 || index >= len(p.entries) {
			return
		}
		entry := p.entries[index]
		if entry.IsDir {
			p.load(entry.Path)
			return
		}
		logging.Infof("Picker: Selected '%s' for file %d.", entry.Path, slot)
		if p.onPick != nil {
			p.onPick(entry.Path)
		}
	})
	p.SetInputCapture(p.inputHandler())

	if abs, err := filepath.Abs(startDir); err == nil {
		startDir = abs
	}
	p.load(startDir)
	p.statusText.SetText(fmt.Sprintf("Choose file %d.", slot))
	return p
}

func (p *PickerPage) inputHandler() func(event *tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape:
			if p.onCancel != nil {
				p.onCancel()
			}
			return nil
		case tcell.KeyCtrlT:
			p.showHidden = !p.showHidden
			p.load(p.dir)
			return nil
		case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyLeft:
			p.load(filepath.Dir(p.dir))
			return nil
		}
		return event
	}
}

// load lists dir. On failure the current listing stays and the error is shown.
func (p *PickerPage) load(dir string) {
	entries, err := ListDir(dir, p.showHidden)
	if err != nil {
		logging.Warnf("Picker: Cannot list '%s': %v", dir, err)
		p.statusText.SetText(fmt.Sprintf("[red]Cannot open '%s': %v[-]", tview.Escape(dir), tview.Escape(err.Error())))
		return
	}

	previous := p.dir
	p.dir = dir
	p.entries = entries
	p.frame.SetTitle(dir)
	p.list.Clear()
	selected := 0
	for i, entry := range entries {
		label := tview.Escape(entry.Name)
		if entry.IsDir {
			label = "[::b]" + label + string(filepath.Separator) + "[-:-:-]"
		}
		p.list.AddItem(label, "", 0, nil)
		// Going up keeps the directory we came from selected.
		if entry.Path == previous && entry.Name != ".." {
			selected = i
		}
	}
	p.list.SetCurrentItem(selected)
	p.statusText.SetText(fmt.Sprintf("%d entries", len(entries)))
}

// Dir returns the directory currently listed.
func (p *PickerPage) Dir() string {
	return p.dir
}

// GetActionPrompts returns the key actions for the picker.
func (p *PickerPage) GetActionPrompts() []ui.ActionPrompt {
	return []ui.ActionPrompt{
		{Input: "Enter", Action: "Open/Select"},
		{Input: "Backspace", Action: "Parent"},
		{Input: "Ctrl+T", Action: "Hidden Files"},
		{Input: "Esc", Action: "Cancel"},
	}
}

// GetStatusPrimitive returns the tview.Primitive that displays the page's status
func (p *PickerPage) GetStatusPrimitive() *tview.TextView {
	return p.statusText
}
