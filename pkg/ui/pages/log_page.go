package pages

import (
	"fmt"
	"strings"

	"github.com/Qendolin/line-set-tool/pkg/logging"
	"github.com/Qendolin/line-set-tool/pkg/ui"
	"github.com/Qendolin/line-set-tool/pkg/ui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// LogPage shows the entries of the logger's in-memory store.
type LogPage struct {
	*tview.Flex
	app        ui.AppInterface
	statusText *tview.TextView
	logView    *tview.TextView
	rendered   int
}

// NewLogPage creates a new LogPage instance.
func NewLogPage(app ui.AppInterface) *LogPage {
	p := &LogPage{
		Flex:       tview.NewFlex().SetDirection(tview.FlexRow),
		app:        app,
		statusText: tview.NewTextView().SetDynamicColors(true),
		rendered:   -1,
		logView: tview.NewTextView().
			SetDynamicColors(true).
			SetScrollable(true).
			SetWrap(true),
	}
	p.logView.SetBorderPadding(0, 0, 1, 1)
	p.AddItem(widgets.NewTitleFrame(p.logView, "Log"), 0, 1, true)

	p.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape:
			p.app.Navigation().GoBack()
			return nil
		case event.Key() == tcell.KeyRune && (event.Rune() == 'r' || event.Rune() == 'R'):
			p.refresh()
			return nil
		}
		return event
	})
	return p
}

// OnPageActivated reloads the log whenever the page is shown.
func (p *LogPage) OnPageActivated() {
	p.refresh()
}

func (p *LogPage) refresh() {
	logger := p.app.GetLogger()
	if logger == nil {
		return
	}
	// Unchanged logs keep the current scroll position.
	if logger.Store().Len() == p.rendered {
		return
	}
	entries := logger.Store().GetAll()
	p.rendered = len(entries)
	p.logView.SetText(FormatLogEntries(entries)).ScrollToEnd()
	p.statusText.SetText(fmt.Sprintf("Viewing application logs (%d entries).", len(entries)))
}

// FormatLogEntries renders entries as color-tagged lines for a TextView.
func FormatLogEntries(entries []logging.LogEntry) string {
	var sb strings.Builder
	for _, entry := range entries {
		color := "white"
		switch entry.Level {
		case logging.LevelDebug:
			color = "gray"
		case logging.LevelWarn:
			color = "yellow"
		case logging.LevelError:
			color = "red"
		}
		fmt.Fprintf(&sb, "[gray]%s[-] [%s]%-5s[-] %s\n",
			entry.Timestamp.Format("15:04:05.000"), color, entry.Level, tview.Escape(entry.Message))
	}
	return sb.String()
}

// GetActionPrompts returns the key actions for the log page.
func (p *LogPage) GetActionPrompts() []ui.ActionPrompt {
	return []ui.ActionPrompt{
		{Input: "Esc", Action: "Back"},
		{Input: "R", Action: "Refresh"},
	}
}

// GetStatusPrimitive returns the tview.Primitive that displays the page's status
func (p *LogPage) GetStatusPrimitive() *tview.TextView {
	return p.statusText
}
