package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Qendolin/line-set-tool/pkg/logging"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// GlobalPrompts are the key bindings available on every page.
var GlobalPrompts = []ActionPrompt{{"Ctrl+C", "Quit"}, {"Ctrl+L", "Logs"}, {"Tab", "Focus"}}

// LayoutManager handles the overall visual structure of the application:
// a header with the page status and log counters, the page area and a footer
// listing key bindings.
type LayoutManager struct {
	app    AppInterface
	root   *tview.Flex
	header *tview.Flex
	status *tview.Flex
	footer *tview.TextView
	pages  *tview.Pages

	errorCounters    *tview.TextView
	prevErrorCount   int
	prevWarningCount int
}

// NewLayoutManager creates the layout and starts polling the log store
// until ctx is cancelled.
func NewLayoutManager(app AppInterface, ctx context.Context) *LayoutManager {
	lm := &LayoutManager{
		app:              app,
		pages:            tview.NewPages(),
		root:             tview.NewFlex().SetDirection(tview.FlexRow),
		header:           tview.NewFlex(),
		status:           tview.NewFlex().SetDirection(tview.FlexRow),
		footer:           tview.NewTextView().SetDynamicColors(true),
		errorCounters:    tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignRight),
		prevErrorCount:   -1,
		prevWarningCount: -1,
	}
	lm.setupLayout()
	go lm.startErrorCounterPolling(ctx)
	return lm
}

// RootPrimitive returns the primitive to set as the application's root.
func (lm *LayoutManager) RootPrimitive() tview.Primitive {
	return lm.root
}

// Pages returns the tview.Pages container for content.
func (lm *LayoutManager) Pages() *tview.Pages {
	return lm.pages
}

func (lm *LayoutManager) setupLayout() {
	lm.SetHeader(nil)

	// Boxes instead of padding to avoid a transparent gap.
	lm.header.AddItem(tview.NewBox(), 1, 0, false).
		AddItem(lm.status, 0, 1, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(lm.errorCounters, 30, 0, false).
		AddItem(tview.NewBox(), 1, 0, false)

	lm.root.SetBorder(true).
		SetTitle(" Line Set Tool ").
		SetTitleAlign(tview.AlignLeft)

	lm.root.AddItem(lm.header, 1, 0, false).
		AddItem(lm.pages, 0, 1, true).
		AddItem(lm.footer, 1, 0, false)

	lm.SetErrorCounters(0, 0)
}

// startErrorCounterPolling runs on its own goroutine. It keeps its own
// last-seen counts; the fields on lm belong to the UI goroutine.
func (lm *LayoutManager) startErrorCounterPolling(ctx context.Context) {
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	seen := counterPoll{warnings: -1, errors: -1}
	for {
		select {
		case <-ticker.C:
			logger := lm.app.GetLogger()
			if logger == nil {
				continue
			}
			if warnings, errors, changed := seen.update(logger.Store()); changed {
				lm.app.QueueUpdateDraw(func() {
					lm.SetErrorCounters(warnings, errors)
				})
			}
		case <-ctx.Done():
			logging.Debugf("LayoutManager: Stopping error counter polling.")
			return
		}
	}
}

// counterPoll remembers the counts last reported by a poller.
type counterPoll struct {
	warnings, errors int
}

// update reads the current counts from store and reports whether they
// differ from the previous call.
func (c *counterPoll) update(store *logging.LogStore) (warnings, errors int, changed bool) {
	warnings, errors = store.Counts()
	changed = warnings != c.warnings || errors != c.errors
	c.warnings, c.errors = warnings, errors
	return warnings, errors, changed
}

// SetErrorCounters updates the warning and error counters. Must be called
// on the UI goroutine.
func (lm *LayoutManager) SetErrorCounters(warnCount, errorCount int) {
	if lm.prevErrorCount == errorCount && lm.prevWarningCount == warnCount {
		return
	}
	lm.prevErrorCount = errorCount
	lm.prevWarningCount = warnCount

	lm.errorCounters.SetText(fmt.Sprintf("[yellow]Warnings: %s [red]Errors: %s",
		counterBadge(warnCount, tcell.ColorYellow), counterBadge(errorCount, tcell.ColorRed)))
}

func counterBadge(count int, highlight tcell.Color) string {
	fg, bg := tcell.ColorWhite, tcell.ColorBlack
	if count > 0 {
		fg, bg = tcell.ColorBlack, highlight
	}
	return fmt.Sprintf("[%s:%s]%d[-:-:-]", fg.Name(), bg.Name(), count)
}

// SetFooter shows the global prompts followed by the page's prompts.
func (lm *LayoutManager) SetFooter(prompts []ActionPrompt) {
	if prompts == nil {
		lm.footer.SetText("")
		return
	}
	lm.footer.SetText(FormatPrompts(append(append([]ActionPrompt{}, GlobalPrompts...), prompts...)))
}

// FormatPrompts renders prompts as "Key: Action | Key: Action".
func FormatPrompts(prompts []ActionPrompt) string {
	parts := make([]string, len(prompts))
	for i, prompt := range prompts {
		parts[i] = fmt.Sprintf("[darkcyan::b]%s[-:-:-]: %s", prompt.Input, prompt.Action)
	}
	return strings.Join(parts, " | ")
}

// SetHeader replaces the status text view shown in the header.
func (lm *LayoutManager) SetHeader(p *tview.TextView) {
	if p == nil {
		p = tview.NewTextView().SetDynamicColors(true)
	}
	lm.status.Clear()
	lm.status.AddItem(p, 0, 1, false)
}
