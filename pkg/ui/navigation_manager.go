package ui

import (
	"github.com/Qendolin/line-set-tool/pkg/logging"
	"github.com/rivo/tview"
)

// PageChrome is the part of the layout that follows the active page: the
// footer prompts and the header status.
type PageChrome interface {
	SetFooter(prompts []ActionPrompt)
	SetHeader(p *tview.TextView)
}

type modalEntry struct {
	id   string
	page Page
}

// NavigationManager switches between persistent pages and stacks transient
// modal pages (dialogs, the file picker) on top of them. The active page
// always owns the chrome and the focus.
type NavigationManager struct {
	pages  *tview.Pages
	chrome PageChrome
	focus  func(tview.Primitive)

	persistent map[string]Page
	current    string
	history    []string
	modals     []modalEntry
}

// NewNavigationManager creates a manager that shows pages in pages and
// reports the active page to chrome and focus.
func NewNavigationManager(pages *tview.Pages, chrome PageChrome, focus func(tview.Primitive)) *NavigationManager {
	return &NavigationManager{
		pages:      pages,
		chrome:     chrome,
		focus:      focus,
		persistent: make(map[string]Page),
	}
}

// Register adds a persistent page. Registering an ID twice replaces the page.
func (n *NavigationManager) Register(pageID string, page Page) {
	if _, exists := n.persistent[pageID]; exists {
		logging.Warnf("NavigationManager: Page '%s' registered twice, replacing it.", pageID)
		n.pages.RemovePage(pageID)
	}
	n.persistent[pageID] = page
	n.pages.AddPage(pageID, page, true, false)
}

// SwitchTo shows the persistent page pageID, closing any open modals. The
// page that was active is remembered for GoBack.
func (n *NavigationManager) SwitchTo(pageID string) {
	if _, ok := n.persistent[pageID]; !ok {
		logging.Errorf("NavigationManager: Unknown page '%s'.", pageID)
		return
	}
	n.closeAllModals()
	if n.current == pageID {
		n.activate()
		return
	}
	if n.current != "" {
		n.history = append(n.history, n.current)
	}
	n.show(pageID)
}

// GoBack returns to the previously active persistent page, if any.
func (n *NavigationManager) GoBack() {
	if len(n.history) == 0 {
		return
	}
	n.closeAllModals()
	last := n.history[len(n.history)-1]
	n.history = n.history[:len(n.history)-1]
	n.show(last)
}

func (n *NavigationManager) show(pageID string) {
	n.current = pageID
	n.pages.SwitchToPage(pageID)
	n.activate()
}

// activate hands chrome and focus to the front-most page and notifies a
// persistent page that it became visible.
func (n *NavigationManager) activate() {
	page := n.GetCurrentPage()
	n.applyChrome(page)
	if len(n.modals) > 0 {
		return
	}
	if activator, ok := page.(PageActivator); ok {
		activator.OnPageActivated()
	}
}

func (n *NavigationManager) applyChrome(page Page) {
	if page == nil {
		n.chrome.SetFooter(nil)
		n.chrome.SetHeader(nil)
		return
	}
	n.chrome.SetFooter(page.GetActionPrompts())
	n.chrome.SetHeader(page.GetStatusPrimitive())
	if n.focus != nil {
		n.focus(page)
	}
}

// ShowModal displays page over the current view until CloseModal.
func (n *NavigationManager) ShowModal(pageID string, page Page) {
	n.pages.AddPage(pageID, page, true, true)
	n.modals = append(n.modals, modalEntry{id: pageID, page: page})
	n.applyChrome(page)
}

// CloseModal removes the top-most modal and returns control to the page
// below it. The persistent page is not re-activated.
func (n *NavigationManager) CloseModal() {
	if len(n.modals) == 0 {
		return
	}
	top := n.modals[len(n.modals)-1]
	n.modals = n.modals[:len(n.modals)-1]
	n.pages.RemovePage(top.id)
	n.applyChrome(n.GetCurrentPage())
}

func (n *NavigationManager) closeAllModals() {
	for _, m := range n.modals {
		n.pages.RemovePage(m.id)
	}
	n.modals = nil
}

// HasModal reports whether a modal page is open.
func (n *NavigationManager) HasModal() bool {
	return len(n.modals) > 0
}

// GetCurrentPage returns the front-most page, modal or persistent, or nil
// before the first SwitchTo.
func (n *NavigationManager) GetCurrentPage() Page {
	if len(n.modals) > 0 {
		return n.modals[len(n.modals)-1].page
	}
	return n.persistent[n.current]
}

// ToggleLogPage shows the log page, or goes back if it is already showing.
func (n *NavigationManager) ToggleLogPage() {
	if n.current == PageLogID {
		n.GoBack()
		return
	}
	n.SwitchTo(PageLogID)
}
