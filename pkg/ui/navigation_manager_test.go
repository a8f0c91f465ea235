package ui

import (
	"testing"

	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPage struct {
	*tview.Box
	prompts     []ActionPrompt
	status      *tview.TextView
	activations int
}

func newStubPage(action string) *stubPage {
	return &stubPage{
		Box:     tview.NewBox(),
		prompts: []ActionPrompt{{Input: "X", Action: action}},
		status:  tview.NewTextView(),
	}
}

func (p *stubPage) GetActionPrompts() []ActionPrompt   { return p.prompts }
func (p *stubPage) GetStatusPrimitive() *tview.TextView { return p.status }
func (p *stubPage) OnPageActivated()                    { p.activations++ }

type recordingChrome struct {
	footer []ActionPrompt
	header *tview.TextView
}

func (c *recordingChrome) SetFooter(prompts []ActionPrompt) { c.footer = prompts }
func (c *recordingChrome) SetHeader(p *tview.TextView)      { c.header = p }

func newTestNavigation() (*NavigationManager, *recordingChrome, *tview.Primitive) {
	chrome := &recordingChrome{}
	var focused tview.Primitive
	nav := NewNavigationManager(tview.NewPages(), chrome, func(p tview.Primitive) { focused = p })
	return nav, chrome, &focused
}

func TestNavigationSwitchAndGoBack(t *testing.T) {
	nav, chrome, focused := newTestNavigation()
	main, logs := newStubPage("Main"), newStubPage("Logs")
	nav.Register(PageMainID, main)
	nav.Register(PageLogID, logs)
	require.Nil(t, nav.GetCurrentPage())

	nav.SwitchTo(PageMainID)
	assert.Equal(t, Page(main), nav.GetCurrentPage())
	assert.Equal(t, main.prompts, chrome.footer)
	assert.Same(t, main.status, chrome.header)
	assert.Equal(t, tview.Primitive(main), *focused)
	assert.Equal(t, 1, main.activations)

	nav.ToggleLogPage()
	assert.Equal(t, Page(logs), nav.GetCurrentPage())
	assert.Equal(t, 1, logs.activations)

	nav.ToggleLogPage()
	assert.Equal(t, Page(main), nav.GetCurrentPage())
	assert.Equal(t, 2, main.activations)

	// History is empty again.
	nav.GoBack()
	assert.Equal(t, Page(main), nav.GetCurrentPage())
	assert.Equal(t, 2, main.activations)
}

func TestNavigationModals(t *testing.T) {
	nav, chrome, focused := newTestNavigation()
	main, picker, dialog := newStubPage("Main"), newStubPage("Picker"), newStubPage("Dialog")
	nav.Register(PageMainID, main)
	nav.SwitchTo(PageMainID)

	nav.ShowModal(PagePickerID, picker)
	nav.ShowModal("error_dialog", dialog)
	assert.True(t, nav.HasModal())
	assert.Equal(t, Page(dialog), nav.GetCurrentPage())
	assert.Equal(t, dialog.prompts, chrome.footer)

	nav.CloseModal()
	assert.Equal(t, Page(picker), nav.GetCurrentPage())
	assert.Equal(t, tview.Primitive(picker), *focused)

	nav.CloseModal()
	assert.False(t, nav.HasModal())
	assert.Equal(t, Page(main), nav.GetCurrentPage())
	assert.Equal(t, main.prompts, chrome.footer)
	// Closing a modal does not count as re-activating the page below.
	assert.Equal(t, 1, main.activations)

	nav.CloseModal()
	assert.Equal(t, Page(main), nav.GetCurrentPage())
}

func TestNavigationSwitchClosesModals(t *testing.T) {
	nav, _, _ := newTestNavigation()
	main, logs := newStubPage("Main"), newStubPage("Logs")
	nav.Register(PageMainID, main)
	nav.Register(PageLogID, logs)
	nav.SwitchTo(PageMainID)
	nav.ShowModal(PagePickerID, newStubPage("Picker"))

	nav.SwitchTo(PageLogID)
	assert.False(t, nav.HasModal())
	assert.Equal(t, Page(logs), nav.GetCurrentPage())

	nav.SwitchTo("missing")
	assert.Equal(t, Page(logs), nav.GetCurrentPage())
}
