package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Qendolin/line-set-tool/pkg/logging"
	"github.com/Qendolin/line-set-tool/pkg/ui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type DialogManager struct {
	app AppInterface
}

func NewDialogManager(app AppInterface) *DialogManager {
	return &DialogManager{app: app}
}

// closeThen returns a done handler that closes the dialog and calls the
// callback registered for the pressed button, if any.
func (m *DialogManager) closeThen(callbacks map[string]func()) func(int, string) {
	return func(_ int, label string) {
		go m.app.QueueUpdateDraw(func() {
			m.app.Navigation().CloseModal()
			if cb := callbacks[label]; cb != nil {
				cb()
			}
		})
	}
}

func (m *DialogManager) show(id, title string, modal *widgets.RichModal) {
	modal.SetTitle(" " + title + " ").SetTitleAlign(tview.AlignLeft)
	m.app.Navigation().ShowModal(id, NewModalPage(modal))
}

// ShowErrorDialog displays a modal dialog with an error message. When err is
// set, its wrap chain is listed below the message.
func (m *DialogManager) ShowErrorDialog(title, message string, err error, onDismiss func()) {
	modal := widgets.NewRichModal().
		SetCenteredText(message).
		AddButtons([]string{"Dismiss"}).
		SetDoneFunc(m.closeThen(map[string]func(){"Dismiss": onDismiss, "": onDismiss}))
	if err != nil {
		modal.SetDetailsText(tview.Escape(FormatErrorChain(err)))
	}
	modal.SetBackgroundColor(tcell.ColorDarkRed).
		SetTextColor(tcell.ColorWhite)
	modal.SetTitleColor(tcell.ColorWhite).SetBorderColor(tcell.ColorWhite)
	m.show("error_dialog", title, modal)
}

// ShowQuitDialog displays a confirmation dialog before quitting.
func (m *DialogManager) ShowQuitDialog() {
	modal := widgets.NewRichModal().
		SetCenteredText("Are you sure you want to quit?").
		AddButtons([]string{"Cancel", "Quit"}).
		SetDoneFunc(m.closeThen(map[string]func(){
			"Quit": func() {
				logging.Info("App: Quitting.")
				m.app.Stop()
			},
		}))
	modal.SetTextColor(tcell.ColorBlack)
	modal.SetTitleColor(tcell.ColorBlack).SetBorderColor(tcell.ColorWhite)
	m.show("quit_dialog", "Quit", modal)
}

// ShowInfoDialog displays a modal dialog with a neutral informational message.
func (m *DialogManager) ShowInfoDialog(title, message, details string, onDismiss func()) {
	modal := widgets.NewRichModal().
		SetCenteredText(message).
		AddButtons([]string{"Dismiss"}).
		SetDoneFunc(m.closeThen(map[string]func(){"Dismiss": onDismiss, "": onDismiss}))
	if details != "" {
		modal.SetDetailsText(details)
	}
	modal.SetTextColor(tcell.ColorBlack)
	modal.SetTitleColor(tcell.ColorBlack).SetBorderColor(tcell.ColorWhite)
	m.show("info_dialog", title, modal)
}

// ModalPage wraps a RichModal to conform to the Page interface.
type ModalPage struct {
	*widgets.RichModal
}

func NewModalPage(modal *widgets.RichModal) *ModalPage {
	return &ModalPage{RichModal: modal}
}

// GetActionPrompts returns no prompts; modals have their own buttons.
func (p *ModalPage) GetActionPrompts() []ActionPrompt {
	return []ActionPrompt{}
}

func (p *ModalPage) GetStatusPrimitive() *tview.TextView {
	return nil
}

// FormatErrorChain unwraps a chain of errors into one line per level, each
// showing only the part of the message that the next level does not repeat.
func FormatErrorChain(err error) string {
	var b strings.Builder
	indent := ""
	for err != nil {
		next := errors.Unwrap(err)
		msg := err.Error()
		if next != nil {
			nextMsg := next.Error()
			if i := strings.LastIndex(msg, nextMsg); i > 0 {
				msg = strings.TrimRight(strings.TrimSpace(msg[:i]), ":")
			} else if msg == nextMsg {
				// Wrappers that only add a stack trace repeat the message verbatim.
				err = next
				continue
			}
		}
		fmt.Fprintf(&b, "%s- %s", indent, msg)
		if next != nil {
			b.WriteRune('\n')
		}
		indent += " "
		err = next
	}
	return b.String()
}
