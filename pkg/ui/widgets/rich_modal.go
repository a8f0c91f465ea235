package widgets

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// RichModal is a centered message window with a centered message, optional
// left-aligned details and a row of buttons. Unlike tview.Modal its width
// adapts to the details text within [minWidth, maxWidth].
type RichModal struct {
	*tview.Box

	flex     *tview.Flex
	content  *tview.Flex
	message  *tview.TextView
	details  *tview.TextView
	form     *tview.Form
	minWidth int
	maxWidth int

	done func(buttonIndex int, buttonLabel string)
}

// NewRichModal returns a new RichModal message window.
func NewRichModal() *RichModal {
	m := &RichModal{
		Box:      tview.NewBox().SetBorder(true),
		minWidth: 40,
		maxWidth: 120,
	}
	m.Box.SetBorderPadding(1, 1, 1, 1)

	m.message = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	m.details = tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(false)

	m.form = tview.NewForm().
		SetButtonsAlign(tview.AlignCenter).
		SetButtonStyle(DefaultButtonStyle).
		SetButtonActivatedStyle(DefaultButtonActiveStyle)
	m.form.SetBorderPadding(1, 0, 0, 0)
	m.form.SetCancelFunc(func() {
		if m.done != nil {
			m.done(-1, "")
		}
	})

	m.content = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(m.message, 0, 1, false).
		AddItem(m.details, 0, 1, false)
	m.flex = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(m.content, 0, 1, false).
		AddItem(m.form, 2, 0, true)

	m.SetBackgroundColor(tview.Styles.ContrastBackgroundColor)
	return m
}

// SetBackgroundColor sets the background color of the modal and its contents.
func (m *RichModal) SetBackgroundColor(color tcell.Color) *RichModal {
	m.Box.SetBackgroundColor(color)
	m.flex.SetBackgroundColor(color)
	m.content.SetBackgroundColor(color)
	m.message.SetBackgroundColor(color)
	m.details.SetBackgroundColor(color)
	m.form.SetBackgroundColor(color)
	return m
}

// SetTextColor sets the color of the message and the details.
func (m *RichModal) SetTextColor(color tcell.Color) *RichModal {
	m.message.SetTextColor(color)
	m.details.SetTextColor(color)
	return m
}

// SetDoneFunc sets the handler called with the pressed button. Escape calls
// it with index -1 and an empty label.
func (m *RichModal) SetDoneFunc(handler func(buttonIndex int, buttonLabel string)) *RichModal {
	m.done = handler
	return m
}

// SetCenteredText sets the main message.
func (m *RichModal) SetCenteredText(text string) *RichModal {
	m.message.SetText(text)
	return m
}

// SetDetailsText sets the left-aligned details shown below the message.
func (m *RichModal) SetDetailsText(text string) *RichModal {
	m.details.SetText(text)
	return m
}

// AddButtons adds buttons to the window.
func (m *RichModal) AddButtons(labels []string) *RichModal {
	for index, label := range labels {
		index, label := index, label
		m.form.AddButton(label, func() {
			if m.done != nil {
				m.done(index, label)
			}
		})
	}
	return m
}

// Focus is called when this primitive receives focus.
func (m *RichModal) Focus(delegate func(p tview.Primitive)) {
	delegate(m.flex)
}

// HasFocus returns whether or not this primitive has focus.
func (m *RichModal) HasFocus() bool {
	return m.flex.HasFocus()
}

// Draw sizes the window to its text and draws it centered on the screen.
func (m *RichModal) Draw(screen tcell.Screen) {
	screenWidth, screenHeight := screen.Size()

	buttonsWidth := 0
	for i := 0; i < m.form.GetButtonCount(); i++ {
		buttonsWidth += tview.TaggedStringWidth(m.form.GetButton(i).GetLabel()) + 6
	}

	detailsText := m.details.GetText(true)
	longestLine := 0
	for _, line := range strings.Split(detailsText, "\n") {
		longestLine = max(longestLine, tview.TaggedStringWidth(line))
	}

	// 4 = border + padding on both sides.
	width := max(longestLine+4, screenWidth*2/5, m.minWidth)
	width = min(width, m.maxWidth)
	width = max(width, buttonsWidth+4)
	width = min(width, screenWidth)
	innerWidth := width - 4

	messageHeight := 0
	if text := m.message.GetText(true); text != "" {
		messageHeight = len(tview.WordWrap(text, innerWidth))
	}
	detailsHeight := 0
	if detailsText != "" {
		detailsHeight = len(strings.Split(detailsText, "\n"))
	}
	spacer := 0
	if messageHeight > 0 && detailsHeight > 0 {
		spacer = 1
	}
	m.details.SetBorderPadding(spacer, 0, 0, 0)
	m.content.ResizeItem(m.message, messageHeight, 0)
	m.content.ResizeItem(m.details, detailsHeight+spacer, 0)

	height := min(messageHeight+spacer+detailsHeight+2+4, screenHeight)
	m.SetRect((screenWidth-width)/2, (screenHeight-height)/2, width, height)

	m.Box.DrawForSubclass(screen, m)
	x, y, w, h := m.GetInnerRect()
	m.flex.SetRect(x, y, w, h)
	m.flex.Draw(screen)
}

// MouseHandler delegates mouse events to the flex layout.
func (m *RichModal) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return m.flex.MouseHandler()
}

// InputHandler delegates input events to the flex layout.
func (m *RichModal) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return m.flex.InputHandler()
}
