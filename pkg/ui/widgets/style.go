package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var (
	DefaultButtonStyle         = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	DefaultButtonActiveStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue).Underline(true)
	DefaultButtonDisabledStyle = tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(tcell.ColorDarkGray)
)

func DefaultStyleButton(button *tview.Button) {
	button.SetStyle(DefaultButtonStyle)
	button.SetActivatedStyle(DefaultButtonActiveStyle)
	button.SetDisabledStyle(DefaultButtonDisabledStyle)
}

// DefaultStyleInputField highlights the field while it has focus.
func DefaultStyleInputField(field *tview.InputField) {
	field.SetFieldTextColor(tcell.ColorBlack).
		SetFieldBackgroundColor(tcell.ColorSlateGray).
		SetPlaceholderTextColor(tcell.ColorGray)
	field.SetFocusFunc(func() {
		field.SetFieldBackgroundColor(tcell.ColorBlue)
	})
	field.SetBlurFunc(func() {
		field.SetFieldBackgroundColor(tcell.ColorSlateGray)
	})
}
