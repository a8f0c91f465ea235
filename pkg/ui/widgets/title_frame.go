package widgets

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TitleFrame wraps a primitive and draws a horizontal rule with a title above
// it. The rule turns heavy while the content has focus.
type TitleFrame struct {
	*tview.Box
	content tview.Primitive
	title   string
	color   tcell.Color
}

// NewTitleFrame creates a new TitleFrame around content.
func NewTitleFrame(content tview.Primitive, title string) *TitleFrame {
	return &TitleFrame{
		Box:     tview.NewBox(),
		content: content,
		title:   title,
		color:   tcell.ColorWhite,
	}
}

// SetTitle changes the title shown in the rule.
func (f *TitleFrame) SetTitle(title string) {
	f.title = title
}

// Draw draws the rule, the title and the content below them.
func (f *TitleFrame) Draw(screen tcell.Screen) {
	f.Box.DrawForSubclass(screen, f)
	x, y, width, height := f.GetRect()

	focused := f.HasFocus()
	lineRune := tview.BoxDrawingsLightHorizontal
	if focused {
		lineRune = tview.BoxDrawingsHeavyHorizontal
	}
	style := tcell.StyleDefault.Background(tview.Styles.PrimitiveBackgroundColor).Foreground(f.color)
	for i := 0; i < width; i++ {
		screen.SetContent(x+i, y, lineRune, nil, style)
	}

	if f.title != "" {
		titleText := " " + tview.Escape(f.title) + " "
		if focused {
			titleText = fmt.Sprintf("%c[::r]%s[-:-:-]%c", tview.BlockRightHalfBlock, tview.Escape(f.title), tview.BlockLeftHalfBlock)
		}
		tview.Print(screen, titleText, x+1, y, width-2, tview.AlignLeft, f.color)
	}

	if height <= 1 || f.content == nil {
		return
	}
	f.content.SetRect(x, y+1, width, height-1)
	f.content.Draw(screen)
}

// Focus passes focus on to the content.
func (f *TitleFrame) Focus(delegate func(p tview.Primitive)) {
	if f.content != nil {
		delegate(f.content)
		return
	}
	f.Box.Focus(delegate)
}

// HasFocus reports whether the content has focus.
func (f *TitleFrame) HasFocus() bool {
	if f.content == nil {
		return f.Box.HasFocus()
	}
	return f.content.HasFocus()
}

// MouseHandler forwards mouse events to the content.
func (f *TitleFrame) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return f.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if !f.InRect(event.Position()) {
			return false, nil
		}
		if f.content != nil {
			if consumed, capture = f.content.MouseHandler()(action, event, setFocus); consumed {
				return
			}
		}
		if action == tview.MouseLeftDown {
			setFocus(f)
			return true, nil
		}
		return false, nil
	})
}

// InputHandler forwards key events to the content.
func (f *TitleFrame) InputHandler() func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
	return f.WrapInputHandler(func(event *tcell.EventKey, setFocus func(p tview.Primitive)) {
		if f.content == nil {
			return
		}
		if handler := f.content.InputHandler(); handler != nil {
			handler(event, setFocus)
		}
	})
}

// PasteHandler forwards pasted text to the content.
func (f *TitleFrame) PasteHandler() func(pastedText string, setFocus func(p tview.Primitive)) {
	return f.WrapPasteHandler(func(pastedText string, setFocus func(p tview.Primitive)) {
		if f.content == nil {
			return
		}
		if handler := f.content.PasteHandler(); handler != nil {
			handler(pastedText, setFocus)
		}
	})
}
