package pages

import (
	"fmt"
	"strings"

	"github.com/Qendolin/line-set-tool/pkg/core/setop"
	"github.com/Qendolin/line-set-tool/pkg/ui"
	"github.com/Qendolin/line-set-tool/pkg/ui/widgets"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MainPage lets the user choose two files and an operation, run the
// calculation and copy the result.
type MainPage struct {
	*tview.Flex
	app        ui.AppInterface
	statusText *tview.TextView

	fileInputs    [2]*tview.InputField
	browseButtons [2]*tview.Button
	opDropDown    *tview.DropDown
	calcButton    *tview.Button
	copyButton    *tview.Button
	resultView    *tview.TextView
	resultFrame   *widgets.TitleFrame

	operations []setop.Operation
	// refreshing suppresses change callbacks while the page mirrors the session.
	refreshing bool
}

// NewMainPage creates a new MainPage instance.
func NewMainPage(app ui.AppInterface) *MainPage {
	p := &MainPage{
		Flex:       tview.NewFlex().SetDirection(tview.FlexRow),
		app:        app,
		statusText: tview.NewTextView().SetDynamicColors(true),
		operations: setop.Operations(),
	}
	p.setupLayout()
	p.SetInputCapture(p.inputHandler())
	p.RefreshSession()
	return p
}

func (p *MainPage) setupLayout() {
	selection := tview.NewFlex().SetDirection(tview.FlexRow)
	for i := range p.fileInputs {
		slot := i + 1
		input := tview.NewInputField().
			SetLabel(fmt.Sprintf("File %d: ", slot)).
			SetFieldWidth(0).
			SetPlaceholder("path to a text file")
		widgets.DefaultStyleInputField(input)
		input.SetChangedFunc(func(text string) {
			if !p.refreshing {
				p.app.SetFile(slot, CleanPath(text))
			}
		})

		browse := tview.NewButton("Browse").SetSelectedFunc(func() {
			p.app.PickFile(slot)
		})
		widgets.DefaultStyleButton(browse)

		p.fileInputs[i] = input
		p.browseButtons[i] = browse
		selection.AddItem(tview.NewFlex().
			AddItem(input, 0, 1, i == 0).
			AddItem(nil, 1, 0, false).
			AddItem(browse, 10, 0, false), 1, 0, i == 0).
			AddItem(nil, 1, 0, false)
	}

	labels := make([]string, len(p.operations))
	for i, op := range p.operations {
		labels[i] = fmt.Sprintf("%s (%s)", op, op.Symbol())
	}
	p.opDropDown = tview.NewDropDown().
		SetLabel("Operation: ").
		SetOptions(labels, func(_ string, index int) {
			if !p.refreshing && index >= 0 && index < len(p.operations) {
				p.app.SetOperation(p.operations[index])
			}
		})
	p.opDropDown.SetFieldBackgroundColor(tcell.ColorSlateGray).
		SetFieldTextColor(tcell.ColorBlack)

	p.calcButton = tview.NewButton("Calculate").SetSelectedFunc(p.app.Calculate)
	widgets.DefaultStyleButton(p.calcButton)
	p.copyButton = tview.NewButton("Copy").SetSelectedFunc(p.app.CopyResult)
	widgets.DefaultStyleButton(p.copyButton)

	buttons := tview.NewFlex().
		AddItem(p.calcButton, 20, 0, false).
		AddItem(nil, 2, 0, false).
		AddItem(p.copyButton, 20, 0, false).
		AddItem(nil, 0, 1, false)

	selection.AddItem(p.opDropDown, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(buttons, 1, 0, false)
	selection.SetBorderPadding(1, 1, 1, 1)

	p.resultView = tview.NewTextView().
		SetDynamicColors(false).
		SetScrollable(true).
		SetWrap(false)
	p.resultView.SetBorderPadding(0, 0, 1, 1)
	p.resultFrame = widgets.NewTitleFrame(p.resultView, "Result")

	p.AddItem(widgets.NewTitleFrame(selection, "Input"), 10, 0, true).
		AddItem(p.resultFrame, 0, 1, false)
}

func (p *MainPage) inputHandler() func(event *tcell.EventKey) *tcell.EventKey {
	return func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlR:
			p.app.Calculate()
			return nil
		case tcell.KeyCtrlY:
			p.app.CopyResult()
			return nil
		case tcell.KeyCtrlO:
			p.app.PickFile(1)
			return nil
		case tcell.KeyCtrlP:
			p.app.PickFile(2)
			return nil
		}
		return event
	}
}

// RefreshSession updates all widgets from the current view model.
func (p *MainPage) RefreshSession() {
	vm := p.app.GetViewModel()

	p.refreshing = true
	defer func() { p.refreshing = false }()

	for i, path := range []string{vm.File1, vm.File2} {
		if p.fileInputs[i].GetText() != path {
			p.fileInputs[i].SetText(path)
		}
	}

	selected := -1
	for i, op := range p.operations {
		if op == vm.Operation {
			selected = i
		}
	}
	if current, _ := p.opDropDown.GetCurrentOption(); current != selected {
		p.opDropDown.SetCurrentOption(selected)
	}

	p.resultView.SetText(vm.Result).ScrollToBeginning()
	if vm.Failed {
		p.resultView.SetTextColor(tcell.ColorRed)
	} else {
		p.resultView.SetTextColor(tview.Styles.PrimaryTextColor)
	}
	p.copyButton.SetDisabled(!vm.HasResult)

	switch {
	case vm.HasResult:
		p.resultFrame.SetTitle(fmt.Sprintf("Result (%d %s)", vm.ResultSize, pluralize(vm.ResultSize, "line", "lines")))
		p.statusText.SetText(tview.Escape(vm.Summary))
	case vm.Failed:
		p.resultFrame.SetTitle("Result")
		p.statusText.SetText("[red]Calculation failed.[-]")
	default:
		p.resultFrame.SetTitle("Result")
		p.statusText.SetText("Select two files and an operation, then press [darkcyan::b]Calculate[-:-:-].")
	}
}

func (p *MainPage) SetStatus(text string) {
	p.statusText.SetText(text)
}

// GetActionPrompts returns the key actions for the main page.
func (p *MainPage) GetActionPrompts() []ui.ActionPrompt {
	return []ui.ActionPrompt{
		{Input: "Ctrl+O/P", Action: "Browse File 1/2"},
		{Input: "Ctrl+R", Action: "Calculate"},
		{Input: "Ctrl+Y", Action: "Copy"},
	}
}

// GetStatusPrimitive returns the tview.Primitive that displays the page's status
func (p *MainPage) GetStatusPrimitive() *tview.TextView {
	return p.statusText
}

func (p *MainPage) GetFocusablePrimitives() []tview.Primitive {
	primitives := []tview.Primitive{
		p.fileInputs[0], p.browseButtons[0],
		p.fileInputs[1], p.browseButtons[1],
		p.opDropDown, p.calcButton,
	}
	if !p.copyButton.IsDisabled() {
		primitives = append(primitives, p.copyButton)
	}
	return append(primitives, p.resultView)
}

// CleanPath trims whitespace and the quotes terminals add around pasted paths.
func CleanPath(text string) string {
	cleaned := strings.TrimSpace(text)
	if len(cleaned) >= 2 && (cleaned[0] == '"' || cleaned[0] == '\'') && cleaned[len(cleaned)-1] == cleaned[0] {
		cleaned = strings.TrimSpace(cleaned[1 : len(cleaned)-1])
	}
	return cleaned
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
