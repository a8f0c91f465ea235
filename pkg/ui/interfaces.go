package ui

import (
	"github.com/Qendolin/line-set-tool/pkg/core/setop"
	"github.com/Qendolin/line-set-tool/pkg/logging"
	"github.com/rivo/tview"
)

// SessionViewModel is a snapshot of the session state, tailored for UI
// consumption. Pages never read the session directly.
type SessionViewModel struct {
	File1      string
	File2      string
	Operation  setop.Operation
	Result     string
	Summary    string
	HasResult  bool
	Failed     bool
	ResultSize int
	ShowHidden bool
}

// FilePicker asks the user for a file for the given slot (1 or 2). The
// outcome is delivered asynchronously through AppInterface.SetFile;
// cancelling leaves the slot unchanged.
type FilePicker interface {
	PickFile(slot int)
}

// AppInterface defines methods the UI layer needs to access from the main App struct.
type AppInterface interface {
	// --- UI methods & Managers ---
	QueueUpdateDraw(f func()) *tview.Application
	Stop()
	Navigation() *NavigationManager
	Dialogs() *DialogManager
	Layout() *LayoutManager
	GetLogger() *logging.Logger
	GetFocus() tview.Primitive
	SetFocus(p tview.Primitive) *tview.Application

	// --- Session ---
	FilePicker
	GetViewModel() SessionViewModel
	SetFile(slot int, path string)
	SetOperation(op setop.Operation)

	// --- Actions ---
	Calculate()
	CopyResult()
}

// SessionObserver is implemented by pages that display session state.
type SessionObserver interface {
	RefreshSession()
}

// Focusable is implemented by pages whose children can be cycled with Tab.
type Focusable interface {
	GetFocusablePrimitives() []tview.Primitive
}
