package app

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Qendolin/line-set-tool/pkg/core/calc"
	"github.com/Qendolin/line-set-tool/pkg/core/setop"
	"github.com/Qendolin/line-set-tool/pkg/logging"
	"github.com/Qendolin/line-set-tool/pkg/ui"
	"github.com/Qendolin/line-set-tool/pkg/ui/pages"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rivo/tview"
)

// App orchestrates the TUI application and owns the session.
type App struct {
	*tview.Application
	layoutManager *ui.LayoutManager
	navManager    *ui.NavigationManager
	dialogManager *ui.DialogManager
	focusManager  *ui.FocusManager
	logger        *logging.Logger

	settings *Settings
	session  *Session

	mainPage *pages.MainPage
	logPage  *pages.LogPage

	// lastPickerDir is the directory the file picker showed when it was
	// last closed.
	lastPickerDir string

	appCtx    context.Context
	cancelApp context.CancelFunc
}

// NewApp creates and initializes the TUI application. Inputs given on the
// command line pre-fill the session.
func NewApp(logger *logging.Logger, settings *Settings, cliArgs *CLIArgs, clipboard Clipboard) *App {
	appCtx, cancelApp := context.WithCancel(context.Background())

	a := &App{
		Application: tview.NewApplication(),
		logger:      logger,
		settings:    settings,
		session:     NewSession(clipboard, settings.Summary()),
		appCtx:      appCtx,
		cancelApp:   cancelApp,
	}
	a.prefillSession(cliArgs)

	a.layoutManager = ui.NewLayoutManager(a, appCtx)
	a.navManager = ui.NewNavigationManager(a.layoutManager.Pages(), a.layoutManager, func(p tview.Primitive) {
		a.SetFocus(p)
	})
	a.dialogManager = ui.NewDialogManager(a)
	a.focusManager = ui.NewFocusManager(a)
	a.SetRoot(a.layoutManager.RootPrimitive(), true)

	a.mainPage = pages.NewMainPage(a)
	a.logPage = pages.NewLogPage(a)
	a.navManager.Register(ui.PageMainID, a.mainPage)
	a.navManager.Register(ui.PageLogID, a.logPage)

	a.setupGlobalInputCapture()
	return a
}

func (a *App) prefillSession(cliArgs *CLIArgs) {
	a.session.SetOperation(a.settings.Operation())
	if cliArgs == nil {
		return
	}
	a.session.SetFile(1, cliArgs.File1)
	a.session.SetFile(2, cliArgs.File2)
	if cliArgs.Operation != "" {
		op, err := setop.ParseOperation(cliArgs.Operation)
		if err != nil {
			logging.Warnf("App: Ignoring --op: %v", err)
			return
		}
		a.session.SetOperation(op)
	}
}

// setupGlobalInputCapture defines application-wide keybindings.
func (a *App) setupGlobalInputCapture() {
	a.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyTab, tcell.KeyBacktab:
			// Modals handle Tab themselves.
			if !a.navManager.HasModal() && a.focusManager.Cycle(a.navManager.GetCurrentPage(), event.Key() == tcell.KeyTab) {
				return nil
			}
		case tcell.KeyCtrlL:
			if !a.navManager.HasModal() {
				a.navManager.ToggleLogPage()
			}
			return nil
		case tcell.KeyCtrlC:
			a.dialogManager.ShowQuitDialog()
			return nil
		}
		return event
	})
}

// Run starts the tview application event loop.
func (a *App) Run() error {
	a.navManager.SwitchTo(ui.PageMainID)
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}
	screen.SetTitle("Line Set Tool")
	a.EnableMouse(a.settings.Mouse)
	a.EnablePaste(true)
	a.SetScreen(screen)
	return a.Application.Run()
}

// Stop cancels background pollers and stops the event loop.
func (a *App) Stop() {
	a.cancelApp()
	a.Application.Stop()
}

func (a *App) GetLogger() *logging.Logger        { return a.logger }
func (a *App) Navigation() *ui.NavigationManager { return a.navManager }
func (a *App) Dialogs() *ui.DialogManager        { return a.dialogManager }
func (a *App) Layout() *ui.LayoutManager         { return a.layoutManager }
func (a *App) Session() *Session                 { return a.session }

// GetViewModel returns a snapshot of the session for the pages.
func (a *App) GetViewModel() ui.SessionViewModel {
	s := a.session
	return ui.SessionViewModel{
		File1:      s.File1,
		File2:      s.File2,
		Operation:  s.Operation,
		Result:     s.Result,
		Summary:    s.Summary(),
		HasResult:  s.HasResult(),
		Failed:     s.LastErr != nil,
		ResultSize: s.ResultSize(),
		ShowHidden: a.settings.ShowHidden,
	}
}

func (a *App) SetFile(slot int, path string) {
	a.session.SetFile(slot, path)
}

func (a *App) SetOperation(op setop.Operation) {
	logging.Debugf("App: Operation set to %s.", op)
	a.session.SetOperation(op)
}

// PickFile opens the file picker for slot 1 or 2.
func (a *App) PickFile(slot int) {
	var picker *pages.PickerPage
	picker = pages.NewPickerPage(a, slot, a.pickerStartDir(slot), a.settings.ShowHidden,
		func(path string) {
			a.lastPickerDir = picker.Dir()
			a.navManager.CloseModal()
			a.session.SetFile(slot, path)
			a.refreshSession()
		},
		func() {
			a.lastPickerDir = picker.Dir()
			a.navManager.CloseModal()
		},
	)
	a.navManager.ShowModal(ui.PagePickerID, picker)
}

// pickerStartDir prefers the directory of the slot's current file, then the
// other slot's, then where the picker was last closed, then the configured
// start directory.
func (a *App) pickerStartDir(slot int) string {
	return firstDir(
		parentDir(a.session.Path(slot)),
		parentDir(a.session.Path(3-slot)),
		a.lastPickerDir,
		a.settings.StartDir,
	)
}

func parentDir(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Dir(path)
}

// firstDir returns the first candidate that is an existing directory, or the
// working directory if there is none.
func firstDir(candidates ...string) string {
	for _, dir := range candidates {
		if dir != "" && isDir(dir) {
			return dir
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Calculate runs the calculation for the current selection and shows the
// outcome. File errors additionally open an error dialog.
func (a *App) Calculate() {
	_, err := a.session.Calculate()
	a.refreshSession()
	if err == nil {
		return
	}
	if fileErr, ok := calc.AsFileAccessError(err); ok {
		a.dialogManager.ShowErrorDialog("File Error", ErrorMessage(err), fileErr.Err, nil)
	}
}

// CopyResult copies the last result to the clipboard.
func (a *App) CopyResult() {
	err := a.session.Copy()
	if errors.Is(err, ErrNothingToCopy) {
		a.dialogManager.ShowInfoDialog("Nothing to Copy", "There is no result to copy.",
			"Calculate a result with at least one line first.", nil)
		return
	}
	if err != nil {
		a.dialogManager.ShowErrorDialog("Copy Failed", "The result could not be copied to the clipboard.", err, nil)
		return
	}
	a.mainPage.SetStatus("[green]Copied to clipboard.[-]")
}

func (a *App) refreshSession() {
	if page, ok := a.navManager.GetCurrentPage().(ui.SessionObserver); ok {
		page.RefreshSession()
	}
}
