package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/Qendolin/line-set-tool/pkg/app"
	"github.com/Qendolin/line-set-tool/pkg/logging"
	"github.com/spf13/pflag"
)

func main() {
	cliArgs, err := app.ParseCLIArgs(os.Args[0], os.Args[1:])
	if err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	settings, err := app.LoadSettings(cliArgs.ConfigPath, cliArgs.Flags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// 1. Setup logging first. Quiet batch runs keep the discarding writer.
	mainLogger := logging.NewLogger()
	if app.WantsLogFile(cliArgs, settings) {
		logFile, err := openLogFile(settings.LogDir)
		if err != nil {
			// Can't use logger yet, so print to stderr
			fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		mainLogger.SetWriter(logFile)
	}
	logging.SetDefault(mainLogger)

	if settings.Verbose {
		mainLogger.SetDebug(true)
		logging.Infof("Main: Verbose logging enabled.")
	}
	logBuildInfo()

	// 2. Batch mode computes once and exits without the UI.
	if cliArgs.IsBatch() {
		code := app.RunBatch(cliArgs, settings, app.SystemClipboard{}, os.Stdout, os.Stderr)
		logging.Infof("Main: Batch run finished with exit code %d.", code)
		if closer, ok := mainLogger.GetWriter().(io.Closer); ok {
			closer.Close()
		}
		os.Exit(code)
	}

	// 3. Setup OS signal trapping
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	a := app.NewApp(mainLogger, settings, cliArgs, app.SystemClipboard{})

	go func() {
		<-sigChan
		a.QueueUpdateDraw(func() {
			a.Dialogs().ShowQuitDialog()
		})
	}()

	// 4. Run the application
	logging.Infof("Main: Application starting up.")
	if err := a.Run(); err != nil {
		logging.Errorf("Main: Application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logging.Infof("Main: Application exited gracefully.")
}

func logBuildInfo() {
	wd, err := os.Getwd()
	if err != nil {
		logging.Errorf("Main: Failed to get current working directory: %v", err)
	} else {
		logging.Infof("Main: Current Working Directory: %s", wd)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				logging.Infof("Main: Build Time: %s", setting.Value)
			}
			if setting.Key == "vcs.revision" {
				logging.Infof("Main: Build Revision: %s", setting.Value)
			}
		}
	}
}

// openLogFile creates dir if needed and opens a new timestamped log file in it.
func openLogFile(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	name := fmt.Sprintf("line-set-tool-%s.log", time.Now().Format("2006-01-02_15-04-05"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
