package app

import (
	"fmt"
	"io"
	"os"

	"github.com/Qendolin/line-set-tool/pkg/core/setop"
	"github.com/Qendolin/line-set-tool/pkg/logging"
	"github.com/pkg/errors"
)

// RunBatch computes the operation given on the command line once and writes
// the result to stdout, or to args.OutPath. It returns the process exit code.
func RunBatch(args *CLIArgs, settings *Settings, clipboard Clipboard, stdout, stderr io.Writer) int {
	op, err := setop.ParseOperation(args.Operation)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	session := NewSession(clipboard, settings.Summary())
	session.SetFile(1, args.File1)
	session.SetFile(2, args.File2)
	session.SetOperation(op)

	res, err := session.Calculate()
	if err != nil {
		fmt.Fprintln(stderr, ErrorMessage(err))
		return 1
	}

	out := res.Text
	if out != "" {
		out += "\n"
	}
	if err := writeOutput(args.OutPath, out, stdout); err != nil {
		logging.Errorf("Batch: %v", err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if args.Copy {
		err := session.Copy()
		switch {
		case errors.Is(err, ErrNothingToCopy):
			logging.Infof("Batch: Result is empty, clipboard left unchanged.")
		case err != nil:
			fmt.Fprintf(stderr, "Error: copy result: %v\n", err)
			return 1
		}
	}
	if args.OutPath != "" {
		fmt.Fprintln(stderr, session.Summary())
	}
	return 0
}

func writeOutput(path, text string, stdout io.Writer) error {
	if path == "" {
		_, err := io.WriteString(stdout, text)
		return errors.Wrap(err, "write result")
	}
	return errors.Wrapf(os.WriteFile(path, []byte(text), 0644), "write result to '%s'", path)
}

// WantsLogFile reports whether a log file should be written. The UI always
// logs to a file; a batch run only does when verbose logging is enabled or a
// log directory was configured.
func WantsLogFile(args *CLIArgs, settings *Settings) bool {
	if !args.IsBatch() {
		return true
	}
	if settings.Verbose || settings.LogDir != defaultLogDir {
		return true
	}
	return args.flags != nil && args.flags.Changed("log-dir")
}
