package app

import (
	"github.com/spf13/pflag"
)

// CLIArgs holds all command-line arguments passed to the application.
type CLIArgs struct {
	ConfigPath string
	LogDir     string
	Verbose    bool
	StartDir   string

	File1     string
	File2     string
	Operation string
	OutPath   string
	Copy      bool

	flags *pflag.FlagSet
}

// Flags returns the parsed flag set, for binding into the settings.
func (a *CLIArgs) Flags() *pflag.FlagSet {
	return a.flags
}

// IsBatch reports whether all inputs were given on the command line, in which
// case the tool computes once and exits instead of starting the UI.
func (a *CLIArgs) IsBatch() bool {
	return a.File1 != "" && a.File2 != "" && a.Operation != ""
}

// ParseCLIArgs parses the command-line flags in args (without the program name).
func ParseCLIArgs(name string, args []string) (*CLIArgs, error) {
	a := &CLIArgs{}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.StringVarP(&a.ConfigPath, "config", "c", "", "Settings file (JSON5). Defaults to "+DefaultSettingsFile+" if present.")
	fs.StringVar(&a.LogDir, "log-dir", defaultLogDir, "Specifies the directory to store log files.")
	fs.BoolVarP(&a.Verbose, "verbose", "v", false, "Enable verbose (debug) logging.")
	fs.StringVar(&a.StartDir, "start-dir", "", "Directory the file picker opens in.")

	fs.StringVar(&a.File1, "file1", "", "First input file.")
	fs.StringVar(&a.File2, "file2", "", "Second input file.")
	fs.StringVarP(&a.Operation, "op", "o", "", "Operation: intersection, union or difference.")
	fs.StringVar(&a.OutPath, "out", "", "Write the batch result to this file instead of stdout.")
	fs.BoolVar(&a.Copy, "copy", false, "Copy the batch result to the clipboard.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	a.flags = fs
	return a, nil
}
