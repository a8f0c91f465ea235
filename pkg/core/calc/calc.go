// Package calc runs one complete line-set calculation: validate the request,
// read both files, combine them and format the result.
package calc

import (
	"strings"

	"github.com/Qendolin/line-set-tool/pkg/core/format"
	"github.com/Qendolin/line-set-tool/pkg/core/lineset"
	"github.com/Qendolin/line-set-tool/pkg/core/sets"
	"github.com/Qendolin/line-set-tool/pkg/core/setop"
	"github.com/Qendolin/line-set-tool/pkg/logging"
	"github.com/pkg/errors"
)

// debugPreviewLines caps how many result lines are written to the debug log.
const debugPreviewLines = 20

// Request describes a single calculation. File1 is the left-hand operand,
// which matters for Difference.
type Request struct {
	File1     string
	File2     string
	Operation setop.Operation
}

// Missing returns the names of the inputs that have not been provided.
func (r Request) Missing() []string {
	var missing []string
	if r.File1 == "" {
		missing = append(missing, "file 1")
	}
	if r.File2 == "" {
		missing = append(missing, "file 2")
	}
	if r.Operation == 0 {
		missing = append(missing, "operation")
	}
	return missing
}

// Result is the outcome of a successful calculation.
type Result struct {
	Operation setop.Operation
	Set       sets.Set
	Text      string
}

// Lines returns the number of lines in the result.
func (r Result) Lines() int {
	return r.Set.Len()
}

// Compute performs the calculation described by req. It either returns a
// complete Result or an error; nothing is read when the request is
// incomplete or names an undefined operation.
func Compute(req Request) (Result, error) {
	if missing := req.Missing(); len(missing) > 0 {
		return Result{}, errors.Wrapf(ErrMissingInput, "not selected: %s", strings.Join(missing, ", "))
	}
	if !req.Operation.Valid() {
		return Result{}, errors.Wrapf(ErrInvalidOperation, "operation %s", req.Operation)
	}

	set1, err := lineset.ReadFile(req.File1)
	if err != nil {
		return Result{}, &FileAccessError{Slot: 1, Path: req.File1, Err: err}
	}
	set2, err := lineset.ReadFile(req.File2)
	if err != nil {
		return Result{}, &FileAccessError{Slot: 2, Path: req.File2, Err: err}
	}
	logging.Debugf("Calc: Read %d distinct lines from '%s' and %d from '%s'.", set1.Len(), req.File1, set2.Len(), req.File2)

	combined, err := setop.Apply(set1, set2, req.Operation)
	if err != nil {
		return Result{}, err
	}
	logging.Debugf("Calc: %s yields %d lines: %v", req.Operation, combined.Len(), sets.FormatSetLimit(combined, debugPreviewLines))

	return Result{
		Operation: req.Operation,
		Set:       combined,
		Text:      format.Format(combined),
	}, nil
}
