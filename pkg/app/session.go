package app

import (
	"text/template"

	"github.com/Qendolin/line-set-tool/pkg/core/calc"
	"github.com/Qendolin/line-set-tool/pkg/core/setop"
	"github.com/Qendolin/line-set-tool/pkg/logging"
	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
)

// Messages shown in place of a result.
const (
	MsgMissingInput     = "Please select two files and an operation"
	MsgInvalidOperation = "Invalid operation"
)

// ErrNothingToCopy is returned by Copy when there is no successful result.
var ErrNothingToCopy = errors.New("nothing to copy")

// Session holds the state of the interaction shell: the selected inputs and
// the text currently shown as result. Each Calculate starts from scratch.
type Session struct {
	File1     string
	File2     string
	Operation setop.Operation

	// Result is the text displayed in the result area: either the formatted
	// result or an error message.
	Result  string
	LastErr error

	last      *calc.Result
	lastReq   calc.Request
	requestID snowflake.ID

	clipboard Clipboard
	summary   *template.Template
	ids       *snowflake.Node
}

// NewSession creates an empty session. summary may be nil to use
// DefaultSummaryTemplate.
func NewSession(clipboard Clipboard, summary *template.Template) *Session {
	if summary == nil {
		summary = template.Must(ParseSummaryTemplate(DefaultSummaryTemplate))
	}
	// Node 1 is always within the valid range, so NewNode cannot fail here.
	ids, _ := snowflake.NewNode(1)
	return &Session{
		clipboard: clipboard,
		summary:   summary,
		ids:       ids,
	}
}

// SetFile sets the path for slot 1 or 2. Other slots are ignored.
func (s *Session) SetFile(slot int, path string) {
	switch slot {
	case 1:
		s.File1 = path
	case 2:
		s.File2 = path
	default:
		logging.Warnf("Session: Ignoring path for unknown slot %d.", slot)
	}
}

// Path returns the path selected for slot 1 or 2.
func (s *Session) Path(slot int) string {
	switch slot {
	case 1:
		return s.File1
	case 2:
		return s.File2
	default:
		return ""
	}
}

func (s *Session) SetOperation(op setop.Operation) {
	s.Operation = op
}

// Request returns the current selection as a calculation request.
func (s *Session) Request() calc.Request {
	return calc.Request{File1: s.File1, File2: s.File2, Operation: s.Operation}
}

// Calculate runs the calculation for the current selection. On failure the
// error is also converted into the message stored in Result; the previous
// result is discarded either way.
func (s *Session) Calculate() (calc.Result, error) {
	req := s.Request()
	id := s.ids.Generate()
	s.last = nil
	s.requestID = id

	logging.Infof("Calc[%s]: %s of '%s' and '%s'.", id, req.Operation, req.File1, req.File2)
	res, err := calc.Compute(req)
	if err != nil {
		s.LastErr = err
		s.Result = ErrorMessage(err)
		if calc.IsMissingInput(err) {
			logging.Infof("Calc[%s]: Incomplete request: %v", id, err)
		} else {
			logging.Errorf("Calc[%s]: %v", id, err)
		}
		return calc.Result{}, err
	}

	s.LastErr = nil
	s.last = &res
	s.lastReq = req
	s.Result = res.Text
	logging.Infof("Calc[%s]: Result has %d lines.", id, res.Lines())
	return res, nil
}

// HasResult reports whether the last calculation succeeded.
func (s *Session) HasResult() bool {
	return s.last != nil
}

// ResultSize returns the number of lines of the last successful result.
func (s *Session) ResultSize() int {
	if s.last == nil {
		return 0
	}
	return s.last.Lines()
}

// Copy writes the last successful result to the clipboard. Error messages
// and empty results are not copied.
func (s *Session) Copy() error {
	if s.last == nil || s.last.Text == "" {
		return ErrNothingToCopy
	}
	if s.clipboard == nil {
		return ErrClipboardUnsupported
	}
	if err := s.clipboard.WriteAll(s.last.Text); err != nil {
		logging.Errorf("Session: Copy failed: %v", err)
		return err
	}
	logging.Infof("Session: Copied %d lines to the clipboard.", s.last.Lines())
	return nil
}

// Summary renders the summary template for the last successful result, or
// returns "" if there is none.
func (s *Session) Summary() string {
	if s.last == nil {
		return ""
	}
	text, err := RenderSummary(s.summary, newSummaryData(s.lastReq, *s.last, s.requestID.String()))
	if err != nil {
		logging.Warnf("Session: %v", err)
		return ""
	}
	return text
}

// ErrorMessage converts a calculation error into the text shown to the user.
func ErrorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case calc.IsMissingInput(err):
		return MsgMissingInput
	case calc.IsInvalidOperation(err):
		return MsgInvalidOperation
	default:
		if fileErr, ok := calc.AsFileAccessError(err); ok {
			return fileErr.Error()
		}
		return "Error: " + err.Error()
	}
}
