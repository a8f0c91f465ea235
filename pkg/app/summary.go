package app

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/Qendolin/line-set-tool/pkg/core/calc"
	"github.com/pkg/errors"
)

// SummaryData is the value the summary template is executed with.
type SummaryData struct {
	File1     string
	File2     string
	Operation string
	Symbol    string
	Count     int
	RequestID string
}

func newSummaryData(req calc.Request, res calc.Result, requestID string) SummaryData {
	return SummaryData{
		File1:     req.File1,
		File2:     req.File2,
		Operation: res.Operation.String(),
		Symbol:    res.Operation.Symbol(),
		Count:     res.Lines(),
		RequestID: requestID,
	}
}

// ParseSummaryTemplate parses text as a text/template with the sprig
// function map.
func ParseSummaryTemplate(text string) (*template.Template, error) {
	return template.New("summary").Funcs(sprig.TxtFuncMap()).Parse(text)
}

// RenderSummary executes tmpl with data and returns a single line.
func RenderSummary(tmpl *template.Template, data SummaryData) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", errors.Wrap(err, "render summary")
	}
	return strings.TrimSpace(strings.ReplaceAll(sb.String(), "\n", " ")), nil
}
