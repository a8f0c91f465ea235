package calc_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Qendolin/line-set-tool/pkg/core/calc"
	"github.com/Qendolin/line-set-tool/pkg/core/setop"
	"github.com/Qendolin/line-set-tool/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLines(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

func TestComputeScenario(t *testing.T) {
	dir := t.TempDir()
	file1 := writeLines(t, dir, "file1.txt", "x", "y", "z")
	file2 := writeLines(t, dir, "file2.txt", "y", "z", "w")

	tests := []struct {
		name  string
		a, b  string
		op    setop.Operation
		text  string
		lines int
	}{
		{"intersection", file1, file2, setop.Intersection, "y\nz", 2},
		{"union", file1, file2, setop.Union, "w\nx\ny\nz", 4},
		{"difference file1-file2", file1, file2, setop.Difference, "x", 1},
		{"difference file2-file1", file2, file1, setop.Difference, "w", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := calc.Compute(calc.Request{File1: tt.a, File2: tt.b, Operation: tt.op})
			require.NoError(t, err)
			assert.Equal(t, tt.text, res.Text)
			assert.Equal(t, tt.lines, res.Lines())
			assert.Equal(t, tt.op, res.Operation)
		})
	}
}

func TestComputeEmptyResult(t *testing.T) {
	dir := t.TempDir()
	a := writeLines(t, dir, "a.txt", "1", "2")
	b := writeLines(t, dir, "b.txt", "3")

	res, err := calc.Compute(calc.Request{File1: a, File2: b, Operation: setop.Intersection})
	require.NoError(t, err)
	assert.Equal(t, "", res.Text)
	assert.Equal(t, 0, res.Lines())
}

func TestComputeMissingInput(t *testing.T) {
	dir := t.TempDir()
	a := writeLines(t, dir, "a.txt", "1")

	tests := []struct {
		name    string
		req     calc.Request
		missing string
	}{
		{"missing file2", calc.Request{File1: a, Operation: setop.Union}, "file 2"},
		{"missing file1", calc.Request{File2: a, Operation: setop.Union}, "file 1"},
		{"missing operation", calc.Request{File1: a, File2: a}, "operation"},
		{"nothing selected", calc.Request{}, "file 1, file 2, operation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := calc.Compute(tt.req)
			require.Error(t, err)
			assert.True(t, calc.IsMissingInput(err))
			assert.Contains(t, err.Error(), tt.missing)
			assert.Nil(t, res.Set)
		})
	}
}

func TestComputeMissingInputDoesNotRead(t *testing.T) {
	// The first path does not exist; an incomplete request must fail before reading it.
	_, err := calc.Compute(calc.Request{File1: filepath.Join(t.TempDir(), "nope.txt"), Operation: setop.Union})
	require.Error(t, err)
	assert.True(t, calc.IsMissingInput(err))
	_, isFileErr := calc.AsFileAccessError(err)
	assert.False(t, isFileErr)
}

func TestComputeInvalidOperation(t *testing.T) {
	dir := t.TempDir()
	a := writeLines(t, dir, "a.txt", "1")

	_, err := calc.Compute(calc.Request{File1: a, File2: a, Operation: setop.Operation(42)})
	require.Error(t, err)
	assert.True(t, calc.IsInvalidOperation(err))
	assert.False(t, calc.IsMissingInput(err))
}

func TestComputeFileAccessError(t *testing.T) {
	dir := t.TempDir()
	present := writeLines(t, dir, "present.txt", "1")
	missing := filepath.Join(dir, "missing.txt")

	_, err := calc.Compute(calc.Request{File1: missing, File2: present, Operation: setop.Union})
	require.Error(t, err)
	fileErr, ok := calc.AsFileAccessError(err)
	require.True(t, ok)
	assert.Equal(t, 1, fileErr.Slot)
	assert.Equal(t, missing, fileErr.Path)
	assert.True(t, strings.HasPrefix(err.Error(), "read file1 error: "))
	assert.Contains(t, err.Error(), missing)

	_, err = calc.Compute(calc.Request{File1: present, File2: dir, Operation: setop.Union})
	fileErr, ok = calc.AsFileAccessError(err)
	require.True(t, ok)
	assert.Equal(t, 2, fileErr.Slot)
	assert.Equal(t, dir, fileErr.Path)
}

func TestComputeLogsResultPreview(t *testing.T) {
	logger := logging.NewLogger()
	logger.SetDebug(true)
	logging.SetDefault(logger)
	t.Cleanup(func() { logging.SetDefault(logging.NewLogger()) })

	dir := t.TempDir()
	file1 := writeLines(t, dir, "file1.txt", "x", "y", "z")
	file2 := writeLines(t, dir, "file2.txt", "y", "z", "w")
	_, err := calc.Compute(calc.Request{File1: file1, File2: file2, Operation: setop.Intersection})
	require.NoError(t, err)

	var messages []string
	for _, entry := range logger.Store().GetAll() {
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, messages, "Calc: Intersection yields 2 lines: [y, z]")
}
