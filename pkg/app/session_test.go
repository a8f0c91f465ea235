package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Qendolin/line-set-tool/pkg/core/setop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text   string
	writes int
	err    error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	c.writes++
	return nil
}

func writeLines(t *testing.T, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644))
	return path
}

func TestSessionCalculateAndCopy(t *testing.T) {
	clip := &fakeClipboard{}
	s := NewSession(clip, nil)
	s.SetFile(1, writeLines(t, "file1.txt", "x", "y", "z"))
	s.SetFile(2, writeLines(t, "file2.txt", "y", "z", "w"))
	s.SetOperation(setop.Intersection)

	res, err := s.Calculate()
	require.NoError(t, err)
	assert.Equal(t, "y\nz", res.Text)
	assert.Equal(t, "y\nz", s.Result)
	assert.True(t, s.HasResult())
	assert.Equal(t, 2, s.ResultSize())
	assert.Equal(t, "file1.txt ∩ file2.txt: 2 lines", s.Summary())

	require.NoError(t, s.Copy())
	assert.Equal(t, "y\nz", clip.text)
	assert.Equal(t, 1, clip.writes)
}

func TestSessionMissingInput(t *testing.T) {
	clip := &fakeClipboard{}
	s := NewSession(clip, nil)
	s.SetFile(1, writeLines(t, "file1.txt", "x"))
	s.SetOperation(setop.Union)

	_, err := s.Calculate()
	require.Error(t, err)
	assert.Equal(t, MsgMissingInput, s.Result)
	assert.False(t, s.HasResult())
	assert.Equal(t, "", s.Summary())

	assert.ErrorIs(t, s.Copy(), ErrNothingToCopy)
	assert.Equal(t, 0, clip.writes)
}

func TestSessionFailureDiscardsPreviousResult(t *testing.T) {
	s := NewSession(&fakeClipboard{}, nil)
	good := writeLines(t, "good.txt", "a")
	s.SetFile(1, good)
	s.SetFile(2, good)
	s.SetOperation(setop.Union)
	_, err := s.Calculate()
	require.NoError(t, err)
	require.True(t, s.HasResult())

	missing := filepath.Join(t.TempDir(), "missing.txt")
	s.SetFile(1, missing)
	_, err = s.Calculate()
	require.Error(t, err)
	assert.False(t, s.HasResult())
	assert.True(t, strings.HasPrefix(s.Result, "read file1 error: "))
	assert.Contains(t, s.Result, missing)
	assert.ErrorIs(t, s.Copy(), ErrNothingToCopy)
}

func TestSessionInvalidOperation(t *testing.T) {
	s := NewSession(&fakeClipboard{}, nil)
	path := writeLines(t, "a.txt", "a")
	s.SetFile(1, path)
	s.SetFile(2, path)
	s.SetOperation(setop.Operation(7))

	_, err := s.Calculate()
	require.Error(t, err)
	assert.Equal(t, MsgInvalidOperation, s.Result)
}

func TestSessionCopyErrors(t *testing.T) {
	clipErr := errors.New("clipboard broken")
	s := NewSession(&fakeClipboard{err: clipErr}, nil)
	path := writeLines(t, "a.txt", "a")
	s.SetFile(1, path)
	s.SetFile(2, path)
	s.SetOperation(setop.Union)
	_, err := s.Calculate()
	require.NoError(t, err)
	assert.ErrorIs(t, s.Copy(), clipErr)

	// An empty result has nothing to copy.
	s.SetOperation(setop.Difference)
	res, err := s.Calculate()
	require.NoError(t, err)
	assert.Equal(t, "", res.Text)
	assert.ErrorIs(t, s.Copy(), ErrNothingToCopy)
}

func TestSessionRequestIsACopy(t *testing.T) {
	s := NewSession(nil, nil)
	s.SetFile(1, "a")
	s.SetFile(2, "b")
	s.SetFile(3, "ignored")
	s.SetOperation(setop.Difference)

	req := s.Request()
	req.File1 = "changed"
	assert.Equal(t, "a", s.File1)
	assert.Equal(t, "a", s.Path(1))
	assert.Equal(t, "b", s.Path(2))
	assert.Equal(t, "", s.Path(3))
	assert.Equal(t, setop.Difference, s.Request().Operation)
}

func TestSummaryTemplate(t *testing.T) {
	tmpl, err := ParseSummaryTemplate(`{{ .Operation | upper }} {{ .Count }} {{ .File1 | base }}`)
	require.NoError(t, err)
	s := NewSession(&fakeClipboard{}, tmpl)
	path := writeLines(t, "one.txt", "a", "b", "a")
	s.SetFile(1, path)
	s.SetFile(2, path)
	s.SetOperation(setop.Union)
	_, err = s.Calculate()
	require.NoError(t, err)
	assert.Equal(t, "UNION 2 one.txt", s.Summary())

	_, err = ParseSummaryTemplate("{{ .Count ")
	assert.Error(t, err)
}
