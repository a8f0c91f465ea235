package lineset_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Qendolin/line-set-tool/pkg/core/lineset"
	"github.com/Qendolin/line-set-tool/pkg/core/sets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadSplitsLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input", "", []string{}},
		{"single line without newline", "a", []string{"a"}},
		{"single line with newline", "a\n", []string{"a"}},
		{"duplicates collapse", "b\na\na\nc\n", []string{"a", "b", "c"}},
		{"crlf", "x\r\ny\r\n", []string{"x", "y"}},
		{"mixed terminators", "x\r\ny\nz", []string{"x", "y", "z"}},
		{"empty lines are elements", "a\n\nb\n", []string{"a", "", "b"}},
		{"only newline", "\n", []string{""}},
		{"bare carriage return kept at eof", "a\r", []string{"a\r"}},
		{"whitespace is significant", " a\na \na\n", []string{" a", "a ", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lineset.Read(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, []string(sets.MakeSlice(got)))
		})
	}
}

func TestReadLongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	got, err := lineset.Read(strings.NewReader(long + "\nshort\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
	assert.True(t, got.Contains(long))
}

func TestReadRejectsInvalidUTF8(t *testing.T) {
	_, err := lineset.Read(strings.NewReader("ok\n\xff\xfe\n"))
	require.Error(t, err)

	var decodeErr *lineset.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 2, decodeErr.Line)
}

func TestReadFileIsIdempotent(t *testing.T) {
	path := writeFile(t, "a.txt", "one\ntwo\none\n")

	first, err := lineset.ReadFile(path)
	require.NoError(t, err)
	second, err := lineset.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, first.Len())
}

func TestReadFileLineEndingsAgree(t *testing.T) {
	lf, err := lineset.ReadFile(writeFile(t, "lf.txt", "a\nb\nc\n"))
	require.NoError(t, err)
	crlf, err := lineset.ReadFile(writeFile(t, "crlf.txt", "a\r\nb\r\nc"))
	require.NoError(t, err)
	assert.Equal(t, lf, crlf)
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")
	binary := writeFile(t, "binary.txt", "\xc3\x28\n")

	tests := []struct {
		name   string
		path   string
		target error
	}{
		{"missing file", missing, fs.ErrNotExist},
		{"directory", dir, lineset.ErrNotRegularFile},
		{"invalid utf-8", binary, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := lineset.ReadFile(tt.path)
			require.Error(t, err)
			assert.Nil(t, set)

			var fileErr *lineset.FileError
			require.True(t, errors.As(err, &fileErr))
			assert.Equal(t, tt.path, fileErr.Path)
			assert.Contains(t, err.Error(), tt.path)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}
