// Package lineset reads text files into sets of their distinct lines.
package lineset

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Qendolin/line-set-tool/pkg/core/sets"
	"github.com/pkg/errors"
)

// FileError reports a file that could not be opened, read or decoded.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ErrNotRegularFile is returned for paths that exist but are not readable as
// a plain file, such as directories.
var ErrNotRegularFile = errors.New("not a regular file")

// DecodeError reports a line that is not valid UTF-8.
type DecodeError struct {
	Line int
}

func (e *DecodeError) Error() string {
	return "line " + strconv.Itoa(e.Line) + " is not valid UTF-8"
}

// ReadFile opens the file at path and returns the set of its lines.
// On failure the returned error is a *FileError naming path and no set is returned.
func ReadFile(path string) (sets.Set, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: errors.Wrap(unwrapPathError(err), "stat")}
	}
	if info.IsDir() {
		return nil, &FileError{Path: path, Err: ErrNotRegularFile}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: errors.Wrap(unwrapPathError(err), "open")}
	}
	defer f.Close()

	set, err := Read(f)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return set, nil
}

// Read consumes r and returns the set of its lines.
//
// Lines are terminated by "\n"; a single "\r" directly before the
// terminator is dropped, so CRLF input yields the same lines as LF input. A final line
// without terminator is kept, but a trailing terminator does not add an
// empty line. Every line must be valid UTF-8.
func Read(r io.Reader) (sets.Set, error) {
	br := bufio.NewReader(r)
	set := make(sets.Set)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lineNo++
			if strings.HasSuffix(line, "\n") {
				line = strings.TrimSuffix(line[:len(line)-1], "\r")
			}
			if !utf8.ValidString(line) {
				return nil, &DecodeError{Line: lineNo}
			}
			set.Add(line)
		}
		if err == io.EOF {
			return set, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read after line %d", lineNo)
		}
	}
}

// unwrapPathError strips the *os.PathError wrapper, since FileError already
// carries the path.
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
