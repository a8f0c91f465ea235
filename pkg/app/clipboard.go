package app

import (
	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// Clipboard is the capability used to export a result.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

// ErrClipboardUnsupported is returned when no clipboard utility is available,
// e.g. on Linux without xclip, xsel or wl-clipboard.
var ErrClipboardUnsupported = errors.New("no clipboard utility available")

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return errors.Wrap(clipboard.WriteAll(text), "write clipboard")
}
