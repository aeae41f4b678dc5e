// Package clipboard is the process-wide clipboard. The internal register is
// always available; when the terminal method is selected and a system
// clipboard exists, reads and writes go through it as well.
package clipboard

import (
	"errors"

	"github.com/zyedidia/clipper"
)

const (
	// MethodInternal keeps clipboard content inside the process.
	MethodInternal = "internal"
	// MethodTerminal uses the system clipboard via clipper.
	MethodTerminal = "terminal"
)

var (
	method   = MethodInternal
	internal []byte
	system   clipper.Clipboard
)

// Initialize selects the clipboard method. Falling back to the internal
// register is not an error the caller must stop for; the returned error is
// informational.
func Initialize(m string) error {
	method = MethodInternal
	if m != MethodTerminal {
		return nil
	}
	clip, err := clipper.GetClipboard(clipper.Clipboards...)
	if err != nil {
		return errors.New("no system clipboard available, falling back to internal")
	}
	system = clip
	method = MethodTerminal
	return nil
}

// Write replaces the clipboard content.
func Write(b []byte) {
	internal = append(internal[:0], b...)
	if method == MethodTerminal && system != nil {
		// The internal register still tracks the content, so a failing
		// system clipboard degrades silently.
		system.WriteAll(clipper.RegClipboard, b)
	}
}

// Read returns the clipboard content. Empty means nothing was ever cut or
// copied.
func Read() []byte {
	if method == MethodTerminal && system != nil {
		if b, err := system.ReadAll(clipper.RegClipboard); err == nil {
			return b
		}
	}
	return internal
}
