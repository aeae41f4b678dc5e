package action

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ellery/tilde/internal/config"
	"github.com/ellery/tilde/internal/layout"
)

var commandNames = []string{"split", "theme", "close"}

// runCommand parses and executes one minibar command line.
func (e *Editor) runCommand(w *layout.Window, s string) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "split":
		if len(fields) < 2 {
			w.SetError("split requires a direction (- or |)")
			return
		}
		switch fields[1] {
		case "-":
			e.Tree.Split(w, true)
		case "|":
			e.Tree.Split(w, false)
		default:
			w.SetError("split requires a direction (- or |)")
		}

	case "theme":
		if len(fields) < 2 {
			w.SetError("theme requires a name or index")
			return
		}
		sc, ok := config.LookupScheme(fields[1])
		if !ok {
			w.SetError("unknown theme: " + fields[1])
			return
		}
		config.CurrentScheme = sc
		for _, win := range e.Tree.Windows() {
			win.Redraw = true
		}

	case "close":
		e.Tree.Remove(w)

	default:
		msg := "unknown command: " + fields[0]
		if m := fuzzy.Find(fields[0], commandNames); len(m) > 0 {
			msg += " (did you mean " + m[0].Str + "?)"
		}
		w.SetError(msg)
	}
}
