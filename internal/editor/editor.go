// Package editor opens the config file in the user's text editor.
package editor

import (
	"os"
	"os/exec"
	"strings"

	"clovis/internal/system"
)

// fallbackEditor is used when $EDITOR is unset and nothing better is found.
const fallbackEditor = "vi"

// detectionOrder lists editors tried when $EDITOR is unset.
var detectionOrder = []string{"nano", "vim", "vi"}

// Editor is a resolved external editor command.
type Editor struct {
	Command string
}

// Detect picks the editor to use: $EDITOR when set, otherwise the first
// installed editor from the detection order, otherwise vi.
func Detect(sys system.Environment) Editor {
	if cmd := strings.TrimSpace(os.Getenv("EDITOR")); cmd != "" {
		return Editor{Command: cmd}
	}

	for _, name := range detectionOrder {
		if sys.ResolveExecutable(name) {
			return Editor{Command: name}
		}
	}
	return Editor{Command: fallbackEditor}
}

// Open runs the editor on path, attached to the current terminal, and blocks
// until it exits.
func (e Editor) Open(path string) error {
	cmd := exec.Command(e.Command, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
