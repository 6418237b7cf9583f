package tmap

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes the fingerprint table of a map to w in a human-readable layout
// (for debugging purposes).
//
// One line per entry, in fingerprint order: slot number, fingerprint hash,
// key type and value. Output is colorized when w is a terminal.
func Dump(w io.Writer, m TMap) {
	hashCol := color.New(color.FgCyan)
	typeCol := color.New(color.FgGreen, color.Bold)
	if !writerIsTerminal(w) {
		hashCol.DisableColor()
		typeCol.DisableColor()
	}
	if _, err := fmt.Fprintf(w, "TMap with %d entries\n", m.Size()); err != nil {
		T().Errorf("tmap dump: %s", err.Error())
		return
	}
	slot := 0
	for id, v := range m.All() {
		_, err := fmt.Fprintf(w, "  [%3d] %s  %s = %v\n", slot,
			hashCol.Sprintf("%016x", id.Hash()),
			typeCol.Sprint(id.String()), v)
		if err != nil {
			T().Errorf("tmap dump: %s", err.Error())
			return
		}
		slot++
	}
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
