package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// writeJSON encodes the value as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// out writes formatted text, swallowing the write error since stdout/stderr
// writes to the process's own streams do not fail in practice.
func out(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// outln writes its arguments followed by a newline, like fmt.Fprintln.
func outln(w io.Writer, args ...any) {
	fmt.Fprintln(w, args...)
}
