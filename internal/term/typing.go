package term

import (
	"fmt"
	"io"
	"time"
)

// TypeDelay is the pause between characters for Type. Tests set it to zero.
var TypeDelay = 20 * time.Millisecond

// Type prints s one character at a time, simulating live generation of a
// reply that has in fact fully arrived. A trailing newline is appended.
func Type(w io.Writer, s string) {
	for _, r := range s {
		fmt.Fprintf(w, "%c", r)
		time.Sleep(TypeDelay)
	}
	fmt.Fprintln(w)
}
