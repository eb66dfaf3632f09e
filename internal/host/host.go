// Package host defines the minimal external-world interface the interpreter
// calls into, and a native implementation of it. Keeping this
// behind an interface is what lets the core interpreter package stay free of
// the "out of scope" collaborators spec §1 names: reading a whole source
// file, reading one line from standard input, writing a line to standard
// output, and sleeping.
package host

import "time"

// Host is the interpreter's sole window onto the outside world.
type Host interface {
	// ReadSource reads the full source file as UTF-8 text.
	ReadSource(path string) (string, error)
	// PrintLine writes text followed by a newline to standard output.
	PrintLine(text string)
	// ReadLine writes prompt followed by a space with no trailing newline,
	// then reads a line (without the newline) from standard input.
	ReadLine(prompt string) (string, error)
	// Sleep blocks the calling goroutine for the given duration.
	Sleep(d time.Duration)
}
