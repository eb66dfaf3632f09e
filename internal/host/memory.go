package host

import (
	"fmt"
	"strings"
	"time"
)

// Memory is an in-process Host for tests: ReadSource serves from a map,
// ReadLine serves from a canned queue, PrintLine appends to a buffer, and
// Sleep is recorded but never actually blocks, so unit tests don't need to
// exec a built binary or wait out a real Ponder.
type Memory struct {
	Sources map[string]string
	Lines   []string
	lineIdx int

	Output []string
	Sleeps []time.Duration
}

// NewMemory returns an empty Memory host.
func NewMemory() *Memory {
	return &Memory{Sources: make(map[string]string)}
}

func (m *Memory) ReadSource(path string) (string, error) {
	src, ok := m.Sources[path]
	if !ok {
		return "", fmt.Errorf("no such source: %s", path)
	}
	return src, nil
}

func (m *Memory) PrintLine(text string) {
	m.Output = append(m.Output, text)
}

func (m *Memory) ReadLine(prompt string) (string, error) {
	if m.lineIdx >= len(m.Lines) {
		return "", fmt.Errorf("no more input lines queued after prompt %q", prompt)
	}
	line := m.Lines[m.lineIdx]
	m.lineIdx++
	return line, nil
}

func (m *Memory) Sleep(d time.Duration) {
	m.Sleeps = append(m.Sleeps, d)
}

// JoinedOutput returns all printed lines newline-joined, for snapshotting
// whole-program output in one shot.
func (m *Memory) JoinedOutput() string {
	return strings.Join(m.Output, "\n")
}
