package host

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// Native is the production Host: real file I/O, real stdin/stdout, real
// sleeps. A *Native is configured by the CLI (spec's out-of-scope driver,
// cmd/spellscript) and handed to the interpreter.
type Native struct {
	Out io.Writer
	In  *bufio.Reader
	Log logrus.FieldLogger

	// FastMode, when set, makes Sleep return without blocking (the duration
	// is still capped, added to TotalPondered and logged); scenarios and batch runs
	// that don't want to actually wait out a Ponder set this via the
	// optional YAML config (SPEC_FULL.md "Configuration").
	FastMode bool
	// MaxSleep caps any single Sleep call when nonzero, a defensive bound
	// for long-running batch invocations.
	MaxSleep time.Duration

	// TotalPondered accumulates every Sleep call's duration, so the CLI's
	// --debug-dump summary can report total time spent pondering.
	TotalPondered time.Duration
}

// NewNative builds a Native host reading from stdin and writing to stdout,
// logging through the given logger.
func NewNative(log logrus.FieldLogger) *Native {
	return &Native{
		Out: os.Stdout,
		In:  bufio.NewReader(os.Stdin),
		Log: log,
	}
}

func (n *Native) ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (n *Native) PrintLine(text string) {
	fmt.Fprintln(n.Out, text)
}

func (n *Native) ReadLine(prompt string) (string, error) {
	fmt.Fprint(n.Out, prompt+" ")
	line, err := n.In.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return trimNewline(line), nil
}

func (n *Native) Sleep(d time.Duration) {
	if n.MaxSleep > 0 && d > n.MaxSleep {
		d = n.MaxSleep
	}
	n.TotalPondered += d
	if n.Log != nil {
		n.Log.WithField("duration", humanize.RelTime(time.Now(), time.Now().Add(d), "", "")).Debug("pondering")
	}
	if n.FastMode {
		return
	}
	time.Sleep(d)
}

// PonderSummary renders the accumulated ponder time for the --debug-dump
// summary, or the empty string if nothing has pondered yet.
func (n *Native) PonderSummary() string {
	if n.TotalPondered == 0 {
		return ""
	}
	return humanize.RelTime(time.Now(), time.Now().Add(n.TotalPondered), "", "")
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
