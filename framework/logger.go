package framework

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger is the minimal logging interface used by the harness. *log.Logger satisfies it.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }

// CapturedMessage is one line of a check's debug output. Offset is measured from the start
// of the check, so request timings can be read straight off the dump.
type CapturedMessage struct {
	Offset  time.Duration
	Message string
}

type CapturedOutput []CapturedMessage

// CapturingLogger accumulates the debug output of one check, so that it can be shown only if
// the console logger decides the check's output is interesting. A zero CapturingLogger starts
// its clock at the first message.
type CapturingLogger struct {
	started time.Time
	output  []CapturedMessage
	lock    sync.Mutex
}

func (l *CapturingLogger) startAt(t time.Time) {
	l.lock.Lock()
	l.started = t
	l.lock.Unlock()
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	now := time.Now()
	l.lock.Lock()
	if l.started.IsZero() {
		l.started = now
	}
	l.output = append(l.output, CapturedMessage{Offset: now.Sub(l.started), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append([]CapturedMessage(nil), l.output...)
	l.lock.Unlock()
	return ret
}

func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[+%.3fs] %s\n", prefix, m.Offset.Seconds(), m.Message)
	}
}
