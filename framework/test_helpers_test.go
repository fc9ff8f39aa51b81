package framework

import (
	"fmt"
	"strings"
)

type loggedEvent struct {
	kind    string
	id      string
	message string
}

type recordingTestLogger struct {
	events []loggedEvent
}

func (r *recordingTestLogger) TestStarted(id TestID) {
	r.events = append(r.events, loggedEvent{kind: "started", id: id.String()})
}

func (r *recordingTestLogger) TestMessage(id TestID, message string) {
	r.events = append(r.events, loggedEvent{kind: "message", id: id.String(), message: message})
}

func (r *recordingTestLogger) TestError(id TestID, err error) {
	r.events = append(r.events, loggedEvent{kind: "error", id: id.String(), message: err.Error()})
}

func (r *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	r.events = append(r.events, loggedEvent{kind: "finished", id: id.String(), message: fmt.Sprintf("failed=%t", failed)})
}

func (r *recordingTestLogger) TestSkipped(id TestID, reason string) {
	r.events = append(r.events, loggedEvent{kind: "skipped", id: id.String(), message: reason})
}

func (r *recordingTestLogger) eventsOfKind(kind string) []loggedEvent {
	var ret []loggedEvent
	for _, e := range r.events {
		if e.kind == kind {
			ret = append(ret, e)
		}
	}
	return ret
}

func (r *recordingTestLogger) errorText() string {
	var ss []string
	for _, e := range r.eventsOfKind("error") {
		ss = append(ss, e.message)
	}
	return strings.Join(ss, "\n")
}

func passingCheck(c *Context) bool { return true }

func failingCheck(c *Context) bool { return false }
