package assertion

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrAssertionFailed is the sentinel wrapped by every AssertionError.
var ErrAssertionFailed = errors.New("assertion failed")

// Reporter receives rendered failure messages.
type Reporter interface {
	Report(message string)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(message string)

// Report calls f(message).
func (f ReporterFunc) Report(message string) {
	f(message)
}

// TestingT is the subset of *testing.T used for reporting.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

type testReporter struct {
	t     TestingT
	abort bool
}

// NewTestReporter reports each failure with t.Errorf and stops the test
// with t.FailNow.
func NewTestReporter(t TestingT) Reporter {
	return &testReporter{t: t, abort: true}
}

// NewSoftTestReporter reports each failure with t.Errorf and lets the test
// continue.
func NewSoftTestReporter(t TestingT) Reporter {
	return &testReporter{t: t}
}

func (r *testReporter) Report(message string) {
	r.t.Helper()
	r.t.Errorf("%s", message)
	if r.abort {
		r.t.FailNow()
	}
}

// AssertionError carries one or more failure messages.
type AssertionError struct {
	Failures []string
}

// Error implements error.
func (e *AssertionError) Error() string {
	switch len(e.Failures) {
	case 0:
		return ErrAssertionFailed.Error()
	case 1:
		return ErrAssertionFailed.Error() + ": " + e.Failures[0]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d failures", ErrAssertionFailed, len(e.Failures))
	for _, f := range e.Failures {
		b.WriteString("\n  - ")
		b.WriteString(f)
	}
	return b.String()
}

// Unwrap returns ErrAssertionFailed.
func (e *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// Recorder is a Reporter that keeps every message. It is safe for
// concurrent use.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// Report appends message.
func (r *Recorder) Report(message string) {
	r.mu.Lock()
	r.messages = append(r.messages, message)
	r.mu.Unlock()
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// Len returns the number of recorded messages.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

// Reset drops all recorded messages.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.messages = nil
	r.mu.Unlock()
}

// Err returns nil when nothing was recorded, otherwise an *AssertionError.
func (r *Recorder) Err() error {
	msgs := r.Messages()
	if len(msgs) == 0 {
		return nil
	}
	return &AssertionError{Failures: msgs}
}
