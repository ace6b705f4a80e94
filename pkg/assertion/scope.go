package assertion

import (
	"fmt"
	"strings"
	"sync"
)

// Scope collects the failures of several top-level assertion calls and
// reports them together when closed.
//
// A Scope satisfies TestingT, so it can be passed wherever a *testing.T is
// expected; FailNow on a scope does not stop anything. Scopes nest: closing
// an inner scope reports into the outer one.
//
//	s := assertion.NewScope(t)
//	defer s.Close()
//	vtest.Should(s, link).HaveHref("/home")
//	vtest.Should(s, link).HaveRel("noopener")
type Scope struct {
	parent TestingT

	mu       sync.Mutex
	failures []string
	closed   bool
}

// NewScope creates a scope reporting to parent on Close.
func NewScope(parent TestingT) *Scope {
	return &Scope{parent: parent}
}

// Helper implements TestingT.
func (s *Scope) Helper() {
	s.parent.Helper()
}

// Errorf records a formatted failure.
func (s *Scope) Errorf(format string, args ...any) {
	s.Report(fmt.Sprintf(format, args...))
}

// FailNow is a no-op; failures are deferred to Close.
func (s *Scope) FailNow() {}

// Report records message. Once the scope is closed the message goes
// straight to the parent.
func (s *Scope) Report(message string) {
	s.mu.Lock()
	s.failures = append(s.failures, message)
	closed := s.closed
	s.mu.Unlock()

	if closed {
		s.parent.Helper()
		s.parent.Errorf("%s", message)
		s.parent.FailNow()
	}
}

// Failures returns a copy of the collected messages.
func (s *Scope) Failures() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.failures))
	copy(out, s.failures)
	return out
}

// Close reports every collected failure to the parent as one message and
// aborts the parent. It does nothing when no failure was collected or the
// scope is already closed; later failures are reported by Report itself.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	failures := s.failures
	s.mu.Unlock()

	if len(failures) == 0 {
		return
	}
	s.parent.Helper()
	s.parent.Errorf("%s", strings.Join(failures, "\n"))
	s.parent.FailNow()
}
