package middleware

import (
	"context"
	"time"
)

// Check describes one assertion as it passes through the middleware stack.
type Check struct {
	// Name is the assertion, e.g. "HaveClass".
	Name string

	// Label is the subject label, e.g. "element".
	Label string

	// Ctx is the context the check runs under. Middleware may replace it
	// before calling next; it is never nil once Apply has started.
	Ctx context.Context
}

// Result is the outcome of a check.
type Result struct {
	Failed   bool
	Message  string
	Duration time.Duration
}

// Middleware wraps the evaluation of a check.
type Middleware interface {
	Handle(check *Check, next func() Result) Result
}

// MiddlewareFunc adapts a function to Middleware.
type MiddlewareFunc func(check *Check, next func() Result) Result

// Handle calls f.
func (f MiddlewareFunc) Handle(check *Check, next func() Result) Result {
	return f(check, next)
}

// Apply runs final through mws. Middleware is executed in order (first to
// last), with final at the end. Duration is filled in when final leaves
// it zero.
func Apply(mws []Middleware, check *Check, final func() Result) Result {
	if check.Ctx == nil {
		check.Ctx = context.Background()
	}

	timed := func() Result {
		start := time.Now()
		res := final()
		if res.Duration == 0 {
			res.Duration = time.Since(start)
		}
		return res
	}

	// Build chain from end to start
	chain := timed
	for i := len(mws) - 1; i >= 0; i-- {
		m := mws[i]
		if m == nil {
			continue
		}
		next := chain
		chain = func() Result {
			return m.Handle(check, next)
		}
	}
	return chain()
}

// Chain combines several middleware into one.
func Chain(mws ...Middleware) Middleware {
	return MiddlewareFunc(func(check *Check, next func() Result) Result {
		return Apply(mws, check, next)
	})
}

// Only applies mw to checks for which condition returns true.
func Only(condition func(*Check) bool, mw Middleware) Middleware {
	return MiddlewareFunc(func(check *Check, next func() Result) Result {
		if condition(check) {
			return mw.Handle(check, next)
		}
		return next()
	})
}
