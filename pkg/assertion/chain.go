package assertion

// Chain carries the state of one top-level assertion call.
//
// A chain is alive until a failed check is followed by FailWith. From then
// on every Check, FailWith, Given and Select on it is skipped. A Chain is
// owned by a single call and must not be shared between goroutines.
type Chain struct {
	reporter   Reporter
	label      string
	reason     string
	reasonArgs []any

	pending bool // last check failed, waiting for FailWith
	failed  bool
	failure string
}

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithReporter sets the sink that receives the failure message.
// Without a reporter the message is only kept on the chain.
func WithReporter(r Reporter) ChainOption {
	return func(c *Chain) {
		c.reporter = r
	}
}

// WithContext sets the label substituted for {context:...} placeholders.
func WithContext(label string) ChainOption {
	return func(c *Chain) {
		c.label = label
	}
}

// New creates a live chain.
func New(opts ...ChainOption) *Chain {
	c := &Chain{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithReason records the because-clause for {reason}. It evaluates nothing.
func (c *Chain) WithReason(reason string, args ...any) *Chain {
	c.reason = reason
	c.reasonArgs = args
	return c
}

// BecauseOf is an alias for WithReason.
func (c *Chain) BecauseOf(reason string, args ...any) *Chain {
	return c.WithReason(reason, args...)
}

// Check evaluates pred if the chain is alive. A false result leaves the
// chain waiting for the failure message supplied by FailWith.
func (c *Chain) Check(pred func() bool) *Chain {
	if c.alive() && !pred() {
		c.pending = true
	}
	return c
}

// ForCondition is Check with an already computed condition.
func (c *Chain) ForCondition(ok bool) *Chain {
	if c.alive() && !ok {
		c.pending = true
	}
	return c
}

// FailWith reports the rendered template if the preceding check failed.
// Otherwise it does nothing and args are never formatted.
func (c *Chain) FailWith(template string, args ...any) *Continuation {
	c.fail(template, args)
	return &Continuation{chain: c}
}

func (c *Chain) fail(template string, args []any) {
	if !c.pending || c.failed {
		return
	}
	c.pending = false
	c.failed = true
	c.failure = Render(template, args, FormatReason(c.reason, c.reasonArgs...), c.label)
	if c.reporter != nil {
		c.reporter.Report(c.failure)
	}
}

func (c *Chain) alive() bool {
	return !c.failed && !c.pending
}

// Succeeded reports whether no step of the chain has failed.
func (c *Chain) Succeeded() bool {
	return c.alive()
}

// Failure returns the rendered failure message, or "" if none was reported.
func (c *Chain) Failure() string {
	return c.failure
}

// Label returns the chain's context label.
func (c *Chain) Label() string {
	return c.label
}

// Continuation is returned by FailWith.
type Continuation struct {
	chain *Chain
}

// Then continues with the next step on the same chain.
func (k *Continuation) Then() *Chain {
	return k.chain
}

// Succeeded reports whether the chain is still alive.
func (k *Continuation) Succeeded() bool {
	return k.chain.Succeeded()
}
