// Package assertion provides the chain engine behind vassert's fluent checks.
//
// A Chain sequences guarded steps against one subject. Each step is a
// condition followed by a failure template; the first failing step renders
// its template, reports it once, and kills the chain. Every later step is
// skipped, and narrowing functions registered with Given or Select are never
// invoked on a dead chain.
//
// # Basic Usage
//
//	assertion.New(assertion.WithReporter(r), assertion.WithContext("element")).
//	    WithReason("the menu must be reachable").
//	    ForCondition(el != nil).
//	    FailWith("Expected {context:element} to exist{reason}.")
//
// # Presence, Then Value
//
// Narrowing moves the chain from the subject to a derived value. The
// narrowing function only runs while the chain is alive, so a failed
// presence check protects the value check from reading an absent value:
//
//	value, ok := el.Attribute("href")
//	c := assertion.New(opts...).
//	    ForCondition(ok).
//	    FailWith("Expected {context:element} to have attribute {0}{reason}, but found <null>.", "href").
//	    Then()
//	assertion.Given(c, func() string { return value }).
//	    Check(func(v string) bool { return v == "/home" }).
//	    FailWith("Expected {context:element} {0} attribute to have value {1}{reason}, but found {2}.",
//	        "href", "/home", value)
//
// # Message Templates
//
// Templates use positional placeholders ({0}, {1}, ...) and two reserved
// placeholders: {reason} expands to " because <reason>" (or nothing), and
// {context:label} expands to the chain's context label, falling back to
// label. See Render and FormatValue for the value formatting rules.
//
// # Reporting
//
// Failures go to a Reporter. NewTestReporter aborts the calling test, a
// Scope collects failures from several top-level checks and reports them
// together on Close, and a Recorder just keeps them.
package assertion
