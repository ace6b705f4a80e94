// Package middleware wraps the evaluation of assertions.
//
// Every assertion made through vtest runs as a Check passed through a
// stack of Middleware. Middleware sees the check before it runs and the
// Result after, so it can time, count, trace or log assertions without
// touching their messages:
//
//	a := vtest.Should(t, el, vtest.WithMiddleware(
//	    middleware.Logging(logger),
//	    middleware.Prometheus(),
//	    middleware.OpenTelemetry(middleware.WithTracerName("ui-tests")),
//	))
//
// # Prometheus Metrics
//
//   - vassert_checks_total: Checks by name and status (pass/fail)
//   - vassert_check_duration_seconds: Check duration histogram
//   - vassert_check_failures_total: Failures by name and subject label
//
// Collectors are registered once per registry and namespace; GetMetrics
// returns the most recently used set.
//
// # OpenTelemetry
//
// One span per check, named "vassert.<check>". The span context is
// available to the check through Check.Ctx.
package middleware
