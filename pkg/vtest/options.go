package vtest

import (
	"context"

	"github.com/vango-dev/vassert/internal/config"
	"github.com/vango-dev/vassert/pkg/assertion"
	"github.com/vango-dev/vassert/pkg/markup"
	"github.com/vango-dev/vassert/pkg/middleware"
)

// Default subject labels substituted for {context:...} in messages.
const (
	ElementLabel  = "element"
	FragmentLabel = "rendered fragment"
)

type settings struct {
	label         string
	elementLabel  string
	fragmentLabel string
	reporter      assertion.Reporter
	soft          bool
	comparator    markup.Comparator
	middleware    []middleware.Middleware
	ctx           context.Context
}

// Option configures an assertion surface.
type Option func(*settings)

// As sets the label used for the subject in failure messages.
func As(label string) Option {
	return func(s *settings) {
		s.label = label
	}
}

// WithReporter sends failures to r instead of the test.
func WithReporter(r assertion.Reporter) Option {
	return func(s *settings) {
		s.reporter = r
	}
}

// Soft reports failures with t.Errorf and lets the test continue.
func Soft() Option {
	return func(s *settings) {
		s.soft = true
	}
}

// WithComparator sets the structural comparator used by the markup checks.
func WithComparator(c markup.Comparator) Option {
	return func(s *settings) {
		s.comparator = c
	}
}

// WithMiddleware appends middleware run around every check.
func WithMiddleware(mws ...middleware.Middleware) Option {
	return func(s *settings) {
		s.middleware = append(s.middleware, mws...)
	}
}

// WithContext sets the context handed to middleware.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		s.ctx = ctx
	}
}

func withLabels(element, fragment string) Option {
	return func(s *settings) {
		if element != "" {
			s.elementLabel = element
		}
		if fragment != "" {
			s.fragmentLabel = fragment
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		elementLabel:  ElementLabel,
		fragmentLabel: FragmentLabel,
		ctx:           context.Background(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.comparator == nil {
		s.comparator = markup.New()
	}
	return s
}

func (s settings) reporterFor(t assertion.TestingT) assertion.Reporter {
	switch {
	case s.reporter != nil:
		return s.reporter
	case t == nil:
		return assertion.ReporterFunc(func(message string) {
			panic(&assertion.AssertionError{Failures: []string{message}})
		})
	case s.soft:
		return assertion.NewSoftTestReporter(t)
	default:
		return assertion.NewTestReporter(t)
	}
}

// OptionsFromConfig loads the nearest vassert.yaml at or above dir (or the
// defaults when there is none) and returns the matching options.
//
//	opts, err := vtest.OptionsFromConfig(".")
//	require.NoError(t, err)
//	vtest.Should(t, el, opts...).HaveID("menu")
func OptionsFromConfig(dir string) ([]Option, error) {
	cfg, err := config.LoadOrDefault(dir)
	if err != nil {
		return nil, err
	}
	return optionsFor(cfg)
}

func optionsFor(cfg *config.Config) ([]Option, error) {
	opts := []Option{
		WithComparator(markup.New(cfg.MarkupOptions()...)),
		withLabels(cfg.Label.Element, cfg.Label.Fragment),
	}
	if !cfg.FailFast {
		opts = append(opts, Soft())
	}

	if cfg.Log.Level != "off" {
		logger, err := cfg.Logger()
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMiddleware(middleware.Logging(logger)))
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, WithMiddleware(middleware.Prometheus(
			middleware.WithNamespace(cfg.Metrics.Namespace),
		)))
	}
	if cfg.Tracing.Enabled {
		opts = append(opts, WithMiddleware(middleware.OpenTelemetry(
			middleware.WithTracerName(cfg.Tracing.TracerName),
		)))
	}
	return opts, nil
}
