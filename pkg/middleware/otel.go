package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "vassert"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "vassert").
	TracerName string

	// TracerProvider supplies the tracer. Default: otel.GetTracerProvider().
	TracerProvider trace.TracerProvider

	// Filter determines which checks to trace.
	// If nil, all checks are traced.
	Filter func(check *Check) bool

	// AttributeExtractor adds custom attributes to each span.
	AttributeExtractor func(check *Check) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.TracerProvider = tp
	}
}

// WithCheckFilter sets a filter function for checks.
func WithCheckFilter(filter func(check *Check) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(check *Check) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// OpenTelemetry creates middleware that records a span per check.
//
// Spans are named "vassert.<check>" and carry the check name and subject
// label. A failed check adds an "assertion.failed" event, records the
// failure as an error and sets the span status to Error.
//
// The span's context is placed on check.Ctx while the check runs:
//
//	span := trace.SpanFromContext(check.Ctx)
func OpenTelemetry(opts ...OTelOption) Middleware {
	config := OTelConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	if config.TracerProvider == nil {
		config.TracerProvider = otel.GetTracerProvider()
	}
	tracer := config.TracerProvider.Tracer(config.TracerName)

	return MiddlewareFunc(func(check *Check, next func() Result) Result {
		if config.Filter != nil && !config.Filter(check) {
			return next()
		}

		attrs := []attribute.KeyValue{
			attribute.String("vassert.check", check.Name),
			attribute.String("vassert.label", check.Label),
		}
		if config.AttributeExtractor != nil {
			attrs = append(attrs, config.AttributeExtractor(check)...)
		}

		parent := check.Ctx
		if parent == nil {
			parent = context.Background()
		}
		spanCtx, span := tracer.Start(parent, "vassert."+check.Name,
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		check.Ctx = spanCtx
		defer func() { check.Ctx = parent }()

		res := next()

		if res.Failed {
			span.AddEvent("assertion.failed", trace.WithAttributes(
				attribute.String("vassert.message", res.Message),
			))
			span.RecordError(&checkError{message: res.Message})
			span.SetStatus(codes.Error, res.Message)
		} else {
			span.SetStatus(codes.Ok, "")
		}
		return res
	})
}

type checkError struct {
	message string
}

func (e *checkError) Error() string {
	return e.message
}
