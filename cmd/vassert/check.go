package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	verrors "github.com/vango-dev/vassert/internal/errors"
	"github.com/vango-dev/vassert/pkg/assertion"
	"github.com/vango-dev/vassert/pkg/dom"
	"github.com/vango-dev/vassert/pkg/markup"
	"github.com/vango-dev/vassert/pkg/middleware"
	"github.com/vango-dev/vassert/pkg/vtest"
)

type checkFlags struct {
	selector    string
	tag         string
	classes     []string
	noClasses   []string
	attrs       []string
	rel         string
	childMarkup string
	markup      string
	because     string
}

func (f *checkFlags) empty() bool {
	return f.tag == "" && len(f.classes) == 0 && len(f.noClasses) == 0 &&
		len(f.attrs) == 0 && f.rel == "" && f.childMarkup == "" && f.markup == ""
}

func (a *app) checkCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Run assertions against a markup file",
		Long: `Run assertions against the first element of a markup file, or the
first element matching --select. Every check runs; all failures are
printed. Use - to read from standard input.

Examples:
  vassert check nav.html --select 'a[data-test-id=home]' --attr href=/ --rel noopener
  vassert check card.html --tag article --class card --no-class hidden
  vassert check list.html --child-markup '<li>First</li>' --because "items are sorted"`,
		Args: exactArgs(1, "FILE"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(args[0], &flags)
		},
	}

	cmd.Flags().StringVarP(&flags.selector, "select", "s", "", "CSS selector of the element to check")
	cmd.Flags().StringVar(&flags.tag, "tag", "", "Expected tag name")
	cmd.Flags().StringArrayVar(&flags.classes, "class", nil, "Expected class (repeatable)")
	cmd.Flags().StringArrayVar(&flags.noClasses, "no-class", nil, "Class that must be absent (repeatable)")
	cmd.Flags().StringArrayVar(&flags.attrs, "attr", nil, "Expected attribute as name=value (repeatable)")
	cmd.Flags().StringVar(&flags.rel, "rel", "", "Token expected in the rel attribute")
	cmd.Flags().StringVar(&flags.childMarkup, "child-markup", "", "Expected markup of the first child")
	cmd.Flags().StringVar(&flags.markup, "markup", "", "Expected markup of the element")
	cmd.Flags().StringVar(&flags.because, "because", "", "Reason added to failure messages")

	return cmd
}

func (a *app) runCheck(path string, flags *checkFlags) error {
	if flags.empty() {
		return usage("check needs at least one of --tag, --class, --no-class, --attr, --rel, --child-markup or --markup")
	}
	attrs, err := parseAttrs(flags.attrs)
	if err != nil {
		return err
	}

	source, err := readFile(path)
	if err != nil {
		return err
	}
	f, err := dom.ParseFragment(source)
	if err != nil {
		return err
	}

	rec := &assertion.Recorder{}
	opts := []vtest.Option{
		vtest.WithReporter(rec),
		vtest.WithComparator(markup.New(a.cfg.MarkupOptions()...)),
	}
	if a.logger.Core().Enabled(zapcore.DebugLevel) {
		opts = append(opts, vtest.WithMiddleware(middleware.Logging(a.logger)))
	}

	if flags.selector == "" {
		if a.cfg.Label.Fragment != "" {
			opts = append(opts, vtest.As(a.cfg.Label.Fragment))
		}
		runChecks(vtest.ShouldFragment(nil, f, opts...), flags, attrs)
	} else {
		el, err := f.Find(flags.selector)
		switch {
		case errors.Is(err, dom.ErrNoMatch):
			a.fail("no element matched %q in %s", flags.selector, path)
			return errFailed
		case err != nil:
			return err
		}
		if a.cfg.Label.Element != "" {
			opts = append(opts, vtest.As(a.cfg.Label.Element))
		}
		runChecks(vtest.Should(nil, el, opts...), flags, attrs)
	}

	failures := rec.Messages()
	a.logger.Debug("checks finished", zap.String("file", path), zap.Int("failures", len(failures)))
	if len(failures) == 0 {
		a.pass("%s: all checks passed", path)
		return nil
	}
	for _, msg := range failures {
		a.fail("%s", msg)
	}
	if len(failures) > 1 {
		a.out("%d failures\n", len(failures))
	}
	return errFailed
}

type attr struct {
	name, value string
}

func parseAttrs(specs []string) ([]attr, error) {
	out := make([]attr, 0, len(specs))
	for _, s := range specs {
		name, value, ok := strings.Cut(s, "=")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, verrors.New("VA030").
				WithDetail("--attr expects name=value, got " + s).
				WithSuggestion("Use --attr href=/home, or --attr alt= for an empty value")
		}
		out = append(out, attr{name: strings.TrimSpace(name), value: value})
	}
	return out, nil
}

func runChecks[S vtest.Subject](a *vtest.Assertions[S], flags *checkFlags, attrs []attr) {
	because := []any{}
	if flags.because != "" {
		because = append(because, flags.because)
	}

	if flags.tag != "" {
		a.HaveTag(flags.tag, because...)
	}
	for _, c := range flags.classes {
		a.HaveClass(c, because...)
	}
	for _, c := range flags.noClasses {
		a.NotHaveClass(c, because...)
	}
	for _, at := range attrs {
		a.HaveAttribute(at.name, at.value, because...)
	}
	if flags.rel != "" {
		a.HaveRel(flags.rel, because...)
	}
	if flags.childMarkup != "" {
		a.HaveChildMarkup(flags.childMarkup, because...)
	}
	if flags.markup != "" {
		a.HaveMarkup(flags.markup, because...)
	}
}
