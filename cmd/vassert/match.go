package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vango-dev/vassert/pkg/markup"
)

func (a *app) matchCmd() *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "match ACTUAL EXPECTED",
		Short: "Compare two markup files structurally",
		Long: `Compare two markup files structurally.

Attribute order, class order, comments and insignificant whitespace are
ignored unless vassert.yaml says otherwise. Use - to read one side from
standard input.

Examples:
  vassert match out.html want.html
  render-card | vassert match - testdata/card.html
  vassert match --normalize out.html want.html`,
		Args: exactArgs(2, "ACTUAL and EXPECTED"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMatch(args[0], args[1], normalize)
		},
	}

	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "Print both sides in canonical form on mismatch")

	return cmd
}

func (a *app) runMatch(actualPath, expectedPath string, normalize bool) error {
	actual, err := readFile(actualPath)
	if err != nil {
		return err
	}
	expected, err := readFile(expectedPath)
	if err != nil {
		return err
	}

	cmp := markup.New(a.cfg.MarkupOptions()...)
	res := cmp.Compare(actual, expected)
	a.logger.Debug("compared markup",
		zap.String("actual", actualPath),
		zap.String("expected", expectedPath),
		zap.Stringer("outcome", res.Outcome),
	)

	if res.Matched() {
		a.pass("%s matches %s", actualPath, expectedPath)
		return nil
	}

	a.fail("%s does not match %s", actualPath, expectedPath)
	a.out("\n%s\n", res.Diff)
	if normalize {
		if got, err := cmp.Normalize(actual); err == nil {
			a.out("actual:   %s\n", got)
		}
		if want, err := cmp.Normalize(expected); err == nil {
			a.out("expected: %s\n", want)
		}
	}
	return errFailed
}
