package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vango-dev/vassert/internal/config"
	verrors "github.com/vango-dev/vassert/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

// errFailed is returned by commands whose assertions did not hold. The
// failures have already been printed.
var errFailed = errors.New("assertion failed")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	app := &app{stdout: stdout, stderr: stderr}
	root := app.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errFailed):
		return exitFailed
	default:
		verrors.Fprint(stderr, err)
		return exitUsage
	}
}

// app holds what every command shares once flags are parsed.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	colorMode  string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vassert",
		Short: "Structural assertions for HTML fragments",
		Long: `vassert checks rendered HTML fragments from the command line.

It uses the same checks and structural comparison as the vtest package,
so expectations can be tried out before they are written into tests.

Exit codes:
  0  all assertions hold
  1  an assertion failed
  2  usage or configuration error`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to vassert.yaml (default: nearest in a parent directory)")
	cmd.PersistentFlags().StringVar(&a.colorMode, "color", "", "Colored output: auto, always or never")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log every check")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return verrors.New("VA030").Wrap(err)
	})

	cmd.AddCommand(
		a.matchCmd(),
		a.checkCmd(),
		a.versionCmd(),
	)
	return cmd
}

func (a *app) setup() error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFile(a.configPath)
	} else {
		a.cfg, err = config.LoadOrDefault(".")
	}
	if err != nil {
		return err
	}

	if a.colorMode != "" {
		a.cfg.Color = a.colorMode
		if err := a.cfg.Validate(); err != nil {
			return err
		}
	}
	if a.verbose {
		a.cfg.Log.Level = "debug"
	}

	color.NoColor = !a.cfg.UseColor(!color.NoColor)

	a.logger, err = a.cfg.Logger()
	if err != nil {
		return err
	}
	a.logger.Debug("configuration loaded", zap.String("path", a.cfg.Path()))
	return nil
}

// usage wraps argument errors so they exit with exitUsage.
func usage(format string, args ...any) error {
	return verrors.New("VA030").WithDetail(fmt.Sprintf(format, args...))
}

func exactArgs(n int, names string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usage("%s expects %s, got %d argument(s)", cmd.Name(), names, len(args))
		}
		return nil
	}
}

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

func (a *app) pass(format string, args ...any) {
	fmt.Fprintf(a.stdout, "%s %s\n", green("✓"), fmt.Sprintf(format, args...))
}

func (a *app) fail(format string, args ...any) {
	fmt.Fprintf(a.stdout, "%s %s\n", red("✗"), fmt.Sprintf(format, args...))
}

func readFile(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", usage("cannot read %s: %v", path, err)
	}
	return string(data), nil
}

func (a *app) out(format string, args ...any) {
	fmt.Fprintf(a.stdout, format, args...)
}
