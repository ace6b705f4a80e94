package main

import (
	"runtime"

	"github.com/spf13/cobra"
)

func (a *app) versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  exactArgs(0, "no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				a.out("%s\n", version)
				return nil
			}
			a.out("vassert %s\n", version)
			a.out("  Commit:     %s\n", commit)
			a.out("  Built:      %s\n", date)
			a.out("  Go version: %s\n", runtime.Version())
			a.out("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")

	return cmd
}
