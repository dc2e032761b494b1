package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	profileMode string

	profiler interface{ Stop() }
)

var rootCmd = &cobra.Command{
	Use:   "spatial",
	Short: "Unit aware 3d vector calculations",
	Long: `spatial converts and combines 3d positions, displacements and forces.
Vectors are given as "x, y, z" or "x; y; z", optionally in parentheses.`,
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))

		switch profileMode {
		case "":
		case "cpu":
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet)
		case "mem":
			profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet)
		default:
			return fmt.Errorf("unknown profile mode %q, use cpu or mem", profileMode)
		}

		return nil
	},

	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&profileMode, "profile", "", "Write a cpu or mem profile to the working directory")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
