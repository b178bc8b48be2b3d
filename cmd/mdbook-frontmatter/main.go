package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mdbook-frontmatter/internal/config"
	"mdbook-frontmatter/internal/plugin"
	"mdbook-frontmatter/internal/preprocess"
)

var rootCmd = &cobra.Command{
	Use:   "mdbook-frontmatter",
	Short: "mdbook preprocessor that rewrites chapter frontmatter",
	Long: `mdbook-frontmatter is an mdbook preprocessor plugin.

Invoked without arguments it reads the [context, book] payload from
stdin, upper-cases every frontmatter value, reformats "date" entries
from YYYY-MM-DD to MM-DD-YYYY, and writes the book back to stdout.
mdbook also invokes it as "mdbook-frontmatter supports <renderer>"
before a build to ask whether the target renderer is handled.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform()
	},
}

var supportsCmd = &cobra.Command{
	Use:   "supports [renderer]",
	Short: "Report whether a renderer is supported via the exit code",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			// The support check needs a renderer name; without one this
			// is a normal transform invocation.
			return runTransform()
		}
		if !newPreprocessor(config.Load()).SupportsRenderer(args[0]) {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(supportsCmd)
}

func newPreprocessor(cfg config.Config) *preprocess.Frontmatter {
	return &preprocess.Frontmatter{
		ExtractHeaders: cfg.ExtractHeaders,
		DeriveTitles:   cfg.DeriveTitles,
	}
}

// runTransform handles one stdin→stdout preprocessing pass. Stdout is
// reserved for the book payload; all diagnostics go to stderr.
func runTransform() error {
	cfg := config.Load()
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	return plugin.Handle(newPreprocessor(cfg), os.Stdin, os.Stdout, log)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
		log.Error("preprocessing failed", "error", err)
		os.Exit(1)
	}
}
