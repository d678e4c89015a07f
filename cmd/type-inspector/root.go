package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"type-inspector/internal/analyze"
	"type-inspector/internal/config"
	"type-inspector/internal/inspect"
)

var (
	outputFile string
	output     io.Writer
	outputFd   *os.File // set when --output created a file
	configPath string
	verbose    bool
	dirFlag    string
	tagsFlag   string

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "type-inspector",
	Short: "Go type hierarchy and member inspector",
	Long: `type-inspector loads Go packages from source and reports, for a named
type, the tree of types it embeds and its members split into inherited
and own methods and attributes.

It can also list the types a package declares together with the package
synopsis.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}

		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		var err error

		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("dir") {
			cfg.Dir = dirFlag
		}

		if cmd.Flags().Changed("tags") {
			cfg.SetTags(tagsFlag)
		}

		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			output = f
			outputFd = f
		} else {
			output = cmd.OutOrStdout()
		}

		logger.Debug("configuration loaded",
			"dir", cfg.Dir,
			"build_tags", cfg.BuildTags,
			"show_all", cfg.ShowAll)

		return nil
	},
}

// closeOutput closes the file created for --output, if any. It runs after
// Execute whether or not the command failed.
func closeOutput() error {
	if outputFd == nil {
		return nil
	}

	f := outputFd
	outputFd = nil
	output = nil

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log package loading to stderr")
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "directory to resolve package patterns from")
	rootCmd.PersistentFlags().StringVar(&tagsFlag, "tags", "", "comma-separated build tags")

	rootCmd.AddCommand(typeCmd)
	rootCmd.AddCommand(packageCmd)
}

// newInspector builds an inspector over the configured package loader.
func newInspector(opts inspect.Options) *inspect.Inspector {
	loader := analyze.NewLoader(analyze.Config{
		Dir:        cfg.Dir,
		BuildFlags: cfg.BuildFlags(),
		Tests:      cfg.Tests,
	}, logger)

	opts.Logger = logger

	return inspect.New(output, inspect.FromAnalyzer(loader), opts)
}
