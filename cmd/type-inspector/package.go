package main

import (
	"github.com/spf13/cobra"

	"type-inspector/internal/inspect"
)

var packageAll bool

var packageCmd = &cobra.Command{
	Use:     "package <pattern>",
	Aliases: []string{"pkg"},
	Short:   "Survey the types declared by a package",
	Long: `Print the synopsis of a package and the names of the types it declares.

Packages that cannot be loaded are reported on the output; the command
itself does not fail.`,
	Args: cobra.ExactArgs(1),
	RunE: runPackage,
}

func init() {
	packageCmd.Flags().BoolVarP(&packageAll, "all", "a", false, "include unexported type names")
}

func runPackage(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("all") {
		cfg.ShowAll = packageAll
	}

	newInspector(inspect.Options{ShowAll: cfg.ShowAll}).SurveyPackage(cmd.Context(), args[0])

	return nil
}
