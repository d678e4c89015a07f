package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"type-inspector/internal/inspect"
)

var (
	typeAll       bool
	typeOverrides bool
	typeIndent    int
	typeDump      bool
)

var typeCmd = &cobra.Command{
	Use:   "type <name> <package>",
	Short: "Show the hierarchy and members of a type",
	Long: `Show the embedding hierarchy of a named type, followed by its inherited
and own methods and attributes, its associated constructor functions and
its methods with an unnamed receiver.

The package is an import path or a relative package pattern, e.g.
"net/http" or "./internal/store".`,
	Example: `  type-inspector type Builder strings
  type-inspector type Dog ./examples/zoo --all --overrides`,
	Args: cobra.ExactArgs(2),
	RunE: runType,
}

func init() {
	typeCmd.Flags().BoolVarP(&typeAll, "all", "a", false, "include unexported and underscore-prefixed names")
	typeCmd.Flags().BoolVar(&typeOverrides, "overrides", false, "list own methods that shadow inherited ones")
	typeCmd.Flags().IntVar(&typeIndent, "indent", 0, "spaces per hierarchy level (default from config)")
	typeCmd.Flags().BoolVar(&typeDump, "dump", false, "dump the member classification to stderr")
}

func runType(cmd *cobra.Command, args []string) error {
	name, pkg := args[0], args[1]

	if cmd.Flags().Changed("all") {
		cfg.ShowAll = typeAll
	}

	if cmd.Flags().Changed("overrides") {
		cfg.Overrides = typeOverrides
	}

	if cmd.Flags().Changed("indent") {
		if typeIndent < 1 {
			return fmt.Errorf("invalid indent: %d", typeIndent)
		}

		cfg.Indent = typeIndent
	}

	opts := inspect.Options{
		ShowAll:   cfg.ShowAll,
		Overrides: cfg.Overrides,
		Indent:    cfg.IndentUnit(),
	}

	if typeDump {
		opts.Dump = cmd.ErrOrStderr()
	}

	if err := newInspector(opts).InspectType(cmd.Context(), name, pkg); err != nil {
		return fmt.Errorf("failed to inspect %s: %w", name, err)
	}

	return nil
}
