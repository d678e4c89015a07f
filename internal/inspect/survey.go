package inspect

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"type-inspector/internal/analyze"
)

var separator = strings.Repeat("-", 40)

// SurveyPackage prints the synopsis and the declared type names of the
// package matching path. It never fails: a package that cannot be loaded
// is reported as such, and any other failure, panics included, is printed
// as a generic error.
func (i *Inspector) SurveyPackage(ctx context.Context, path string) {
	defer func() {
		if r := recover(); r != nil {
			i.logger.Error("package survey panicked", "package", path, "panic", r)
			fmt.Fprintf(i.out, "error: %v\n", r)
		}
	}()

	err := i.survey(ctx, path)

	switch {
	case err == nil:
	case errors.Is(err, analyze.ErrPackageNotFound):
		fmt.Fprintf(i.out, "cannot import package %q: %v\n", path, err)
	default:
		fmt.Fprintf(i.out, "error: %v\n", err)
	}
}

func (i *Inspector) survey(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ns, err := i.loader.Load(ctx, path)
	if err != nil {
		return err
	}

	w := i.out

	fmt.Fprintf(w, "\n%s\n", separator)
	fmt.Fprintf(w, "\nPackage %s\n\n", ns.Path())

	summary := ns.Synopsis()
	if summary == "" {
		summary = "(no summary)"
	}

	fmt.Fprintf(w, "Summary:\n%s\n\n", summary)

	names := ns.TypeNames(i.opts.ShowAll)

	fmt.Fprintf(w, "Types: %d\n", len(names))
	fmt.Fprintln(w, "\nType list:")

	for _, name := range names {
		fmt.Fprintf(w, "  - %s\n", name)
	}

	return nil
}
