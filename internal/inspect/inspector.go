package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"type-inspector/internal/introspect"
)

// Options controls what the inspector prints.
type Options struct {
	ShowAll   bool         // include unexported and underscore-prefixed names
	Overrides bool         // print the own methods that shadow inherited ones
	Indent    string       // hierarchy indentation unit, empty means introspect.DefaultIndent
	Dump      io.Writer    // if set, receives a spew dump of every classification
	Logger    *slog.Logger // nil discards log output
}

// Inspector prints type reports and package surveys.
type Inspector struct {
	out      io.Writer
	loader   Loader
	resolver *Resolver
	opts     Options
	logger   *slog.Logger
}

// New creates an Inspector writing to out and loading packages through
// loader.
func New(out io.Writer, loader Loader, opts Options) *Inspector {
	if opts.Indent == "" {
		opts.Indent = introspect.DefaultIndent
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Inspector{
		out:      out,
		loader:   loader,
		resolver: NewResolver(loader),
		opts:     opts,
		logger:   logger,
	}
}

// InspectType resolves target and prints its qualified name, its ancestor
// tree, its inherited and own members, and its own type-level and unbound
// callables.
//
// A target that cannot be found is reported on the output and nil is
// returned. Usage errors, such as a type name without a package, are
// returned.
func (i *Inspector) InspectType(ctx context.Context, target any, namespace string) error {
	h, err := i.resolver.Resolve(ctx, target, namespace)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			i.logger.Debug("type reference not resolved", "target", target, "package", namespace, "error", err)
			i.printNotFound(nf)

			return nil
		}

		return fmt.Errorf("resolving %v: %w", target, err)
	}

	i.printType(h)

	return nil
}

func (i *Inspector) printNotFound(nf *NotFoundError) {
	fmt.Fprintln(i.out, nf.Error())

	if len(nf.Suggestions) > 0 {
		fmt.Fprintf(i.out, "did you mean: %s?\n", strings.Join(nf.Suggestions, ", "))
	}
}

func (i *Inspector) printType(h introspect.Handle) {
	w := i.out

	fmt.Fprintf(w, "\nType: %s", h.ID())

	if k, ok := h.(introspect.Kinded); ok {
		fmt.Fprintf(w, " (%s)", k.Kind())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Hierarchy:")
	introspect.Walk(w, h, i.opts.Indent)

	c := introspect.Classify(h)

	if i.opts.Dump != nil {
		spew.Fdump(i.opts.Dump, c.Inherited, c.Own)
	}

	filter := introspect.Predicate(introspect.DefaultFilter)
	if i.opts.ShowAll {
		filter = introspect.ShowAll
	}

	fmt.Fprintln(w, "\nInherited members:")
	introspect.Report(w, "Methods", c.Inherited.Methods, filter)
	introspect.Report(w, "Attributes", c.Inherited.Attributes, filter)

	fmt.Fprintln(w, "\nOwn members:")
	introspect.Report(w, "Methods", c.Own.Methods, filter)
	introspect.Report(w, "Attributes", c.Own.Attributes, filter)

	introspect.Report(w, "Type-level functions", c.Own.Methods, introspect.All(introspect.ShowAll, introspect.ByBinding(introspect.BindingTypeLevel)))
	introspect.Report(w, "Unbound methods", c.Own.Methods, introspect.All(introspect.ShowAll, introspect.ByBinding(introspect.BindingUnbound)))

	if i.opts.Overrides {
		introspect.Report(w, "Overrides", c.Overrides(), filter)
	}
}
