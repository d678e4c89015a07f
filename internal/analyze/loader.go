package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/doc"
	"go/types"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/tools/go/packages"

	"type-inspector/internal/introspect"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// ErrPackageNotFound is returned when a pattern does not resolve to a
// loadable package.
var ErrPackageNotFound = errors.New("analyze: package not found")

// Config controls how packages are loaded.
type Config struct {
	Dir        string   // working directory for the build system, empty means current
	BuildFlags []string // e.g. "-tags=integration"
	Tests      bool     // include _test.go files
	Env        []string // environment for the build system, nil means os.Environ
}

// Loader loads Go packages and builds their type handles.
type Loader struct {
	cfg    Config
	logger *slog.Logger
}

// NewLoader creates a new Loader. A nil logger discards log output.
func NewLoader(cfg Config, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Loader{
		cfg:    cfg,
		logger: logger,
	}
}

// Load loads the package matching pattern. Patterns are standard Go package
// patterns (e.g., "fmt", "./examples/zoo", "type-inspector/examples/zoo").
// When a pattern matches several packages the one with the most files wins.
func (l *Loader) Load(ctx context.Context, pattern string) (*Package, error) {
	start := time.Now()

	cfg := &packages.Config{
		Mode:       LoadMode,
		Context:    ctx,
		Dir:        l.cfg.Dir,
		BuildFlags: l.cfg.BuildFlags,
		Tests:      l.cfg.Tests,
		Env:        l.cfg.Env,
	}

	pkgs, err := packages.Load(cfg, pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPackageNotFound, pattern, err)
	}

	l.logger.Debug("packages loaded",
		"pattern", pattern,
		"count", len(pkgs),
		"elapsed", time.Since(start))

	pkg := pickPackage(pkgs)
	if pkg == nil {
		return nil, fmt.Errorf("%w: %s: no packages matched", ErrPackageNotFound, pattern)
	}

	if len(pkgs) > 1 {
		l.logger.Debug("pattern matched several packages", "pattern", pattern, "using", pkg.ID)
	}

	// List errors mean the package does not exist; parse and type errors
	// still leave a usable, if partial, type graph.
	var fatal []error

	for _, e := range pkg.Errors {
		switch e.Kind {
		case packages.ListError, packages.UnknownError:
			fatal = append(fatal, e)
		default:
			l.logger.Warn("package has errors", "package", pkg.PkgPath, "error", e.Error())
		}
	}

	if len(fatal) > 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrPackageNotFound, pattern, errors.Join(fatal...))
	}

	return newPackage(pkg)
}

// pickPackage skips test binaries and external test packages and prefers
// the variant with the most parsed files.
func pickPackage(pkgs []*packages.Package) *packages.Package {
	var best *packages.Package

	for _, p := range pkgs {
		if strings.HasSuffix(p.PkgPath, ".test") || strings.HasSuffix(p.Name, "_test") {
			continue
		}

		if best == nil || len(p.Syntax) > len(best.Syntax) {
			best = p
		}
	}

	return best
}

// Package is a loaded package together with its documentation index.
type Package struct {
	path  string
	name  string
	types *types.Package
	docs  *doc.Package
	assoc map[string]*doc.Type
}

func newPackage(p *packages.Package) (*Package, error) {
	if p.Types == nil {
		return nil, fmt.Errorf("%w: %s: no type information", ErrPackageNotFound, p.PkgPath)
	}

	docs, err := doc.NewFromFiles(p.Fset, p.Syntax, p.PkgPath, doc.AllDecls|doc.PreserveAST)
	if err != nil {
		return nil, fmt.Errorf("building documentation for %s: %w", p.PkgPath, err)
	}

	assoc := make(map[string]*doc.Type, len(docs.Types))
	for _, t := range docs.Types {
		assoc[t.Name] = t
	}

	return &Package{
		path:  p.PkgPath,
		name:  p.Name,
		types: p.Types,
		docs:  docs,
		assoc: assoc,
	}, nil
}

// Path returns the import path.
func (p *Package) Path() string {
	return p.path
}

// Name returns the package name.
func (p *Package) Name() string {
	return p.name
}

// Synopsis returns the first sentence of the package documentation, or an
// empty string when the package is undocumented.
func (p *Package) Synopsis() string {
	return p.docs.Synopsis(p.docs.Doc)
}

// TypeNames returns the names of the types declared in the package scope,
// sorted. Unexported names are included only when all is set.
func (p *Package) TypeNames(all bool) []string {
	scope := p.types.Scope()

	var out []string

	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}

		if !all && !tn.Exported() {
			continue
		}

		out = append(out, name)
	}

	return out
}

// Lookup returns the handle of the named type declared in the package.
// Aliases are followed; aliases of unnamed types are not found.
func (p *Package) Lookup(name string) (introspect.Handle, bool) {
	tn, ok := p.types.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil, false
	}

	named, ok := types.Unalias(tn.Type()).(*types.Named)
	if !ok {
		return nil, false
	}

	return newTypeHandle(named, p), true
}

// docType returns the go/doc entry of a type declared in this package.
func (p *Package) docType(name string) *doc.Type {
	return p.assoc[name]
}
