package introspect

import (
	"fmt"
	"io"
	"strings"
)

// DefaultIndent is the indentation unit used per hierarchy level.
const DefaultIndent = "  "

// walker prints an ancestor tree. The visited set is shared by every branch,
// so diamonds are expanded once and cycles terminate.
type walker struct {
	w       io.Writer
	indent  string
	visited map[TypeID]struct{}
	lines   int
}

// Walk prints one line per node of h's ancestor tree, starting with h itself,
// and returns the number of lines written. A node that was already visited
// is printed once more with a cycle marker and not descended into. The
// universal base is never printed.
func Walk(w io.Writer, h Handle, indent string) int {
	wk := &walker{
		w:       w,
		indent:  indent,
		visited: make(map[TypeID]struct{}),
	}

	wk.visit(h, 0)

	return wk.lines
}

func (wk *walker) visit(h Handle, depth int) {
	prefix := strings.Repeat(wk.indent, depth)

	if _, seen := wk.visited[h.ID()]; seen {
		fmt.Fprintf(wk.w, "%s- %s (cycle)\n", prefix, h.Name())
		wk.lines++

		return
	}

	wk.visited[h.ID()] = struct{}{}

	fmt.Fprintf(wk.w, "%s- %s\n", prefix, h.Name())
	wk.lines++

	for _, base := range h.Ancestors() {
		if IsUniversal(base) {
			continue
		}

		wk.visit(base, depth+1)
	}
}
