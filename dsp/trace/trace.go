// Package trace renders a propagation graph and its windows as a text table
// for debugging.
package trace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-chain/dsp/chain"
)

// ErrNotDrawable is returned when the dump root has no window to show.
var ErrNotDrawable = errors.New("trace: root node is not drawable")

// Drawable is implemented by nodes with a window that can be shown as a column.
type Drawable interface {
	Len() int
	Cell(i int) string
}

// Timed is implemented by drawable nodes correlated with a time buffer. A
// timed root adds a leading time column.
type Timed interface {
	TimeLen() int
	TimeCell(i int) string
}

const timeHeader = "        Time | "

type hopKind int

const (
	hopRoot hopKind = iota
	hopPipe
	hopBranch
)

type hop struct {
	id      chain.NodeID
	from    int // column of the drawable ancestor
	kind    hopKind
	skipped bool
}

type column struct {
	node Drawable
	end  int
}

// Dump renders the subtree rooted at root, including the root's later
// siblings. Nodes that are not Drawable are transparent: their drawable
// descendants are shown as if attached to the nearest drawable ancestor.
// It returns an empty string when root cannot be drawn.
func Dump[T any](g *chain.Graph[T], root chain.NodeID) string {
	s, err := DumpE(g, root)
	if err != nil {
		return ""
	}
	return s
}

// DumpE is Dump with an error for roots that cannot be drawn.
func DumpE[T any](g *chain.Graph[T], root chain.NodeID) (string, error) {
	if root < 0 || int(root) >= g.Len() {
		return "", fmt.Errorf("%w: %d", chain.ErrUnknownNode, root)
	}
	if _, ok := g.Processor(root).(Drawable); !ok {
		return "", fmt.Errorf("%w: %s", ErrNotDrawable, g.Name(root))
	}

	var (
		header  strings.Builder
		columns []column
		cursor  int
		padding int
	)
	timed, _ := g.Processor(root).(Timed)
	if timed != nil {
		header.WriteString(timeHeader)
		padding = len(timeHeader)
		cursor = padding
	}

	var stack []hop
	push := func(next []hop, from int) {
		for i := len(next) - 1; i >= 1; i-- {
			stack = append(stack, hop{id: next[i].id, from: from, kind: hopBranch, skipped: next[i].skipped})
		}
		if len(next) > 0 {
			stack = append(stack, hop{id: next[0].id, from: from, kind: hopPipe, skipped: next[0].skipped})
		}
	}

	// later siblings of the root branch off the root column
	sibs := visible(g, g.NextSibling(root), false, nil)
	for i := len(sibs) - 1; i >= 0; i-- {
		stack = append(stack, hop{id: sibs[i].id, kind: hopBranch, skipped: sibs[i].skipped})
	}
	stack = append(stack, hop{id: root, kind: hopRoot})

	for len(stack) > 0 {
		h := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		d := g.Processor(h.id).(Drawable)
		label := fmt.Sprintf("%s[%d]", g.Name(h.id), d.Len())
		var seg string
		switch h.kind {
		case hopRoot:
			seg = label
		case hopPipe:
			arrow := " -> "
			if h.skipped {
				arrow = " ->...-> "
			}
			seg = arrow + label
		case hopBranch:
			glyph := "|"
			if h.skipped {
				glyph = "/"
			}
			from := columns[h.from].end
			header.WriteByte('\n')
			seg = strings.Repeat(" ", from-1) + glyph + strings.Repeat("-", cursor-from) + "--> " + label
			cursor = 0
		}
		header.WriteString(seg)
		cursor += len(seg)

		columns = append(columns, column{node: d, end: cursor})
		idx := len(columns) - 1

		push(visible(g, g.FirstChild(h.id), false, nil), idx)
	}

	rows := 0
	for _, c := range columns {
		rows = max(rows, c.node.Len())
	}

	var sb strings.Builder
	sb.WriteString(header.String())
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("_", cursor))
	for i := range rows {
		sb.WriteByte('\n')
		start := 0
		if timed != nil {
			fmt.Fprintf(&sb, "%*s   ", padding-3, cell(timed.TimeLen(), timed.TimeCell, i))
			start = padding
		}
		for _, c := range columns {
			fmt.Fprintf(&sb, "%*s", c.end-start, cell(c.node.Len(), c.node.Cell, i))
			start = c.end
		}
	}
	return sb.String(), nil
}

// visible collects the drawable nodes of the sibling list starting at
// first, descending through nodes that are not drawable.
func visible[T any](g *chain.Graph[T], first chain.NodeID, skipped bool, out []hop) []hop {
	for id := first; id != chain.None; id = g.NextSibling(id) {
		if _, ok := g.Processor(id).(Drawable); ok {
			out = append(out, hop{id: id, skipped: skipped})
			continue
		}
		out = visible(g, g.FirstChild(id), true, out)
	}
	return out
}

func cell(n int, f func(int) string, i int) string {
	if i >= n {
		return "-"
	}
	return f(i)
}
