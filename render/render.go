package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/dijkstra"
)

// Marks shown in the table's last column.
const (
	MarkCurrent = "current"
	MarkTarget  = "target"
	MarkPath    = "path"
	MarkSettled = "settled"
)

const (
	infinity = "∞"
	none     = "-"
)

var (
	colorCurrent = text.Colors{text.FgRed, text.Bold}
	colorTarget  = text.Colors{text.FgGreen}
	colorPath    = text.Colors{text.FgMagenta}
)

// Renderer writes frames to a single writer. It is not safe for concurrent use.
type Renderer struct {
	w     io.Writer
	color bool
	style table.Style
}

// New returns a Renderer writing to w. Colour defaults to on when w is a
// terminal (including Cygwin/MSYS ptys) and off otherwise.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w, color: isTerminal(w), style: table.StyleLight}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Color reports whether frames are painted.
func (r *Renderer) Color() bool { return r.color }

// Frame writes one frame for snap. A non-nil path (as returned by
// ShortestPathTo, source excluded) is printed after the table and its
// vertices are marked; pass nil while the run is in progress.
func (r *Renderer) Frame(snap dijkstra.Snapshot, path []core.VertexID) error {
	var b strings.Builder

	fmt.Fprintf(&b, "step %d  phase=%s  source=%d\n", snap.Steps, snap.Phase, snap.Source)
	fmt.Fprintf(&b, "unvisited: %v\n", snap.Unvisited)
	b.WriteString(r.cursorLine(snap))
	b.WriteString(r.table(snap, path))
	b.WriteByte('\n')
	if path != nil {
		b.WriteString(r.pathLine(snap.Source, path))
	}

	_, err := io.WriteString(r.w, b.String())

	return err
}

func (r *Renderer) cursorLine(snap dijkstra.Snapshot) string {
	if !snap.HasCurrent {
		return "current: -  edge: -\n"
	}
	cur := r.paint(colorCurrent, snap.Current.String())
	if !snap.HasEdge {
		return fmt.Sprintf("current: %s  edge: -\n", cur)
	}

	return fmt.Sprintf("current: %s  edge: %s→%s (%d)\n",
		cur, cur, r.paint(colorTarget, snap.Edge.To.String()), snap.Edge.Weight)
}

func (r *Renderer) table(snap dijkstra.Snapshot, path []core.VertexID) string {
	onPath := make(map[core.VertexID]bool, len(path)+1)
	if path != nil {
		onPath[snap.Source] = true
		for _, id := range path {
			onPath[id] = true
		}
	}

	t := table.NewWriter()
	t.SetStyle(r.style)
	t.AppendHeader(table.Row{"vertex", "distance", "predecessor", "mark"})

	for _, id := range sortedIDs(snap.Table) {
		e := snap.Table[id]
		mark, colors := r.mark(snap, id, onPath)
		t.AppendRow(table.Row{
			r.paint(colors, id.String()),
			distance(e),
			predecessor(e),
			mark,
		})
	}

	return t.Render()
}

// mark picks the row label; the edge under inspection wins over the path,
// the path over settlement.
func (r *Renderer) mark(snap dijkstra.Snapshot, id core.VertexID, onPath map[core.VertexID]bool) (string, text.Colors) {
	switch {
	case snap.HasCurrent && id == snap.Current:
		return MarkCurrent, colorCurrent
	case snap.HasEdge && id == snap.Edge.To:
		return MarkTarget, colorTarget
	case onPath[id]:
		return MarkPath, colorPath
	case snap.IsSettled(id):
		return MarkSettled, nil
	}

	return "", nil
}

func (r *Renderer) pathLine(source core.VertexID, path []core.VertexID) string {
	parts := make([]string, 0, len(path)+1)
	parts = append(parts, r.paint(colorPath, source.String()))
	for _, id := range path {
		parts = append(parts, r.paint(colorPath, id.String()))
	}

	return "path: " + strings.Join(parts, " → ") + "\n"
}

func (r *Renderer) paint(c text.Colors, s string) string {
	if !r.color || len(c) == 0 {
		return s
	}

	return c.Sprint(s)
}

func distance(e dijkstra.Entry) string {
	if !e.Reachable() {
		return infinity
	}

	return strconv.FormatInt(e.Distance, 10)
}

func predecessor(e dijkstra.Entry) string {
	if !e.HasPredecessor {
		return none
	}

	return e.Predecessor.String()
}

func sortedIDs(m map[core.VertexID]dijkstra.Entry) []core.VertexID {
	ids := make([]core.VertexID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}
