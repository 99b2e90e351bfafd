package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/builder"
	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/dijkstra"
	"github.com/katalvlaran/pathstep/render"
)

func scenarioSolver(t *testing.T) *dijkstra.Solver {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Scenario())
	require.NoError(t, err)
	s, err := dijkstra.New(g, 1)
	require.NoError(t, err)

	return s
}

// rowOf returns the table line describing vertex id.
func rowOf(t *testing.T, out string, id core.VertexID) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(strings.NewReplacer("│", " ", "|", " ").Replace(line))
		if len(fields) > 0 && fields[0] == id.String() {
			return strings.Join(fields, " ")
		}
	}
	t.Fatalf("no row for vertex %d in:\n%s", id, out)

	return ""
}

func TestFrame_Initial(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf)
	assert.False(t, r.Color(), "buffers are never terminals")

	require.NoError(t, r.Frame(scenarioSolver(t).Snapshot(), nil))
	out := buf.String()

	assert.Contains(t, out, "step 0  phase=Idle  source=1")
	assert.Contains(t, out, "unvisited: [1 2 3 4 5]")
	assert.Contains(t, out, "current: -  edge: -")
	assert.Contains(t, strings.ToLower(out), "predecessor")
	assert.Equal(t, "1 0 -", rowOf(t, out, 1))
	assert.Equal(t, "3 ∞ -", rowOf(t, out, 3))
	assert.NotContains(t, out, "path:")
	assert.NotContains(t, out, "\x1b[")
}

func TestFrame_EdgeUnderInspection(t *testing.T) {
	s := scenarioSolver(t)
	s.Advance() // select 1
	s.Advance() // cursor on 1→2
	s.Advance() // relax 1→2, cursor on 1→5

	var buf bytes.Buffer
	require.NoError(t, render.New(&buf).Frame(s.Snapshot(), nil))
	out := buf.String()

	assert.Contains(t, out, "phase=VisitingEdges")
	assert.Contains(t, out, "current: 1  edge: 1→5 (2)")
	assert.Equal(t, "1 0 - current", rowOf(t, out, 1))
	assert.Equal(t, "2 5 1", rowOf(t, out, 2))
	assert.Equal(t, "5 ∞ - target", rowOf(t, out, 5))
}

func TestFrame_FinalWithPath(t *testing.T) {
	s := scenarioSolver(t)
	s.Run()
	path, err := s.ShortestPathTo(3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.New(&buf, render.WithStyle("default")).Frame(s.Snapshot(), path))
	out := buf.String()

	assert.Contains(t, out, "phase=Terminated")
	assert.Contains(t, out, "unvisited: []")
	assert.Contains(t, out, "path: 1 → 5 → 4 → 2 → 3")
	assert.Equal(t, "3 6 2 path", rowOf(t, out, 3))
	assert.Equal(t, "1 0 - path", rowOf(t, out, 1))
}

func TestFrame_Color(t *testing.T) {
	s := scenarioSolver(t)
	s.Advance()

	var buf bytes.Buffer
	r := render.New(&buf, render.WithColor(true))
	require.True(t, r.Color())
	require.NoError(t, r.Frame(s.Snapshot(), nil))
	assert.Contains(t, buf.String(), "\x1b[")
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestFrame_WriteError(t *testing.T) {
	err := render.New(failingWriter{}).Frame(scenarioSolver(t).Snapshot(), nil)
	assert.ErrorIs(t, err, errWrite)
}

func TestParseStyle(t *testing.T) {
	for _, name := range append(render.StyleNames(), "", "ROUNDED") {
		_, err := render.ParseStyle(name)
		assert.NoError(t, err, name)
	}
	_, err := render.ParseStyle("fancy")
	assert.ErrorIs(t, err, render.ErrUnknownStyle)
	assert.Panics(t, func() { render.WithStyle("fancy") })
}
