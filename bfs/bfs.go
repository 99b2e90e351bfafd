// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathstep/core"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    core.VertexID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[core.VertexID]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any error returned by the OnVisit hook.
func BFS(g *core.Graph, start core.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.VertexID]bool, n),
		res: &Result{
			Order:  make([]core.VertexID, 0, n),
			Depth:  make(map[core.VertexID]int, n),
			Parent: make(map[core.VertexID]core.VertexID, n),
		},
	}

	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// Reachable reports whether dest can be reached from start along outgoing edges.
func Reachable(g *core.Graph, start, dest core.VertexID) (bool, error) {
	res, err := BFS(g, start)
	if err != nil {
		return false, err
	}

	return res.Contains(dest), nil
}

// enqueue marks id visited at depth d and adds it to the queue.
func (w *walker) enqueue(id core.VertexID, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen target.
func (w *walker) enqueueNeighbors(item queueItem) error {
	edges, err := w.graph.Neighbours(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbours of %d: %w", item.id, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, e := range edges {
		if !w.opts.FilterNeighbor(item.id, e) {
			continue
		}
		if w.visited[e.To] {
			continue
		}
		// Edges into missing vertices are a caller contract violation.
		if !w.graph.HasVertex(e.To) {
			return fmt.Errorf("bfs: edge %d→%d: %w", item.id, e.To, core.ErrVertexNotFound)
		}
		w.res.Parent[e.To] = item.id
		w.enqueue(e.To, next)
	}

	return nil
}
