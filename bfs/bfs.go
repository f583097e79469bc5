package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ising/core"
)

type queueItem struct {
	id    string
	depth int
}

// walker holds the mutable traversal state; visited is shared across the
// walks of one Clusters call.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS walks g from startID.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// ErrNeighbors, ctx.Err(), or a wrapped OnVisit error.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	w := newWalker(g, o, make(map[string]bool, g.VertexCount()))

	return w.res, w.run(startID)
}

// Clusters partitions the sites of g into connected clusters. Each cluster
// lists its sites in BFS order from its lexicographically smallest site;
// clusters are ordered by that seed. Isolated sites form singleton clusters.
func Clusters(g *core.Graph, opts ...Option) ([][]string, error) {
	o, err := resolve(g, opts)
	if err != nil {
		return nil, err
	}
	o.MaxDepth = 0

	visited := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if visited[id] {
			continue
		}
		w := newWalker(g, o, visited)
		if err := w.run(id); err != nil {
			return nil, err
		}
		out = append(out, w.res.Order)
	}

	return out, nil
}

func resolve(g *core.Graph, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

func newWalker(g *core.Graph, o Options, visited map[string]bool) *walker {
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: visited,
		res: &Result{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
}

func (w *walker) run(start string) error {
	w.enqueue(start, 0, "")
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
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, e := range edges {
		if !w.opts.BondFilter(e) {
			continue
		}
		nbr := e.To
		if nbr == item.id {
			nbr = e.From
		}
		if !w.visited[nbr] {
			w.enqueue(nbr, next, item.id)
		}
	}

	return nil
}
