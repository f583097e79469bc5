package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/ising/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures a traversal. Invalid values are recorded and surfaced
// as ErrOptionViolation when the traversal starts.
type Option func(*Options)

// Options holds the traversal parameters.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit runs for every visited site; a non-nil error aborts the walk.
	OnVisit func(id string, depth int) error

	// MaxDepth > 0 stops exploring beyond that many bonds; 0 means no limit.
	MaxDepth int

	// BondFilter returns false for bonds that must not be followed.
	BondFilter func(e *core.Edge) bool

	err error
}

// DefaultOptions returns background context, no depth limit, every bond
// followed and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(string, int) error { return nil },
		BondFilter: func(*core.Edge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit callback.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the walk to d bonds from the start (d == 0: no limit).
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithBondFilter skips bonds for which fn returns false.
func WithBondFilter(fn func(e *core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.BondFilter = fn
		}
	}
}

// WithNonZeroBonds follows only bonds with J ≠ 0; zero bonds do not couple.
func WithNonZeroBonds() Option {
	return WithBondFilter(func(e *core.Edge) bool { return e.Weight != 0 })
}

// Result holds the outcome of one traversal.
type Result struct {
	Order  []string          // sites in visit order
	Depth  map[string]int    // hop distance from the start
	Parent map[string]string // BFS-tree predecessor; absent for the start
}

// PathTo reconstructs the start→dest path through the BFS tree.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
