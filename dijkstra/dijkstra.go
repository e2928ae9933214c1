package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/eikon/mesh"
	"github.com/katalvlaran/eikon/slowness"
	"github.com/paulmach/orb/planar"
)

// Dijkstra returns the edge-graph arrival time of every vertex of m from the
// nearest of sources under slowness f. Unreached vertices hold +Inf.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMesh).
//  2. f must be non-nil (ErrNilSlowness).
//  3. sources must be non-empty (ErrNoSources).
//  4. every source must be a vertex of m (ErrVertexNotFound).
//
// The mesh state is not touched; Dijkstra only reads geometry and topology.
func Dijkstra(m *mesh.Mesh, f slowness.Func, sources []mesh.VertexID, opts ...Option) ([]float64, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if m == nil {
		return nil, ErrNilMesh
	}
	if f == nil {
		return nil, ErrNilSlowness
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	n := m.NumVertices()
	for _, s := range sources {
		if s < 0 || int(s) >= n {
			return nil, fmt.Errorf("%w: %d (have %d vertices)", ErrVertexNotFound, s, n)
		}
	}

	// 3) Prepare state and run.
	r := &runner{
		m:       m,
		options: cfg,
		cost:    make([]float64, n),
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init(f, sources)
	r.process()

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       *mesh.Mesh
	options Options
	cost    []float64 // slowness sampled once per vertex
	dist    []float64
	visited []bool
	pq      nodePQ
}

// init samples the slowness, sets every distance to +Inf and pushes the
// sources at distance 0.
func (r *runner) init(f slowness.Func, sources []mesh.VertexID) {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.cost[v] = f.At(r.m.Position(mesh.VertexID(v)))
	}
	heap.Init(&r.pq)
	for _, s := range sources {
		if r.dist[s] == 0 || !passableVertex(r.cost[s]) {
			continue
		}
		r.dist[s] = 0
		heap.Push(&r.pq, &nodeItem{id: s, dist: 0})
	}
}

// process pops vertices in increasing distance until the heap is empty or
// the closest remaining vertex lies beyond MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves the neighbours of the finalized vertex u.
func (r *runner) relax(u mesh.VertexID) {
	pu := r.m.Position(u)
	for _, v := range r.m.AdjacentVertices(u) {
		if r.visited[v] || !passableVertex(r.cost[v]) || !r.passableEdge(u, v) {
			continue
		}
		w := planar.Distance(pu, r.m.Position(v)) * (r.cost[u] + r.cost[v]) / 2
		nd := r.dist[u] + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}
}

// passableEdge reports whether uv borders at least one non-boundary face.
func (r *runner) passableEdge(u, v mesh.VertexID) bool {
	for _, f := range r.m.AdjacentFaces(u) {
		if !r.m.IsBoundary(f) && r.m.EdgeBetween(f, u, v) != mesh.NoEdge {
			return true
		}
	}

	return false
}

func passableVertex(c float64) bool {
	return !math.IsInf(c, 1) && !math.IsNaN(c)
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem struct {
	id   mesh.VertexID
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties by id. Improved
// distances are pushed as new entries; stale ones are skipped on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
