package fmm

import (
	"container/heap"

	"github.com/katalvlaran/eikon/mesh"
)

// bandItem is a narrow-band entry: a Trial vertex and its current potential.
type bandItem struct {
	v   mesh.VertexID
	key float64
}

// narrowBand is an addressable min-heap of Trial vertices keyed by potential.
// slot[v] is the heap index of v, or -1 when v is not in the band, so a
// decrease-key is a heap.Fix at a known position.
type narrowBand struct {
	items []bandItem
	slot  []int
}

// newNarrowBand returns an empty band for n vertices.
func newNarrowBand(n int) *narrowBand {
	b := &narrowBand{slot: make([]int, n)}
	b.reset()

	return b
}

// reset empties the band.
func (b *narrowBand) reset() {
	b.items = b.items[:0]
	for i := range b.slot {
		b.slot[i] = -1
	}
}

// contains reports whether v is in the band.
func (b *narrowBand) contains(v mesh.VertexID) bool { return b.slot[v] >= 0 }

// push inserts v with the given key. v must not be in the band.
func (b *narrowBand) push(v mesh.VertexID, key float64) {
	heap.Push(b, bandItem{v: v, key: key})
}

// improve lowers the key of v (already in the band) and restores heap order.
func (b *narrowBand) improve(v mesh.VertexID, key float64) {
	i := b.slot[v]
	b.items[i].key = key
	heap.Fix(b, i)
}

// popMin removes and returns the vertex with the smallest key.
func (b *narrowBand) popMin() (mesh.VertexID, float64) {
	it := heap.Pop(b).(bandItem)

	return it.v, it.key
}

// Len returns the number of vertices in the band (heap.Interface).
func (b *narrowBand) Len() int { return len(b.items) }

// Less orders by key; ties go to the lower vertex id so runs are reproducible.
func (b *narrowBand) Less(i, j int) bool {
	if b.items[i].key != b.items[j].key {
		return b.items[i].key < b.items[j].key
	}

	return b.items[i].v < b.items[j].v
}

// Swap swaps two entries and their slots.
func (b *narrowBand) Swap(i, j int) {
	b.items[i], b.items[j] = b.items[j], b.items[i]
	b.slot[b.items[i].v] = i
	b.slot[b.items[j].v] = j
}

// Push appends x; called by heap.Push.
func (b *narrowBand) Push(x interface{}) {
	it := x.(bandItem)
	b.slot[it.v] = len(b.items)
	b.items = append(b.items, it)
}

// Pop removes the last entry; called by heap.Pop.
func (b *narrowBand) Pop() interface{} {
	n := len(b.items)
	it := b.items[n-1]
	b.items = b.items[:n-1]
	b.slot[it.v] = -1

	return it
}
