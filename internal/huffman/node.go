package huffman

// node is a tagged sum type: a leaf carries a symbol and its weight, an
// internal node carries only the combined weight and its two children.
// The tree built from these is transient — it exists only for the
// duration of one Encode call (spec.md §3, "Lifecycles") and is
// discarded once the code table has been extracted from it.
type node struct {
	weight      int
	symbol      byte
	leaf        bool
	left, right *node

	// seq records insertion order into the priority queue. Ties in
	// weight are broken by seq so that repeated encodes of the same
	// input always merge nodes in the same order (spec.md's
	// Determinism law), without attaching any meaning to the order
	// itself — any consistent tie-break is allowed by the format,
	// since the code table travels in the header.
	seq int
}

// nodeHeap is a container/heap min-priority-queue ordered by weight,
// then by insertion sequence.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) {
	*h = append(*h, x.(*node))
}

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
