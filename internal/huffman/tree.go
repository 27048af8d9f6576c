package huffman

import "container/heap"

// buildTree reduces one leaf per distinct symbol in weights to a single
// root node by repeatedly merging the two lowest-weight nodes
// (spec.md §4.2 steps 2–3). weights must be non-empty; callers handle
// the empty-input case before reaching here.
func buildTree(weights map[byte]int) *node {
	h := make(nodeHeap, 0, len(weights))
	seq := 0

	// Iterate symbols in ascending order so that, combined with the
	// seq tie-break, tree construction — and therefore the emitted
	// header and payload — is identical across repeated calls on the
	// same input (spec.md's Determinism law). Map iteration order in
	// Go is randomized per run, so this ordering is load-bearing, not
	// cosmetic.
	for _, sym := range sortedSymbols(weights) {
		heap.Push(&h, &node{weight: weights[sym], symbol: sym, leaf: true, seq: seq})
		seq++
	}

	for h.Len() > 1 {
		a := heap.Pop(&h).(*node)
		b := heap.Pop(&h).(*node)
		heap.Push(&h, &node{weight: a.weight + b.weight, left: a, right: b, seq: seq})
		seq++
	}

	return h[0]
}

// sortedSymbols returns the keys of weights in ascending order.
func sortedSymbols(weights map[byte]int) []byte {
	present := make([]bool, 256)
	for s := range weights {
		present[s] = true
	}
	return collectSet(present)
}

// sortedCodeSymbols returns the keys of a symbol->code map in ascending
// order, so header emission and tree construction walk symbols in the
// same deterministic sequence.
func sortedCodeSymbols(codes map[byte]string) []byte {
	present := make([]bool, 256)
	for s := range codes {
		present[s] = true
	}
	return collectSet(present)
}

// collectSet returns the indices set to true, in ascending order.
// Symbols are bytes (0..255), so a counting pass over a fixed 256-entry
// table is simpler and faster than sort.Slice for so small a domain.
func collectSet(present []bool) []byte {
	out := make([]byte, 0, len(present))
	for i := 0; i < 256; i++ {
		if present[i] {
			out = append(out, byte(i))
		}
	}
	return out
}

// buildCodes performs the pre-order traversal of spec.md §4.2 step 4:
// left edges append '0', right edges append '1'. A single-leaf tree
// (one distinct symbol in the input) is a degenerate case spec.md §9
// leaves open; this codec resolves it by assigning the leaf the 1-bit
// code "0" so single-symbol input round-trips instead of erroring
// (see SPEC_FULL.md).
func buildCodes(root *node) map[byte]string {
	codes := make(map[byte]string)
	if root.leaf {
		codes[root.symbol] = "0"
		return codes
	}
	var walk func(n *node, path []byte)
	walk = func(n *node, path []byte) {
		if n.leaf {
			codes[n.symbol] = string(path)
			return
		}
		walk(n.left, append(path, '0'))
		walk(n.right, append(path, '1'))
	}
	walk(root, nil)
	return codes
}
