package huffman

import (
	"container/heap"
	"math"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// node is one node of a Huffman tree.  Either both children are nil (a leaf
// carrying a symbol) or both are non-nil (an internal node whose freq is the
// sum of its children's).
type node struct {
	freq  uint32
	seq   uint32
	sym   Symbol
	left  *node
	right *node
}

func (n *node) isLeaf() bool {
	return n.left == nil
}

// buildTree repeatedly merges the two lowest-frequency nodes until a single
// root covers every symbol in fm.  The first node popped becomes the left
// child of the merged node, the second the right child.
//
// Ties on freq are broken by insertion sequence: leaves enter the heap in
// ascending symbol order and merged nodes in creation order, so the tree
// shape does not depend on map iteration order.
func buildTree(fm FrequencyMap) (*node, error) {
	if len(fm) == 0 {
		return nil, ErrEmptyInput
	}

	symbols := make(bySymbol, 0, len(fm))
	for sym := range fm {
		symbols = append(symbols, sym)
	}
	symbols.Sort()

	h := make(nodeHeap, 0, len(fm))
	seq := uint32(0)
	for _, sym := range symbols {
		h = append(h, &node{freq: fm[sym], seq: seq, sym: sym})
		seq++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(*node)
		b := heap.Pop(&h).(*node)

		// Compute the merged frequency using saturating addition.
		freqSum := a.freq + b.freq
		if freqSum < a.freq {
			freqSum = math.MaxUint32
		}

		heap.Push(&h, &node{freq: freqSum, seq: seq, sym: InvalidSymbol, left: a, right: b})
		seq++
	}

	assert.Assertf(h.Len() == 1, "heap holds %d nodes after merging, expected 1", h.Len())
	return heap.Pop(&h).(*node), nil
}

// type nodeHeap {{{

type nodeHeap []*node

func (h nodeHeap) Len() int {
	return len(h)
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(*node))
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	last := len(old) - 1
	x := old[last]
	old[last] = nil
	*h = old[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

func (list bySymbol) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySymbol(nil)

// }}}
