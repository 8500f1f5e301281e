// Copyright (c) 2025, the fastgrin authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffman builds prefix-code trees over the 9-bit grin symbol
// space and converts them to and from their bit-packed header form.
package huffman

import (
	"container/heap"
	"errors"
	"sort"
)

// Symbol is a 9-bit code-tree value: the byte values 0-255 plus EOF.
type Symbol uint16

// EOF terminates every encoded stream. It never appears in decoded output.
const EOF Symbol = 256

// numSymbols is the full alphabet size: 256 byte values plus EOF.
const numSymbols = 257

// ErrNoSymbols reports a tree build with no leaves to merge.
var ErrNoSymbols = errors.New("huffman: empty frequency map")

// Node is one node of a prefix-code tree. Leaves carry a Symbol,
// internal nodes carry exactly two children; a Node is never
// half-internal. Freq is only meaningful on trees produced by Build;
// ReadTree leaves it zero.
type Node struct {
	Left  *Node
	Right *Node
	Freq  int
	Sym   Symbol
}

// Leaf reports whether n is a leaf.
func (n *Node) Leaf() bool { return n.Left == nil }

// heapNode pairs a node with its insertion sequence number. The
// sequence breaks frequency ties so that extraction order, and with it
// the final tree shape, is fully deterministic: leaves are numbered in
// ascending symbol order, merged nodes in creation order.
type heapNode struct {
	node *Node
	seq  int
}

type nodeHeap []heapNode

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].node.Freq != h[j].node.Freq {
		return h[i].node.Freq < h[j].node.Freq
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(heapNode)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Build constructs a prefix-code tree from a map of symbol frequencies.
// The EOF symbol is always inserted with frequency 1, whatever the map
// says, so an empty map yields a single EOF leaf. Two calls with equal
// maps produce identical trees, including for tied frequencies.
func Build(freqs map[Symbol]int) (*Node, error) {
	leaves := make([]*Node, 0, len(freqs)+1)
	for sym, freq := range freqs {
		if sym == EOF {
			continue
		}
		leaves = append(leaves, &Node{Sym: sym, Freq: freq})
	}
	leaves = append(leaves, &Node{Sym: EOF, Freq: 1})
	sort.Slice(leaves, func(i, j int) bool { return leaves[i].Sym < leaves[j].Sym })
	return build(leaves)
}

// build merges leaves, pre-sorted by symbol, into a single tree by
// repeatedly joining the two lowest-frequency nodes. The first node
// extracted becomes the left child.
func build(leaves []*Node) (*Node, error) {
	if len(leaves) == 0 {
		return nil, ErrNoSymbols
	}
	h := make(nodeHeap, len(leaves))
	for i, n := range leaves {
		h[i] = heapNode{node: n, seq: i}
	}
	heap.Init(&h)
	seq := len(leaves)
	for h.Len() > 1 {
		left := heap.Pop(&h).(heapNode).node
		right := heap.Pop(&h).(heapNode).node
		parent := &Node{Left: left, Right: right, Freq: left.Freq + right.Freq}
		heap.Push(&h, heapNode{node: parent, seq: seq})
		seq++
	}
	return h[0].node, nil
}
