// Copyright (c) 2025, the fastgrin authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

import (
	"errors"
	"io"

	"github.com/icza/bitio"
)

// symbolBits is the fixed width of a serialized leaf value.
const symbolBits = 9

// maxDepth bounds the header recursion: a tree over the full
// 257-symbol alphabet is never deeper than 256 levels.
const maxDepth = numSymbols - 1

var (
	// ErrTruncated reports a bit stream that ended mid-tree.
	ErrTruncated = errors.New("huffman: truncated tree")
	// ErrCorrupt reports a serialized tree no Build output can produce.
	ErrCorrupt = errors.New("huffman: corrupt tree")
)

// WriteTree serializes the tree in preorder: a leaf is a 0 bit
// followed by its symbol in 9 bits, an internal node is a 1 bit
// followed by its left then right subtree. The shape self-terminates,
// so no node count is written.
func WriteTree(w *bitio.Writer, root *Node) error {
	if root.Leaf() {
		if err := w.WriteBool(false); err != nil {
			return err
		}
		return w.WriteBits(uint64(root.Sym), symbolBits)
	}
	if err := w.WriteBool(true); err != nil {
		return err
	}
	if err := WriteTree(w, root.Left); err != nil {
		return err
	}
	return WriteTree(w, root.Right)
}

// ReadTree rebuilds a tree from its preorder form. Frequencies are not
// part of the format and are left zero. Running out of bits mid-tree
// yields ErrTruncated; a descent deeper than any legal tree or a
// symbol outside the 9-bit alphabet yields ErrCorrupt.
func ReadTree(r *bitio.Reader) (*Node, error) {
	return readTree(r, 0)
}

func readTree(r *bitio.Reader, depth int) (*Node, error) {
	if depth > maxDepth {
		return nil, ErrCorrupt
	}
	internal, err := r.ReadBool()
	if err != nil {
		return nil, truncated(err)
	}
	if !internal {
		sym, err := r.ReadBits(symbolBits)
		if err != nil {
			return nil, truncated(err)
		}
		if sym > uint64(EOF) {
			return nil, ErrCorrupt
		}
		return &Node{Sym: Symbol(sym)}, nil
	}
	left, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readTree(r, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Left: left, Right: right}, nil
}

func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}
	return err
}
