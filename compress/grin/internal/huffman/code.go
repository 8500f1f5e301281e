// Copyright (c) 2025, the fastgrin authors.
// SPDX-License-Identifier: BSD-3-Clause

package huffman

// Code is one symbol's bit string: the low Len bits of Bits, most
// significant bit first, shaped to feed bitio.Writer.WriteBits.
type Code struct {
	Bits uint64
	Len  uint8
}

// Codes derives the code table for every leaf under root. Descending
// left appends a 0 bit, descending right a 1 bit. A lone leaf root
// gets a zero-length code; callers must treat such a stream as
// immediately at EOF.
func Codes(root *Node) map[Symbol]Code {
	codes := make(map[Symbol]Code)
	walk(root, Code{}, codes)
	return codes
}

func walk(n *Node, c Code, codes map[Symbol]Code) {
	if n.Leaf() {
		codes[n.Sym] = c
		return
	}
	walk(n.Left, Code{Bits: c.Bits << 1, Len: c.Len + 1}, codes)
	walk(n.Right, Code{Bits: c.Bits<<1 | 1, Len: c.Len + 1}, codes)
}
