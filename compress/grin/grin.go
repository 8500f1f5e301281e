// Copyright (c) 2025, the fastgrin authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package grin implements the grin compressed file format: a 32-bit
// magic number, a bit-packed preorder encoding of a static Huffman
// tree, and the Huffman-coded payload terminated by the code of a
// 9-bit end-of-stream symbol. Trailing bits of the final byte are
// zero padding.
package grin

import "errors"

// magicNumber opens every grin file, written MSB-first in 32 bits.
const magicNumber = 0x736

var (
	// ErrHeader reports a stream that does not start with the grin
	// magic number.
	ErrHeader = errors.New("grin: invalid magic number")
	// ErrTruncatedHeader reports a stream that ended inside the
	// serialized code tree.
	ErrTruncatedHeader = errors.New("grin: truncated tree header")
	// ErrCorrupt reports a tree header that no encoder can produce.
	ErrCorrupt = errors.New("grin: corrupt tree header")
)
