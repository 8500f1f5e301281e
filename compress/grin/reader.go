// Copyright (c) 2025, the fastgrin authors.
// SPDX-License-Identifier: BSD-3-Clause

package grin

import (
	"io"

	"github.com/icza/bitio"

	"github.com/grintools/fastgrin/compress/grin/internal/huffman"
)

// Reader decompresses a grin stream. NewReader consumes and validates
// the magic number and the tree header; Read then decodes the payload
// by root-to-leaf descent, one leaf per output byte.
//
// Running out of payload bits is treated as a normal end of stream, so
// the zero padding of the final byte is tolerated even when the stream
// was cut before the EOF code.
type Reader struct {
	br   *bitio.Reader
	root *huffman.Node
	err  error
}

// NewReader returns a Reader decompressing from r. It fails with
// ErrHeader if the stream does not begin with the grin magic number,
// and with ErrTruncatedHeader or ErrCorrupt if the tree header cannot
// be rebuilt.
func NewReader(r io.Reader) (*Reader, error) {
	gr := &Reader{}
	if err := gr.Reset(r); err != nil {
		return nil, err
	}
	return gr, nil
}

// Reset discards the Reader's state and makes it read a new grin
// stream from under. A failed Reset leaves the Reader unusable until
// the next successful one.
func (r *Reader) Reset(under io.Reader) error {
	root, br, err := readHeader(under)
	r.br = br
	r.root = root
	r.err = err
	return err
}

func readHeader(under io.Reader) (*huffman.Node, *bitio.Reader, error) {
	br := bitio.NewReader(under)
	magic, err := br.ReadBits(32)
	if err != nil || magic != magicNumber {
		return nil, nil, ErrHeader
	}
	root, err := huffman.ReadTree(br)
	if err != nil {
		switch err {
		case huffman.ErrTruncated:
			err = ErrTruncatedHeader
		case huffman.ErrCorrupt:
			err = ErrCorrupt
		}
		return nil, nil, err
	}
	// A leaf root must be the EOF leaf, or decoding would emit its
	// byte forever without consuming a single bit.
	if root.Leaf() && root.Sym != huffman.EOF {
		return nil, nil, ErrCorrupt
	}
	return root, br, nil
}

func (r *Reader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}
	for n < len(p) {
		b, err := r.decodeByte()
		if err != nil {
			r.err = err
			if err == io.EOF && n > 0 {
				return n, nil
			}
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

// decodeByte walks the tree one bit at a time until it lands on a
// leaf. The EOF leaf ends the stream without emitting anything, as
// does running out of bits; a lone-leaf tree is at EOF before reading
// any bit at all.
func (r *Reader) decodeByte() (byte, error) {
	cur := r.root
	for !cur.Leaf() {
		right, err := r.br.ReadBool()
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, io.EOF
			}
			return 0, err
		}
		if right {
			cur = cur.Right
		} else {
			cur = cur.Left
		}
	}
	if cur.Sym == huffman.EOF {
		return 0, io.EOF
	}
	return byte(cur.Sym), nil
}

// Close makes future reads fail. It does not close the underlying
// reader.
func (r *Reader) Close() error {
	if r.err == nil {
		r.err = io.ErrClosedPipe
	}
	return nil
}
