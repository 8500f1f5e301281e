// Copyright (c) 2025, the fastgrin authors.
// SPDX-License-Identifier: BSD-3-Clause

package grin

import (
	"io"

	"github.com/icza/bitio"

	"github.com/grintools/fastgrin/compress/grin/internal/huffman"
)

// Writer compresses a stream into the grin format. Static Huffman
// coding needs the complete symbol frequencies before the first output
// bit, so Write only accumulates; the whole file is emitted on Close.
type Writer struct {
	w   io.Writer
	buf []byte
	err error
}

// NewWriter returns a Writer compressing into w. The caller must call
// Close to produce any output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Reset discards the Writer's state and makes it write a new grin
// stream to under.
func (w *Writer) Reset(under io.Writer) {
	w.w = under
	w.buf = w.buf[:0]
	w.err = nil
}

// Write accumulates p for compression on Close.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if w.w == nil {
		return 0, io.ErrClosedPipe
	}
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// Close derives the code tree from everything written, emits the magic
// number, the serialized tree and the encoded payload terminated by
// the EOF code, and flushes the final partial byte zero-padded. It
// does not close the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.w == nil {
		return nil
	}
	if err := w.encode(); err != nil {
		w.err = err
		return err
	}
	w.w = nil
	return nil
}

func (w *Writer) encode() error {
	freqs := make(map[huffman.Symbol]int)
	for _, b := range w.buf {
		freqs[huffman.Symbol(b)]++
	}
	root, err := huffman.Build(freqs)
	if err != nil {
		return err
	}
	codes := huffman.Codes(root)

	bw := bitio.NewWriter(w.w)
	if err := bw.WriteBits(magicNumber, 32); err != nil {
		return err
	}
	if err := huffman.WriteTree(bw, root); err != nil {
		return err
	}
	for _, b := range w.buf {
		c := codes[huffman.Symbol(b)]
		if err := bw.WriteBits(c.Bits, c.Len); err != nil {
			return err
		}
	}
	// The EOF code ends the payload. On an empty input the tree is a
	// lone EOF leaf and the code is zero bits long.
	c := codes[huffman.EOF]
	if err := bw.WriteBits(c.Bits, c.Len); err != nil {
		return err
	}
	return bw.Close()
}
