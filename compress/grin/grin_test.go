// Copyright (c) 2025, the fastgrin authors.
// SPDX-License-Identifier: BSD-3-Clause

package grin

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"
)

func encode(t testing.TB, src []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if _, err := w.Write(src); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func decode(t testing.TB, enc []byte) []byte {
	t.Helper()
	r, err := NewReader(bytes.NewReader(enc))
	if err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func randBytes(t testing.TB, n int) []byte {
	t.Helper()
	data := make([]byte, n)
	if _, err := rand.Read(data); err != nil {
		t.Fatal(err)
	}
	return data
}

func TestRoundTrip(t *testing.T) {
	allValues := make([]byte, 256)
	for i := range allValues {
		allValues[i] = byte(i)
	}
	inputs := [][]byte{
		nil,
		{0x00},
		[]byte("AAAA"),
		[]byte("hello, huffman"),
		bytes.Repeat([]byte{0xff}, 4096),
		allValues,
		bytes.Repeat(allValues, 64),
		randBytes(t, 64*1024),
	}
	for _, src := range inputs {
		data := decode(t, encode(t, src))
		if !bytes.Equal(data, src) {
			t.Fatalf("round trip mismatch: src_len:%d,out_len:%d", len(src), len(data))
		}
	}
}

func TestEmptyInput(t *testing.T) {
	// Magic (32 bits) plus the lone EOF leaf (10 bits) and a
	// zero-length EOF code pad out to exactly 6 bytes.
	enc := encode(t, nil)
	if len(enc) != 6 {
		t.Fatalf("expected 6 encoded bytes, got %d", len(enc))
	}
	if data := decode(t, enc); len(data) != 0 {
		t.Fatalf("expected empty output, got %d bytes", len(data))
	}
}

func TestSingleRepeatedByte(t *testing.T) {
	// {65:4} yields a two-leaf tree: 4 one-bit codes plus the EOF
	// code, 5 payload bits in one byte after the 7-byte header.
	enc := encode(t, []byte("AAAA"))
	if len(enc) != 8 {
		t.Fatalf("expected 8 encoded bytes, got %d", len(enc))
	}
	if data := decode(t, enc); string(data) != "AAAA" {
		t.Fatalf("expected AAAA, got %q", data)
	}
}

func TestDeterministic(t *testing.T) {
	// Every symbol ties at frequency 2; the output must still be
	// byte-identical across runs.
	src := []byte("ABCDABCD")
	first := encode(t, src)
	for i := 0; i < 10; i++ {
		if next := encode(t, src); !bytes.Equal(first, next) {
			t.Fatal("encoded output differs between runs")
		}
	}
}

func TestBadMagic(t *testing.T) {
	enc := encode(t, []byte("payload"))
	enc[3] ^= 0x01
	if _, err := NewReader(bytes.NewReader(enc)); err != ErrHeader {
		t.Fatalf("expected ErrHeader, got %v", err)
	}
	if _, err := NewReader(bytes.NewReader(nil)); err != ErrHeader {
		t.Fatalf("expected ErrHeader on empty stream, got %v", err)
	}
}

func TestTruncatedHeader(t *testing.T) {
	enc := encode(t, []byte("AAAA"))
	if _, err := NewReader(bytes.NewReader(enc[:5])); err != ErrTruncatedHeader {
		t.Fatalf("expected ErrTruncatedHeader, got %v", err)
	}
}

func TestTruncatedPayload(t *testing.T) {
	// Losing payload bytes is not an error: decoding stops when the
	// bits run out and yields a prefix of the original data.
	src := randBytes(t, 8*1024)
	enc := encode(t, src)
	data := decode(t, enc[:len(enc)-16])
	if len(data) >= len(src) {
		t.Fatalf("expected a shortened output, got %d of %d bytes", len(data), len(src))
	}
	if !bytes.Equal(data, src[:len(data)]) {
		t.Fatal("truncated decode is not a prefix of the source")
	}
}

func TestWriterReset(t *testing.T) {
	var first, second bytes.Buffer
	w := NewWriter(&first)
	w.Write([]byte("one"))
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	w.Reset(&second)
	w.Write([]byte("two"))
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if got := decode(t, second.Bytes()); string(got) != "two" {
		t.Fatalf("expected two, got %q", got)
	}
}

func TestReaderReset(t *testing.T) {
	r, err := NewReader(bytes.NewReader(encode(t, []byte("one"))))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := io.ReadAll(r); err != nil {
		t.Fatal(err)
	}
	if err := r.Reset(bytes.NewReader(encode(t, []byte("two")))); err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "two" {
		t.Fatalf("expected two, got %q", data)
	}
}

func TestWriteAfterClose(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("late")); err == nil {
		t.Fatal("expected an error writing after Close")
	}
}

func TestReadAfterClose(t *testing.T) {
	r, err := NewReader(bytes.NewReader(encode(t, []byte("data"))))
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Read(make([]byte, 1)); err == nil {
		t.Fatal("expected an error reading after Close")
	}
}

func benchData(n int) []byte {
	text := []byte("the quick brown fox jumps over the lazy dog. ")
	return bytes.Repeat(text, n/len(text)+1)[:n]
}

func BenchmarkWriter(b *testing.B) {
	src := benchData(1 << 20)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := NewWriter(io.Discard)
		w.Write(src)
		if err := w.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReader(b *testing.B) {
	enc := encode(b, benchData(1<<20))
	b.SetBytes(1 << 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := NewReader(bytes.NewReader(enc))
		if err != nil {
			b.Fatal(err)
		}
		if _, err := io.Copy(io.Discard, r); err != nil {
			b.Fatal(err)
		}
	}
}
