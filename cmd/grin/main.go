// Copyright (c) 2025, the fastgrin authors.
// SPDX-License-Identifier: BSD-3-Clause

// Command grin compresses and decompresses files using the grin format.
//
// Usage:
//
//	grin encode <infile> <outfile>
//	grin decode <infile> <outfile>
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/grintools/fastgrin/compress/grin"
)

func usage() {
	fmt.Println("usage: grin <encode|decode> <infile> <outfile>")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("grin: ")
	if len(os.Args) != 4 {
		usage()
		return
	}
	var err error
	switch os.Args[1] {
	case "encode":
		err = encodeFile(os.Args[2], os.Args[3])
	case "decode":
		err = decodeFile(os.Args[2], os.Args[3])
	default:
		usage()
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}

func encodeFile(infile, outfile string) (err error) {
	data, err := os.ReadFile(infile)
	if err != nil {
		return errors.Wrap(err, "read input")
	}
	out, err := os.Create(outfile)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = errors.Wrap(cerr, "close output")
		}
	}()
	w := grin.NewWriter(out)
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, "encode")
	}
	return errors.Wrap(w.Close(), "encode")
}

func decodeFile(infile, outfile string) (err error) {
	in, err := os.Open(infile)
	if err != nil {
		return errors.Wrap(err, "open input")
	}
	defer in.Close()
	// The header is validated before the output file is created, so a
	// stream with a bad magic number leaves no file behind.
	r, err := grin.NewReader(in)
	if err != nil {
		return errors.Wrap(err, "decode")
	}
	out, err := os.Create(outfile)
	if err != nil {
		return errors.Wrap(err, "create output")
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = errors.Wrap(cerr, "close output")
		}
	}()
	if _, err := io.Copy(out, r); err != nil {
		return errors.Wrap(err, "decode")
	}
	return nil
}
