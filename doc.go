// Copyright (c) 2025, the fastgrin authors.
// SPDX-License-Identifier: BSD-3-Clause

// Package fastgrin provides the grin compression format for Go
// applications. The compress/grin package offers Writer and Reader
// types for the format itself, and cmd/grin is a small command-line
// driver around them.
package fastgrin
