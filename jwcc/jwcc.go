// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package jwcc parses JSON With Commas and Comments (JWCC) as defined by
// https://nigeltao.github.io/blog/2021/json-with-commas-comments.html
//
// The input is reduced to standard JSON and then parsed incrementally by a
// jval.Parser, so the result is an ordinary jval.Value with comments
// discarded.
package jwcc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/creachadair/jval"
	"github.com/tailscale/hujson"
)

// Parse reads the complete contents of r as a JWCC document and returns the
// value it contains.
func Parse(r io.Reader) (jval.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return jval.Value{}, err
	}
	return ParseBytes(data, jval.ChunkSize)
}

// ParseBytes parses data as a JWCC document, delivering the standardized
// text to the parser in chunks of the given size. If size <= 0, the whole
// input is delivered as a single chunk. The contents of data are modified.
func ParseBytes(data []byte, size int) (jval.Value, error) {
	src, err := SourceBytes(data, size)
	if err != nil {
		return jval.Value{}, err
	}
	return jval.Parse(src)
}

// NewSource reads the complete contents of r as a JWCC document and returns a
// jval.Source that delivers the standardized text in chunks of the given
// size, for use with a configured parser:
//
//	src, err := jwcc.NewSource(r, 0)
//	...
//	v, err := p.ParseFrom(src)
//
// If size <= 0, the whole input is delivered as a single chunk.
func NewSource(r io.Reader, size int) (jval.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return SourceBytes(data, size)
}

// SourceBytes is as NewSource, but reads the document from data. The
// contents of data are modified.
func SourceBytes(data []byte, size int) (jval.Source, error) {
	std, err := Standardize(data)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = max(len(std), 1)
	}
	return jval.NewReaderSource(bytes.NewReader(std), size), nil
}

// Standardize converts a JWCC document in data to standard JSON, replacing
// comments with whitespace and removing trailing commas. The contents of
// data are modified.
func Standardize(data []byte) ([]byte, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JWCC: %w", err)
	}
	return std, nil
}
