// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

// ChunkSize is the default size in bytes of the chunks read by a
// ReaderSource.
const ChunkSize = 8192

// A Source delivers input to a parser in chunks.
type Source interface {
	// Next returns the next chunk of input. At the end of input, Next returns
	// either an empty chunk and a nil error, or io.EOF. The returned chunk is
	// only valid until the next call of Next.
	Next() ([]byte, error)
}

// A ReaderSource is a Source that reads fixed-size chunks from an io.Reader.
type ReaderSource struct {
	r   io.Reader
	buf []byte
}

// NewReaderSource constructs a ReaderSource that reads chunks of up to size
// bytes from r. If size <= 0, ChunkSize is used.
func NewReaderSource(r io.Reader, size int) *ReaderSource {
	if size <= 0 {
		size = ChunkSize
	}
	return &ReaderSource{r: r, buf: make([]byte, size)}
}

// Next implements the Source interface. Each chunk except possibly the last
// is filled to the full chunk size.
func (s *ReaderSource) Next() ([]byte, error) {
	n, err := io.ReadFull(s.r, s.buf)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = nil // short final chunk
	}
	return s.buf[:n], err
}

// Parse parses a complete value from the chunks delivered by src, using a
// parser with default settings.
func Parse(src Source) (Value, error) { return NewParser().ParseFrom(src) }

// ParseFrom digests the chunks delivered by src until the end of input, and
// then finishes p. If src reports an error other than io.EOF, p is discarded
// and that error is returned.
func (p *Parser) ParseFrom(src Source) (Value, error) {
	for {
		chunk, err := src.Next()
		if len(chunk) != 0 {
			if derr := p.Digest(chunk); derr != nil {
				return Value{}, derr
			}
		}
		if err == io.EOF || (err == nil && len(chunk) == 0) {
			return p.Finish()
		} else if err != nil {
			p.Discard()
			return Value{}, err
		}
	}
}

// ParseReader parses a complete value from r, reading ChunkSize bytes at a
// time.
func ParseReader(r io.Reader) (Value, error) { return Parse(NewReaderSource(r, ChunkSize)) }

// ParseBytes parses a complete value from data.
func ParseBytes(data []byte) (Value, error) {
	return ParseReader(bytes.NewReader(data))
}

// ParseString parses a complete value from s.
func ParseString(s string) (Value, error) {
	return ParseReader(strings.NewReader(s))
}
