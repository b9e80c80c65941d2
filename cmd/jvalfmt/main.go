// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jvalfmt reads JSON documents and prints them formatted.
//
// Usage:
//
//	jvalfmt [flags] [file ...]
//
// With no files, jvalfmt reads standard input. Input is delivered to the
// parser in fixed-size chunks (see -chunk).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/creachadair/jval"
	"github.com/creachadair/jval/jwcc"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var (
	doJWCC    = flag.Bool("jwcc", false, "Accept JWCC input (comments and trailing commas)")
	chunkSize = flag.Int("chunk", jval.ChunkSize, "Input chunk size in bytes")
	indent    = flag.String("indent", "\t", "Indentation per nesting level")
	compact   = flag.Bool("compact", false, "Print compact output without whitespace")
	maxDepth  = flag.Int("max-depth", jval.DefaultMaxDepth, "Maximum nesting depth")
	doTrace   = flag.Bool("trace", false, "Log parser state transitions")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file ...]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := newLogger(*doTrace)
	f := jval.Formatter{Indent: *indent, Compact: *compact}

	names := flag.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}
	var failed bool
	for _, name := range names {
		if err := formatFile(logger, f, name, os.Stdout); err != nil {
			level.Error(logger).Log("msg", "format failed", "file", name, "err", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func newLogger(debug bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	allow := level.AllowInfo()
	if debug {
		allow = level.AllowDebug()
	}
	return level.NewFilter(logger, allow)
}

// formatFile parses the named file ("-" for stdin) and writes its formatted
// value to w.
func formatFile(logger log.Logger, f jval.Formatter, name string, w io.Writer) error {
	var r io.Reader = os.Stdin
	if name != "-" {
		in, err := os.Open(name)
		if err != nil {
			return err
		}
		defer in.Close()
		r = in
	}

	v, err := parse(logger, r)
	if err != nil {
		return err
	}
	defer v.Release()
	level.Debug(logger).Log("msg", "parsed", "file", name, "type", v.Type())

	if err := f.Format(w, &v); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func parse(logger log.Logger, r io.Reader) (jval.Value, error) {
	var src jval.Source = jval.NewReaderSource(r, *chunkSize)
	if *doJWCC {
		jsrc, err := jwcc.NewSource(r, *chunkSize)
		if err != nil {
			return jval.Value{}, err
		}
		src = jsrc
	}

	p := jval.NewParser()
	p.SetMaxDepth(*maxDepth)
	if *doTrace {
		debug := level.Debug(logger)
		p.SetTrace(func(tr jval.Trace) {
			debug.Log("offset", tr.Offset, "char", fmt.Sprintf("%q", tr.Char),
				"from", tr.From, "to", tr.To, "depth", tr.Depth)
		})
	}
	return p.ParseFrom(src)
}
