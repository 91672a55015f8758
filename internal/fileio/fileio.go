// Package fileio opens and creates files that may be gzip compressed.
package fileio

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Open returns a reader over path, transparently decompressing gzip content.
// Compression is detected from the magic bytes rather than the file extension.
func Open(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	br := bufio.NewReader(fh)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gr, err := gzip.NewReader(br)
		if err != nil {
			fh.Close()
			return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		return readCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}

	return readCloser{Reader: br, closers: []io.Closer{fh}}, nil
}

// Create creates path for writing. Output to a path ending in ".gz" is gzip compressed.
// The returned writer is buffered; Close flushes it.
func Create(path string) (io.WriteCloser, error) {
	fh, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gw := gzip.NewWriter(fh)
		bw := bufio.NewWriterSize(gw, 1<<16)
		return &writeCloser{Writer: bw, flush: bw.Flush, closers: []io.Closer{gw, fh}}, nil
	}

	bw := bufio.NewWriterSize(fh, 1<<16)
	return &writeCloser{Writer: bw, flush: bw.Flush, closers: []io.Closer{fh}}, nil
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r readCloser) Close() (err error) {
	for _, c := range r.closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

type writeCloser struct {
	io.Writer
	flush   func() error
	closers []io.Closer
}

// Close flushes buffered data then closes the gzip stream (if any) and the file,
// returning the first error.
func (w *writeCloser) Close() error {
	err := w.flush()
	for _, c := range w.closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
