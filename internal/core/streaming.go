package core

// streaming.go wraps the input reader before CSV decoding:
//
//   - CountingReader: Tracks raw bytes read for the run summary
//   - BOM stripping: Removes a UTF-8 BOM (0xEF 0xBB 0xBF) from Windows files
//     so it cannot hide the first column name
//
// Every other byte reaches the CSV decoder unchanged, so cells in legacy
// encodings (Latin-1, CP1252) are written back exactly as read.
//
// Use WrapInput to apply both in the correct order.

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// bomSkippingReader drops a UTF-8 BOM at the very start of the stream.
type bomSkippingReader struct {
	br      *bufio.Reader
	checked bool
}

// NewBOMSkippingReader returns a reader that drops a leading UTF-8 BOM.
// The check happens on the first Read; nothing else is altered.
func NewBOMSkippingReader(r io.Reader) io.Reader {
	return &bomSkippingReader{br: bufio.NewReader(r)}
}

// Read implements io.Reader.
func (r *bomSkippingReader) Read(p []byte) (int, error) {
	if !r.checked {
		r.checked = true

		head, err := r.br.Peek(len(utf8BOM))
		if bytes.Equal(head, utf8BOM) {
			_, _ = r.br.Discard(len(utf8BOM))
		} else if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
	}
	return r.br.Read(p)
}

// WrapInput wraps a reader with byte counting and BOM skipping.
//
// The order matters:
// 1. Counting sees the raw file bytes
// 2. BOM stripping happens on top, before the CSV decoder
func WrapInput(r io.Reader) (io.Reader, *CountingReader) {
	counter := NewCountingReader(r)
	return NewBOMSkippingReader(counter), counter
}
