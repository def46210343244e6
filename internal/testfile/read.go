package testfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/klauspost/compress/gzip"
)

const bufSize = 4 << 20 // 4 MiB

// File is a parsed test: the pattern and the words of every text line.
type File struct {
	Pattern []uint32
	Lines   [][]uint32
}

// Text concatenates all lines.
func (f *File) Text() []uint32 {
	n := 0
	for _, l := range f.Lines {
		n += len(l)
	}
	out := make([]uint32, 0, n)
	for _, l := range f.Lines {
		out = append(out, l...)
	}
	return out
}

// LinePositions returns the absolute offset every line starts at.
func (f *File) LinePositions() []int {
	out := make([]int, len(f.Lines))
	off := 0
	for i, l := range f.Lines {
		out[i] = off
		off += len(l)
	}
	return out
}

// Open returns the plain contents of a test file, inflating gzip files. The
// caller closes the returned reader.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	br := bufio.NewReader(f)
	if !isGzip(br) {
		return readCloser{Reader: br, closers: []io.Closer{f}}, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		f.Close()
		return nil, err
	}
	return readCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc readCloser) Close() error {
	var first error
	for _, c := range rc.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func isGzip(r *bufio.Reader) bool {
	magic, err := r.Peek(2)
	return err == nil && magic[0] == 0x1f && magic[1] == 0x8b
}

// ReadFile parses `path`; "-" reads stdin. Gzip input is detected by its
// magic bytes, not by the file name.
func ReadFile(path string) (*File, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Read(rc)
}

// Read parses a test. A missing pattern line yields an empty pattern, the
// way the matcher treats it.
func Read(in io.Reader) (*File, error) {
	r := bufio.NewReaderSize(in, bufSize)
	if isGzip(r) {
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = bufio.NewReaderSize(zr, bufSize)
	}

	out := &File{}
	first := true
	for n := 1; ; n++ {
		line, err := r.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if err == io.EOF && len(line) == 0 {
			return out, nil
		}
		line = bytes.TrimRight(line, "\r\n")

		words, perr := parseWords(line)
		if perr != nil {
			return nil, fmt.Errorf("line %d: %w", n, perr)
		}
		if first {
			out.Pattern = words
			first = false
		} else {
			out.Lines = append(out.Lines, words)
		}
		if err == io.EOF {
			return out, nil
		}
	}
}

func parseWords(line []byte) ([]uint32, error) {
	fields := bytes.Fields(line)
	out := make([]uint32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(string(f), 10, 32)
		if err != nil {
			return nil, err
		}
		out = append(out, uint32(v))
	}
	return out, nil
}
