package converter

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// resultPrefix marks a measurement line; everything else in the log is noise.
const resultPrefix = "RESULT\t"

// maxLineSize is the largest input line the scanner accepts.
const maxLineSize = 1024 * 1024

// Field is one key=value token of a RESULT line, in line order.
type Field struct {
	Key   string
	Value string
}

// ParseLine reports whether line is a RESULT record and, if so, returns its
// fields. A line qualifies only if it starts with the literal "RESULT" followed
// by a tab. Tokens split at the first '=' only, so values may contain further
// '=' characters. Tokens without '=' are dropped.
func ParseLine(line string) ([]Field, bool) {
	if !strings.HasPrefix(line, resultPrefix) {
		return nil, false
	}
	line = strings.TrimRightFunc(line, unicode.IsSpace)

	tokens := strings.Split(line, "\t")[1:]
	fields := make([]Field, 0, len(tokens))
	for _, token := range tokens {
		key, value, ok := strings.Cut(token, "=")
		if !ok {
			continue
		}
		fields = append(fields, Field{Key: key, Value: value})
	}
	return fields, true
}

// ResultReader scans a log stream line by line and yields the fields of each
// RESULT line, skipping everything else.
type ResultReader struct {
	scanner *bufio.Scanner
	lines   int
}

// NewResultReader creates a reader over an arbitrary log stream.
func NewResultReader(r io.Reader) *ResultReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	return &ResultReader{scanner: scanner}
}

// ReadFields returns the fields of the next RESULT line. It returns io.EOF at
// the end of the stream.
func (r *ResultReader) ReadFields() ([]Field, error) {
	for r.scanner.Scan() {
		r.lines++
		fields, ok := ParseLine(r.scanner.Text())
		if !ok {
			continue
		}
		return fields, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %w", err)
	}
	return nil, io.EOF
}

// LinesScanned returns the total number of lines consumed so far.
func (r *ResultReader) LinesScanned() int {
	return r.lines
}
