// Package encoder turns raw bytes into hex string literals suitable for
// embedding in source code, and parses such literals back.
package encoder

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

// Format controls how a byte sequence is rendered as a literal.
// The zero value produces bare lowercase digit pairs with no delimiters.
type Format struct {
	// Prefix and Suffix wrap the encoded digits, typically quote
	// characters matching the target language's string syntax.
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
	// Escaped renders each byte as \xNN instead of bare digit pairs.
	Escaped bool `yaml:"escaped"`
	// Wrap inserts a newline after every Wrap encoded bytes. 0 keeps
	// the whole literal on one line.
	Wrap int `yaml:"wrap"`
}

// Default returns the format used when nothing else is configured:
// lowercase digit pairs wrapped in double quotes.
func Default() Format {
	return Format{Prefix: `"`, Suffix: `"`}
}

// Encode renders data as a hex literal. Every input byte becomes two
// lowercase hex digits; empty input yields the bare delimiter pair.
func (f Format) Encode(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(f.Prefix) + len(f.Suffix) + len(data)*4)
	sb.WriteString(f.Prefix)
	for i, b := range data {
		if f.Wrap > 0 && i > 0 && i%f.Wrap == 0 {
			sb.WriteByte('\n')
		}
		if f.Escaped {
			sb.WriteString(`\x`)
		}
		sb.WriteString(hex.EncodeToString([]byte{b}))
	}
	sb.WriteString(f.Suffix)
	return sb.String()
}

// EncodeTo streams r through the encoder into w in one buffered pass.
// Returns the number of input bytes consumed.
func (f Format) EncodeTo(w io.Writer, r io.Reader) (int64, error) {
	bw := bufio.NewWriter(w)
	bw.WriteString(f.Prefix)

	br := bufio.NewReader(r)
	var n int64
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return n, fmt.Errorf("reading input: %w", err)
		}
		if f.Wrap > 0 && n > 0 && n%int64(f.Wrap) == 0 {
			bw.WriteByte('\n')
		}
		if f.Escaped {
			bw.WriteString(`\x`)
		}
		fmt.Fprintf(bw, "%02x", b)
		n++
	}

	bw.WriteString(f.Suffix)
	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("writing output: %w", err)
	}
	return n, nil
}

// Decode parses a hex literal back to raw bytes. It tolerates quote
// delimiters, \x escape markers, whitespace, and uppercase digits, so it
// accepts the output of any Format using quote-style delimiters.
func Decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return decodeDigits(s)
}

// Decode parses a literal produced with this format, stripping its
// exact prefix and suffix before decoding. Use the package-level Decode
// for quote-delimited literals of unknown provenance.
func (f Format) Decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, f.Prefix)
	s = strings.TrimSuffix(s, f.Suffix)
	return decodeDigits(s)
}

var stripper = strings.NewReplacer(`\x`, "", " ", "", "\t", "", "\n", "", "\r", "")

func decodeDigits(s string) ([]byte, error) {
	data, err := hex.DecodeString(stripper.Replace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid hex literal: %w", err)
	}
	return data, nil
}
