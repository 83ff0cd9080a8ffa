// Package nistkat parses NIST CAVP-style response files, the "Len = /
// Msg = / MD = " triples used to distribute known-answer test vectors for
// SHA-3 and the SHA-2 family.
package nistkat

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strconv"
)

// Vector is one known-answer entry: an input of Bitlen bits (Msg holds the
// bytes, zero-padded up to a whole byte when Bitlen is not a multiple of 8)
// and its expected digest.
type Vector struct {
	Bitlen uint64
	Msg    []byte
	MD     []byte
}

var lineRe = regexp.MustCompile(`^(Len|Msg|MD)\s*=\s*([0-9A-Fa-f]+)\s*$`)

// Parse reads a NIST response file and returns its known-answer vectors.
// Each vector is introduced by a "Len = " line followed by "Msg = " and
// "MD = " lines, in that order; blank lines, "#" comments, and "[...]"
// section headers are ignored.
func Parse(r io.Reader) ([]Vector, error) {
	var vectors []Vector
	var cur Vector
	have := 0 // bits of the current vector seen so far: Len=1, +Msg=2, +MD=3

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := lineRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		key, val := m[1], m[2]
		switch key {
		case "Len":
			if have == 3 {
				vectors = append(vectors, cur)
			}
			cur = Vector{}
			n, err := strconv.ParseUint(val, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("nistkat: bad Len %q: %w", val, err)
			}
			cur.Bitlen = n
			have = 1
		case "Msg":
			if have != 1 {
				return nil, fmt.Errorf("nistkat: Msg without preceding Len")
			}
			b, err := hex.DecodeString(val)
			if err != nil {
				return nil, fmt.Errorf("nistkat: bad Msg %q: %w", val, err)
			}
			cur.Msg = b
			have = 2
		case "MD":
			if have != 2 {
				return nil, fmt.Errorf("nistkat: MD without preceding Msg")
			}
			b, err := hex.DecodeString(val)
			if err != nil {
				return nil, fmt.Errorf("nistkat: bad MD %q: %w", val, err)
			}
			cur.MD = b
			have = 3
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if have == 3 {
		vectors = append(vectors, cur)
	}
	return vectors, nil
}
