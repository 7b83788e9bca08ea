package header

import (
	"bytes"
	"fmt"
)

var ErrMissingColon = fmt.Errorf("invalid header line: missing colon")

// ParseLine splits a "Name: value" line, trimming surrounding whitespace.
func ParseLine(line []byte) (key, value string, err error) {
	colonIdx := bytes.IndexByte(line, ':')
	if colonIdx == -1 {
		return "", "", ErrMissingColon
	}
	k := bytes.TrimSpace(line[:colonIdx])
	if len(k) == 0 {
		return "", "", fmt.Errorf("invalid header line: empty name")
	}
	return string(k), string(bytes.TrimSpace(line[colonIdx+1:])), nil
}

// ParseBlock reads "Name: value" lines separated by CRLF or LF into a Map,
// stopping at the first empty line. Values may contain commas and colons.
func ParseBlock(block []byte) (*Map, error) {
	m := NewMap()
	remaining := block
	for n := 1; len(remaining) > 0; n++ {
		lineEnd := bytes.IndexByte(remaining, '\n')
		if lineEnd == -1 {
			lineEnd = len(remaining)
		}

		line := bytes.TrimRight(remaining[:lineEnd], "\r")
		if len(line) == 0 {
			break
		}

		key, value, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		m.Insert(key, value)

		if lineEnd == len(remaining) {
			break
		}
		remaining = remaining[lineEnd+1:]
	}
	return m, nil
}
