// Package strcat concatenates string-like values into a single buffer.
//
// Every function takes at least one part (first, rest...),
// so a call without parts does not compile.
// Parts are measured first, then the destination grows once
// and parts are appended in order.
// Existing destination content is never modified, only extended.
//
// There are variants for strings, byte slices, filesystem paths
// and OS strings.
package strcat

import (
	"slices"
	"strings"

	"nikand.dev/go/strcat/low"
)

type (
	// Text is anything viewable as a run of bytes without conversion.
	Text interface {
		~string | ~[]byte
	}
)

// Str returns the concatenation of all parts.
// The result is allocated once.
func Str[S Text](first S, rest ...S) string {
	n := size(first, rest)
	if n == 0 {
		return ""
	}

	b := make([]byte, 0, n)
	b = appendParts(b, first, rest)

	return low.UnsafeBytesToString(b)
}

// AppendStr extends b with all parts and returns b.
// b grows at most once.
//
// Call b.Grow before to get a buffer with some minimal capacity.
func AppendStr[S Text](b *strings.Builder, first S, rest ...S) *strings.Builder {
	b.Grow(size(first, rest))

	b.WriteString(low.View(first))

	for _, s := range rest {
		b.WriteString(low.View(s))
	}

	return b
}

// Bytes returns the concatenation of all parts as a new byte slice.
func Bytes[S Text](first S, rest ...S) []byte {
	n := size(first, rest)

	b := make([]byte, 0, n)

	return appendParts(b, first, rest)
}

// Append extends dst with all parts.
// dst is reallocated at most once, and only if its spare capacity is not enough.
func Append[D ~[]byte, S Text](dst D, first S, rest ...S) D {
	dst = slices.Grow(dst, size(first, rest))

	return appendParts(dst, first, rest)
}

func size[S Text](first S, rest []S) (n int) {
	n = len(first)

	for _, s := range rest {
		n += len(s)
	}

	return n
}

func appendParts[D ~[]byte, S Text](b D, first S, rest []S) D {
	b = append(b, first...)

	for _, s := range rest {
		b = append(b, s...)
	}

	return b
}
