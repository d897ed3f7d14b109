package strcat

import (
	"os"
	"path/filepath"
	"slices"

	"nikand.dev/go/strcat/low"
)

// Path joins path segments with filepath.Separator.
//
// Separator is added only between a non-empty prefix
// not ending with a separator and a segment not starting with one.
// Empty segments are skipped. The result is not cleaned,
// so for clean relative segments Path is the same as filepath.Join.
func Path[S Text](first S, rest ...S) string {
	b := AppendPath([]byte(nil), first, rest...)

	return low.UnsafeBytesToString(b)
}

// AppendPath extends dst as if it was a path prefix.
// Absolute segments do not reset the prefix, they are appended as any other one.
func AppendPath[D ~[]byte, S Text](dst D, first S, rest ...S) D {
	// segments plus a separator before each of them at most
	n := size(first, rest) + len(rest) + 1

	dst = slices.Grow(dst, n)

	dst = pushPath(dst, low.View(first))

	for _, s := range rest {
		dst = pushPath(dst, low.View(s))
	}

	return dst
}

func pushPath[D ~[]byte](b D, seg string) D {
	if seg == "" {
		return b
	}

	if l := len(b); l != 0 && !os.IsPathSeparator(b[l-1]) && !os.IsPathSeparator(seg[0]) {
		b = append(b, filepath.Separator)
	}

	return append(b, seg...)
}
