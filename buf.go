package strcat

import (
	"slices"

	"nikand.dev/go/strcat/low"
)

type (
	// Buf is a reusable text buffer.
	// Reset keeps the allocation, so a Buf used in a loop stops allocating
	// once it has grown to the size of the biggest result.
	Buf []byte
)

// Reset empties the buffer keeping its allocation.
func (w *Buf) Reset() {
	*w = (*w)[:0]
}

// Grow makes room for n more bytes.
func (w *Buf) Grow(n int) {
	*w = slices.Grow(*w, n)
}

// Cat appends all parts to the buffer growing it at most once.
func (w *Buf) Cat(first string, rest ...string) *Buf {
	*w = Append(*w, first, rest...)

	return w
}

// Write implements io.Writer. It never fails.
func (w *Buf) Write(p []byte) (int, error) {
	*w = append(*w, p...)

	return len(p), nil
}

// WriteString implements io.StringWriter. It never fails.
func (w *Buf) WriteString(s string) (int, error) {
	*w = append(*w, s...)

	return len(s), nil
}

// Len returns the content length.
func (w Buf) Len() int { return len(w) }

// Cap returns the buffer capacity.
func (w Buf) Cap() int { return cap(w) }

// Bytes returns the content. It shares memory with the buffer.
func (w Buf) Bytes() []byte { return w }

// String returns buffer content without copying.
// It's valid until the next Reset.
func (w Buf) String() string {
	return low.UnsafeBytesToString(w)
}
