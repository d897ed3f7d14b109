package strcat

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"tlog.app/go/errors"

	"nikand.dev/go/strcat/low"
)

var ErrUnsupported = errors.New("unsupported value")

// View returns string contents of v.
//
// Supported are string, []byte, Buf, *Buf, *strings.Builder, *bytes.Buffer,
// fmt.Stringer and error. String and Error methods are called exactly once.
// Numbers, nil pointers and other values are not converted, ok is false for them.
//
// Returned string may share memory with v.
func View(v any) (s string, ok bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case []byte:
		return low.UnsafeBytesToString(v), true
	case Buf:
		return v.String(), true
	case *Buf:
		if v == nil {
			return "", false
		}

		return v.String(), true
	case *strings.Builder:
		if v == nil {
			return "", false
		}

		return v.String(), true
	case *bytes.Buffer:
		if v == nil {
			return "", false
		}

		return low.UnsafeBytesToString(v.Bytes()), true
	case fmt.Stringer:
		return v.String(), true
	case error:
		return v.Error(), true
	}

	return "", false
}

// Any is Str for parts of different types.
// See View for supported types.
func Any(first any, rest ...any) (string, error) {
	b, err := AppendAny(nil, first, rest...)
	if err != nil {
		return "", err
	}

	return low.UnsafeBytesToString(b), nil
}

// AppendAny is Append for parts of different types.
//
// All the parts are viewed before dst is touched,
// so on error dst is returned as is.
func AppendAny(dst []byte, first any, rest ...any) ([]byte, error) {
	var stack [8]string

	views := stack[:0]
	if 1+len(rest) > len(stack) {
		views = make([]string, 0, 1+len(rest))
	}

	s, ok := View(first)
	if !ok {
		return dst, unsupported(0, first)
	}

	views = append(views, s)
	n := len(s)

	for i, v := range rest {
		s, ok = View(v)
		if !ok {
			return dst, unsupported(1+i, v)
		}

		views = append(views, s)
		n += len(s)
	}

	dst = slices.Grow(dst, n)

	for _, s := range views {
		dst = append(dst, s...)
	}

	return dst, nil
}

func unsupported(i int, v any) error {
	return errors.Wrap(ErrUnsupported, "part %d: %T", i, v)
}
