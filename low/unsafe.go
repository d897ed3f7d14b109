package low

import "unsafe"

// View returns string contents of s without copying.
// It works for both strings and byte slices
// as slice header starts with the same pointer and length as string header.
func View[S ~string | ~[]byte](s S) string {
	return *(*string)(unsafe.Pointer(&s))
}

func UnsafeBytesToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// Data returns the backing array address.
// Two slices with the same Data share storage.
func Data[E any](s []E) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(s))
}

// StringData is Data for strings.
func StringData(s string) unsafe.Pointer {
	return unsafe.Pointer(unsafe.StringData(s))
}
