package strcat

// OSString returns the concatenation of all parts
// in the form the os package takes file names, arguments and environment.
//
// Go represents operating system strings as byte strings on every platform
// and converts them at the syscall boundary, so parts are appended as is.
// No encoding conversion is done and invalid UTF-8 is kept.
func OSString[S Text](first S, rest ...S) string {
	return Str(first, rest...)
}

// AppendOSString extends dst with all parts as OSString does.
// dst grows at most once.
func AppendOSString[D ~[]byte, S Text](dst D, first S, rest ...S) D {
	return Append(dst, first, rest...)
}
