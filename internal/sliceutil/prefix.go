// Package sliceutil holds generic helpers for slices
// that the standard slices package lacks.
package sliceutil

// CommonPrefixLen reports the length of the longest prefix
// shared by the two slices.
func CommonPrefixLen[T comparable](a, b []T) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
