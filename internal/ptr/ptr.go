// Package ptr provides helpers for optional (pointer) fields.
package ptr

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}
