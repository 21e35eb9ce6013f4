// Package patch merges partial updates where a nil pointer means "unchanged".
package patch

// Value returns *next when set, otherwise current.
func Value[T any](next *T, current T) T {
	if next != nil {
		return *next
	}
	return current
}

// Ptr returns next when set, otherwise current. Used for nullable columns.
func Ptr[T any](next, current *T) *T {
	if next != nil {
		return next
	}
	return current
}
