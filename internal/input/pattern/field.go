package pattern

import "fmt"

// Field is an optional pattern field. The zero value is a wildcard.
type Field[T comparable] struct {
	value T
	set   bool
}

// Any returns a wildcard field.
func Any[T comparable]() Field[T] {
	return Field[T]{}
}

// Exactly returns a field that only admits v.
func Exactly[T comparable](v T) Field[T] {
	return Field[T]{value: v, set: true}
}

// Get returns the concrete value and true, or the zero value and false
// for a wildcard.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set
}

// IsAny returns true if the field is a wildcard.
func (f Field[T]) IsAny() bool {
	return !f.set
}

// Admits returns true if v satisfies the field.
func (f Field[T]) Admits(v T) bool {
	return !f.set || f.value == v
}

// Subsumes returns true if every value admitted by other is admitted by f.
func (f Field[T]) Subsumes(other Field[T]) bool {
	return !f.set || (other.set && f.value == other.value)
}

// String returns "*" for a wildcard and the value otherwise.
func (f Field[T]) String() string {
	if !f.set {
		return "*"
	}
	return fmt.Sprint(f.value)
}
