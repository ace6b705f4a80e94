package assertion

// Maybe holds a value that may be absent.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Some returns a present Maybe.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// None returns an absent Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.ok
}

// IsPresent reports whether a value is held.
func (m Maybe[T]) IsPresent() bool {
	return m.ok
}

// OrElse returns the value, or fallback when absent.
func (m Maybe[T]) OrElse(fallback T) T {
	if m.ok {
		return m.value
	}
	return fallback
}

// MapMaybe applies fn to a present value. fn is not called when m is absent.
func MapMaybe[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if !m.ok {
		return None[U]()
	}
	return Some(fn(m.value))
}
