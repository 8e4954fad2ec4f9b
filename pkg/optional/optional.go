package optional

// Package optional provides a presence-tagged container with inline
// storage. It is the interop type the view package binds against: the
// held slot is addressable for the whole life of the Option, so a view
// may alias it directly instead of copying the value out.

// Option holds a value of type T inline, plus a presence flag.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Present reports whether a value is held.
func (o *Option[T]) Present() bool { return o.present }

// Empty reports whether no value is held.
func (o *Option[T]) Empty() bool { return !o.present }

// Get returns the held value and whether it was present.
func (o *Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the held value, panicking when empty.
func (o *Option[T]) MustGet() T {
	if !o.present {
		panic("optional: empty on MustGet call")
	}
	return o.value
}

// Set stores v and engages the Option.
func (o *Option[T]) Set(v T) {
	o.value = v
	o.present = true
}

// Reset disengages the Option. The slot itself is retained, not
// zeroed: views already bound to it keep reading the last held value.
func (o *Option[T]) Reset() {
	o.present = false
}

// Slot returns the address of the held slot, or nil when empty.
func (o *Option[T]) Slot() *T {
	if !o.present {
		return nil
	}
	return &o.value
}
