package optview

// Package optview implements non-owning optional views: a lightweight
// alternative to passing T* (with or without constness) when a value
// may or may not be supplied. A View aliases storage that already
// lives somewhere (stack, heap, inside an optional); it never extends
// or affects the lifetime of what it points at. Lifetime correctness
// stays with the caller, which is what keeps the type a single
// pointer wide with nothing on the access path.

import (
	"github.com/igormcoelho/optional-view/pkg/optional"
)

// View is a copyable, non-owning view of a T, or of nothing. The zero
// value is the empty view. A View is bound once, at construction: no
// method rebinds it, and copies share the same target.
type View[T any] struct {
	ptr *T
}

// None returns an empty View, the explicit absent marker.
func None[T any]() View[T] {
	return View[T]{}
}

// Of binds a view to existing storage. The target must be non-nil: a
// view is seeded from live storage, never from a null pointer, so an
// empty view can only come from None or an empty Option.
func Of[T any](p *T) View[T] {
	if p == nil {
		panic("optview: Of requires a non-nil target")
	}
	return View[T]{ptr: p}
}

// FromOption aliases the value currently held by op, or returns an
// empty view when op is empty. The binding is live: later mutation of
// the held value is visible through the view. It is also fixed: if op
// is Reset afterward the view keeps reporting present and keeps
// reading the retained slot. The view does not observe op's state
// after binding; that is the caller's contract.
func FromOption[T any](op *optional.Option[T]) View[T] {
	return View[T]{ptr: op.Slot()}
}

// Present reports whether the view is bound to a value.
func (v View[T]) Present() bool { return v.ptr != nil }

// Empty reports whether the view is bound to nothing.
func (v View[T]) Empty() bool { return v.ptr == nil }

// Get returns the bound address, nil when empty. No presence check is
// performed here or on any access path; dereferencing the result of
// Get on an empty view is the caller's contract violation.
func (v View[T]) Get() *T { return v.ptr }

// Deref reads the bound value. Calling Deref on an empty view panics
// on the nil dereference; check Present first.
func (v View[T]) Deref() T { return *v.ptr }

// Set writes through the view into the bound storage.
func (v View[T]) Set(val T) { *v.ptr = val }

// ReadOnly projects this view as a read-only view of the same target.
func (v View[T]) ReadOnly() ReadView[T] {
	return ReadView[T]{ptr: v.ptr}
}
