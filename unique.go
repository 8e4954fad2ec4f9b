package optview

import (
	"github.com/igormcoelho/optional-view/pkg/optional"
)

// UniqueView is the move-only variant of View. Like View it normally
// aliases caller-owned storage, but it can also materialize a value
// passed by value into fresh storage it owns, keeping the value alive
// for the view's own lifetime. Owning state makes copies ambiguous
// (which copy would release the storage?), so the type forbids them:
// Move is the only way to hand a UniqueView to someone else, and a
// method call on a copied instance panics.
//
// There is no destructor: when an owning view becomes unreachable the
// garbage collector releases the materialized storage, and non-owning
// views never retained the target to begin with, so the double-free
// hazard of the manual-ownership model cannot arise here.
//
// An instance is in one of three states: empty, bound non-owning, or
// bound owning. Construction picks the state; Move transfers it and
// leaves the source empty; nothing else transitions it in the default
// build (Reset requires the optview_extensions build tag).
type UniqueView[T any] struct {
	ptr   *T
	owned bool

	// addr of the instance itself, recorded on first use, to trap
	// use through a copy (same technique as strings.Builder).
	addr *UniqueView[T]
}

func (v *UniqueView[T]) copyCheck() {
	if v.addr == nil {
		v.addr = v
	} else if v.addr != v {
		panic("optview: illegal use of copied UniqueView")
	}
}

// UniqueNone returns an empty UniqueView.
func UniqueNone[T any]() *UniqueView[T] {
	v := &UniqueView[T]{}
	v.addr = v
	return v
}

// UniqueOf binds a view to existing storage, without ownership. The
// target must be non-nil, as with Of.
func UniqueOf[T any](p *T) *UniqueView[T] {
	if p == nil {
		panic("optview: UniqueOf requires a non-nil target")
	}
	v := &UniqueView[T]{ptr: p}
	v.addr = v
	return v
}

// UniqueOfValue materializes val into fresh storage owned by the
// returned view. This is the lifetime extension View refuses to
// offer: the materialized value stays alive exactly as long as the
// view (or whatever it is moved into) does.
func UniqueOfValue[T any](val T) *UniqueView[T] {
	v := &UniqueView[T]{ptr: &val, owned: true}
	v.addr = v
	return v
}

// UniqueFromOption aliases the value currently held by op, without
// ownership, or returns an empty view when op is empty. Semantics are
// those of FromOption, including the stale-after-Reset behavior.
func UniqueFromOption[T any](op *optional.Option[T]) *UniqueView[T] {
	v := &UniqueView[T]{ptr: op.Slot()}
	v.addr = v
	return v
}

// Move transfers the binding and the owning state into a new view and
// empties the source. After Move only the destination refers to the
// target; a moved-from owning view no longer keeps the materialized
// storage alive.
func (v *UniqueView[T]) Move() *UniqueView[T] {
	v.copyCheck()
	moved := &UniqueView[T]{ptr: v.ptr, owned: v.owned}
	moved.addr = moved
	v.ptr = nil
	v.owned = false
	return moved
}

// Present reports whether the view is bound to a value.
func (v *UniqueView[T]) Present() bool {
	v.copyCheck()
	return v.ptr != nil
}

// Empty reports whether the view is bound to nothing.
func (v *UniqueView[T]) Empty() bool {
	v.copyCheck()
	return v.ptr == nil
}

// Owning reports whether the view owns materialized storage.
func (v *UniqueView[T]) Owning() bool {
	v.copyCheck()
	return v.owned
}

// Get returns the bound address, nil when empty. As with View.Get,
// no presence check is performed on the access path.
func (v *UniqueView[T]) Get() *T {
	v.copyCheck()
	return v.ptr
}

// Deref reads the bound value. Panics on an empty view.
func (v *UniqueView[T]) Deref() T {
	v.copyCheck()
	return *v.ptr
}

// Set writes through the view into the bound storage.
func (v *UniqueView[T]) Set(val T) {
	v.copyCheck()
	*v.ptr = val
}
