package optview

import (
	"github.com/igormcoelho/optional-view/pkg/optional"
)

// ReadView is the read-only counterpart of View: same live binding,
// but access hands out value copies and there is no way to write
// through it. Use it to communicate that the viewed data must not be
// mutated by the holder.
type ReadView[T any] struct {
	ptr *T
}

// ReadOnlyOf binds a read-only view to existing storage. The target
// must be non-nil, as with Of.
func ReadOnlyOf[T any](p *T) ReadView[T] {
	if p == nil {
		panic("optview: ReadOnlyOf requires a non-nil target")
	}
	return ReadView[T]{ptr: p}
}

// ReadOnlyFromOption aliases the value currently held by op, read
// only. Binding semantics are those of FromOption, including the
// stale-after-Reset behavior.
func ReadOnlyFromOption[T any](op *optional.Option[T]) ReadView[T] {
	return ReadView[T]{ptr: op.Slot()}
}

// Present reports whether the view is bound to a value.
func (v ReadView[T]) Present() bool { return v.ptr != nil }

// Empty reports whether the view is bound to nothing.
func (v ReadView[T]) Empty() bool { return v.ptr == nil }

// Deref reads the bound value as a copy. Panics on an empty view.
func (v ReadView[T]) Deref() T { return *v.ptr }
