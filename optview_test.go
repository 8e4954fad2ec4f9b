package optview

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igormcoelho/optional-view/pkg/optional"
)

func TestViewAliasing(t *testing.T) {
	x := 10
	ox := Of(&x)
	require.True(t, ox.Present())
	require.Equal(t, 10, ox.Deref())

	x = 40
	require.Equal(t, 40, ox.Deref())

	ox.Set(50)
	require.Equal(t, 50, ox.Deref())
	require.Equal(t, 50, x)
}

func TestEmptyViews(t *testing.T) {
	var zero View[int]
	none := None[int]()
	empty := optional.None[int]()
	fromEmpty := FromOption(&empty)

	for _, v := range []View[int]{zero, none, fromEmpty} {
		assert.True(t, v.Empty())
		assert.False(t, v.Present())
		assert.Nil(t, v.Get())
	}
}

func TestOfNilPanics(t *testing.T) {
	require.Panics(t, func() { Of[int](nil) })
	require.Panics(t, func() { ReadOnlyOf[int](nil) })
	require.Panics(t, func() { UniqueOf[int](nil) })
}

func TestFromOptionAliasesSlot(t *testing.T) {
	op := optional.Some(20)
	ox := FromOption(&op)
	require.True(t, ox.Present())
	require.Equal(t, 20, ox.Deref())

	// remote change on the option is visible through the view
	op.Set(25)
	require.Equal(t, 25, ox.Deref())

	// and a write through the view lands in the option
	ox.Set(30)
	got, ok := op.Get()
	require.True(t, ok)
	require.Equal(t, 30, got)
}

func TestStaleAfterOptionReset(t *testing.T) {
	op := optional.Some(90)
	ox := FromOption(&op)
	op.Reset()

	// the view does not observe the option's state after binding: it
	// still reports present and still reads the retained slot
	require.True(t, op.Empty())
	require.True(t, ox.Present())
	require.Equal(t, 90, ox.Deref())
}

func TestViewCopySharesTarget(t *testing.T) {
	x := 7
	a := Of(&x)
	b := a
	b.Set(8)
	require.Equal(t, 8, a.Deref())
	require.Equal(t, 8, x)
}

func TestReadView(t *testing.T) {
	op := optional.Some(20)
	oz := ReadOnlyFromOption(&op)
	require.True(t, oz.Present())
	require.Equal(t, 20, oz.Deref())

	op.Set(25)
	require.Equal(t, 25, oz.Deref())

	x := 3
	rv := Of(&x).ReadOnly()
	x = 4
	require.Equal(t, 4, rv.Deref())

	var empty ReadView[string]
	assert.True(t, empty.Empty())
}

func roundTrip[T comparable](v, w T) bool {
	x := v
	view := Of(&x)
	if view.Deref() != v {
		return false
	}
	view.Set(w)
	return x == w
}

func TestViewRoundTrip(t *testing.T) {
	type pair struct {
		A int64
		B string
	}
	require.NoError(t, quick.Check(roundTrip[int64], nil))
	require.NoError(t, quick.Check(roundTrip[uint32], nil))
	require.NoError(t, quick.Check(roundTrip[float64], nil))
	require.NoError(t, quick.Check(roundTrip[string], nil))
	require.NoError(t, quick.Check(roundTrip[pair], nil))
}

func FuzzOptionViewInterop(f *testing.F) {
	f.Add(int64(10), int64(40), false)
	f.Add(int64(90), int64(0), true)
	f.Fuzz(func(t *testing.T, held, next int64, reset bool) {
		op := optional.Some(held)
		ox := FromOption(&op)
		require.Equal(t, held, ox.Deref())
		op.Set(next)
		require.Equal(t, next, ox.Deref())
		if reset {
			op.Reset()
			// sharp edge: presence sticks, slot value sticks
			require.True(t, ox.Present())
			require.Equal(t, next, ox.Deref())
		}
	})
}
