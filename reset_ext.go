//go:build optview_extensions

package optview

// Reset empties the view before its natural end of life, dropping the
// reference to owned materialized storage so the collector may release
// it. Opt-in: without the optview_extensions build tag a view cannot
// be emptied early, matching the no-rebind stance of the default API.
func (v *UniqueView[T]) Reset() {
	v.copyCheck()
	v.ptr = nil
	v.owned = false
}
