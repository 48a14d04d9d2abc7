package state

// CloneItems produces a shallow copy of the provided items. A nil input stays
// nil so an empty refresh is distinguishable from a missing view.
func CloneItems[T any](items []T) []T {
	if items == nil {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
