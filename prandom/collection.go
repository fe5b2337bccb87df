package prandom

// Choose returns one of values. It panics when values is empty, like indexing
// an empty slice. A nil r uses Default.
func Choose[T any](r *Rand, values ...T) T {
	return values[or(r).r.IntN(len(values))]
}

// Pick returns a random element of items, or the zero value and false when
// items is empty.
func Pick[T any](r *Rand, items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[or(r).r.IntN(len(items))], true
}

// Shuffle shuffles items in place.
func Shuffle[T any](r *Rand, items []T) {
	or(r).r.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// Shuffled returns a shuffled copy of items.
func Shuffled[T any](r *Rand, items []T) []T {
	out := append([]T(nil), items...)
	Shuffle(r, out)
	return out
}

// Sample returns k distinct elements of items in random order. k is capped at
// len(items).
func Sample[T any](r *Rand, items []T, k int) []T {
	if k <= 0 {
		return nil
	}
	if k > len(items) {
		k = len(items)
	}
	perm := or(r).r.Perm(len(items))
	out := make([]T, k)
	for i := range out {
		out[i] = items[perm[i]]
	}
	return out
}

// PickWeighted returns an element of items chosen by the matching weights.
// ok is false when the lengths differ or no weight is positive.
func PickWeighted[T any](r *Rand, items []T, weights []float64) (T, bool) {
	var zero T
	if len(items) != len(weights) {
		return zero, false
	}
	i := or(r).WeightedIndex(weights)
	if i < 0 {
		return zero, false
	}
	return items[i], true
}
