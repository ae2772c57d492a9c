// Package mergesort provides a stable, key-based merge sort over slices.
package mergesort

import "cmp"

// SortBy returns a new slice holding the elements of items ordered
// ascending by key. Elements with equal keys keep their input order.
func SortBy[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	return SortByFunc(items, key, cmp.Compare[K])
}

// SortByFunc is like SortBy but orders keys with compare, which must return
// a negative number when a < b, zero when a == b and a positive number
// when a > b.
func SortByFunc[T, K any](items []T, key func(T) K, compare func(a, b K) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	if len(out) <= 1 {
		return out
	}

	// Keys are extracted once so key is called n times, not n log n.
	keys := make([]K, len(out))
	for i, item := range out {
		keys[i] = key(item)
	}

	bufItems := make([]T, len(out))
	bufKeys := make([]K, len(out))
	sort(out, keys, bufItems, bufKeys, compare)
	return out
}

func sort[T, K any](items []T, keys []K, bufItems []T, bufKeys []K, compare func(a, b K) int) {
	if len(items) <= 1 {
		return
	}
	mid := len(items) / 2
	sort(items[:mid], keys[:mid], bufItems[:mid], bufKeys[:mid], compare)
	sort(items[mid:], keys[mid:], bufItems[mid:], bufKeys[mid:], compare)
	merge(items, keys, mid, bufItems, bufKeys, compare)
}

// merge combines the sorted runs [0, mid) and [mid, len) in place, using
// the buffers as scratch space. On equal keys the left run wins.
func merge[T, K any](items []T, keys []K, mid int, bufItems []T, bufKeys []K, compare func(a, b K) int) {
	copy(bufItems, items)
	copy(bufKeys, keys)

	i, j, k := 0, mid, 0
	for i < mid && j < len(items) {
		if compare(bufKeys[i], bufKeys[j]) <= 0 {
			items[k], keys[k] = bufItems[i], bufKeys[i]
			i++
		} else {
			items[k], keys[k] = bufItems[j], bufKeys[j]
			j++
		}
		k++
	}
	for ; i < mid; i, k = i+1, k+1 {
		items[k], keys[k] = bufItems[i], bufKeys[i]
	}
	for ; j < len(items); j, k = j+1, k+1 {
		items[k], keys[k] = bufItems[j], bufKeys[j]
	}
}
