// Package sortpair implements the parallel-sort exercise: order two
// equal-length slices by a comparator applied to the second, keeping the
// pairing between positions intact.
package sortpair

import (
	"errors"
	"fmt"
	"sort"
)

// ErrLengthMismatch is returned when the two slices differ in length.
var ErrLengthMismatch = errors.New("slices are not the same length")

// SortByKeys returns copies of values and keys, both reordered so keys is
// sorted by less. values[i] stays paired with keys[i] throughout. The inputs
// are not modified.
func SortByKeys[V, K any](values []V, keys []K, less func(a, b K) bool) ([]V, []K, error) {
	if len(values) != len(keys) {
		return nil, nil, fmt.Errorf("%w: %d values, %d keys", ErrLengthMismatch, len(values), len(keys))
	}

	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return less(keys[order[i]], keys[order[j]])
	})

	sortedValues := make([]V, len(values))
	sortedKeys := make([]K, len(keys))
	for i, idx := range order {
		sortedValues[i] = values[idx]
		sortedKeys[i] = keys[idx]
	}
	return sortedValues, sortedKeys, nil
}
