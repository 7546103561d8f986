// SPDX-License-Identifier: MIT

package stats

// Mode returns the single most common value of xs.
//
// Errors: ErrEmpty, ErrNaN, or *NoUniqueModeError (matching ErrNoUniqueMode)
// when several values tie for the highest count.
//
// Complexity: O(n) time, O(distinct values) space.
func Mode[T comparable](xs []T) (T, error) {
	var mode T
	if len(xs) == 0 {
		return mode, ErrEmpty
	}
	if err := checkNaN(xs); err != nil {
		return mode, err
	}

	counts := make(map[T]int, len(xs))
	best, ties := 0, 0
	for _, x := range xs {
		c := counts[x] + 1
		counts[x] = c
		switch {
		case c > best:
			mode, best, ties = x, c, 1
		case c == best:
			ties++
		}
	}
	if ties > 1 {
		return mode, &NoUniqueModeError{Modes: ties}
	}

	return mode, nil
}
