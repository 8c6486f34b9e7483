package alloclist

import "golang.org/x/exp/constraints"

// compareOrdered is the natural three-way comparison of ordered values.
func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func equalComparable[T comparable](a, b T) bool {
	return a == b
}

// Sort sorts l in ascending order. See List.SortFunc.
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(compareOrdered[T])
}

// Merge merges other, which like l must be sorted in ascending order,
// into l. See List.MergeFunc.
func Merge[T constraints.Ordered](l, other *List[T]) {
	l.MergeFunc(other, compareOrdered[T])
}

// Compare compares l and other lexicographically in the natural order
// of T. See List.CompareFunc.
func Compare[T constraints.Ordered](l, other *List[T]) int {
	return l.CompareFunc(other, compareOrdered[T])
}

// Equal reports whether l and other hold equal elements in the same
// order.
func Equal[T comparable](l, other *List[T]) bool {
	return l.EqualFunc(other, equalComparable[T])
}

// Remove erases every element of l equal to v, and returns the number
// of elements erased.
func Remove[T comparable](l *List[T], v T) int {
	return l.RemoveFunc(func(e T) bool { return e == v })
}

// Unique collapses each run of consecutive equal elements of l to its
// first element, and returns the number of elements erased.
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(equalComparable[T])
}
