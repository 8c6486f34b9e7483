package alloclist

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is the panic value, wrapped, when an operation that
	// combines two lists is given lists whose allocators are not of the
	// same strategy. See List.SameType.
	ErrTypeMismatch = errors.New("alloclist: lists are not of the same type")

	// ErrAllocatorMismatch is the panic value, wrapped, when MergeFunc is
	// given lists whose allocator instances are not equal.
	ErrAllocatorMismatch = errors.New("alloclist: allocator instances are not equal")

	// ErrSelfSplice is the panic value, wrapped, when SpliceList is asked
	// to splice a list into itself.
	ErrSelfSplice = errors.New("alloclist: cannot splice a list into itself")

	// ErrNilAllocator is the panic value, wrapped, when New is given a
	// nil allocator.
	ErrNilAllocator = errors.New("alloclist: nil allocator")
)

// precondition panics with err wrapped in op's context.
func precondition(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
