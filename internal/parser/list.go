package parser

import "fmt"

// List is the outcome of parsing a list response. Skipped holds one error
// per element that could not be read; the remaining elements are in Items.
type List[T any] struct {
	Items   []T
	Skipped []error
}

func collect[T any](arr []any, build func(object) (T, error)) List[T] {
	out := List[T]{Items: make([]T, 0, len(arr))}

	for i, raw := range arr {
		obj, ok := raw.(object)
		if !ok {
			out.Skipped = append(out.Skipped, fmt.Errorf("%w: element %d is %T", ErrParse, i, raw))
			continue
		}

		item, err := build(obj)
		if err != nil {
			out.Skipped = append(out.Skipped, fmt.Errorf("element %d: %w", i, err))
			continue
		}
		out.Items = append(out.Items, item)
	}

	return out
}
