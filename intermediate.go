package gostreams

import (
	"context"
	"iter"

	"golang.org/x/exp/slices"
)

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// MapperFunc maps element elem to type U.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type MapperFunc[T any, U any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) U

// PredicateFunc returns true if elem matches a predicate.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type PredicateFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, a T, b T) bool

// FuncMapper returns a mapper that calls mapp for each element.
func FuncMapper[T any, U any](mapp Function[T, U]) MapperFunc[T, U] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) U {
		return mapp(elem)
	}
}

// FuncPredicate returns a predicate that calls pred for each element.
func FuncPredicate[T any](pred Function[T, bool]) PredicateFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) bool {
		return pred(elem)
	}
}

// Map returns a producer that calls mapp for each element produced by prod, mapping it to type U.
func Map[T any, U any](prod ProducerFunc[T], mapp MapperFunc[T, U]) ProducerFunc[U] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[U] {
		return func(yield func(U) bool) {
			index := uint64(0)

			for elem := range prod(ctx, cancel) {
				outElem := mapp(ctx, cancel, elem, index)

				if contextDone(ctx) || !yield(outElem) {
					return
				}

				index++
			}
		}
	}
}

// Filter returns a producer that calls filter for each element produced by prod, and only produces elements for which
// filter returns true.
func Filter[T any](prod ProducerFunc[T], filter PredicateFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			index := uint64(0)

			for elem := range prod(ctx, cancel) {
				filterResult := filter(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				index++

				if !filterResult {
					continue
				}

				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Peek returns a producer that calls peek for each element produced by prod, in order, and produces the same elements.
func Peek[T any](prod ProducerFunc[T], peek ConsumerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			index := uint64(0)

			for elem := range prod(ctx, cancel) {
				peek(ctx, cancel, elem, index)

				if contextDone(ctx) || !yield(elem) {
					return
				}

				index++
			}
		}
	}
}

// Limit returns a producer that produces the same elements as prod, in order, up to max elements.
// prod is not asked for more than max elements, so Limit may be used to bound infinite producers.
func Limit[T any](prod ProducerFunc[T], max uint64) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			if max == 0 {
				return
			}

			done := uint64(0)

			for elem := range prod(ctx, cancel) {
				if !yield(elem) {
					return
				}

				done++
				if done == max {
					return
				}
			}
		}
	}
}

// Skip returns a producer that produces the same elements as prod, in order, skipping the first num elements.
func Skip[T any](prod ProducerFunc[T], num uint64) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			done := uint64(0)

			for elem := range prod(ctx, cancel) {
				done++
				if done <= num {
					continue
				}

				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Distinct returns a producer that produces the elements produced by prod, in order, dropping elements
// that have been produced before.
func Distinct[T comparable](prod ProducerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			seen := Set[T]{}

			for elem := range prod(ctx, cancel) {
				if seen.Contains(elem) {
					continue
				}

				seen.Add(elem)

				if !yield(elem) {
					return
				}
			}
		}
	}
}

// Sort returns a producer that consumes elements from prod, sorts them using sort, and produces them in sorted order.
// Sort consumes all elements of prod before producing the first one, so prod must be finite.
func Sort[T any](prod ProducerFunc[T], sort LessFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			result := []T{}

			for elem := range prod(ctx, cancel) {
				result = append(result, elem)
			}

			if contextDone(ctx) {
				return
			}

			slices.SortFunc(result, func(a T, b T) bool {
				return sort(ctx, cancel, a, b)
			})

			for _, elem := range result {
				if contextDone(ctx) || !yield(elem) {
					return
				}
			}
		}
	}
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) T {
		return elem
	}
}
