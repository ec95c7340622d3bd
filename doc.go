// Package gostreams provides a set of operations on streams of elements.
// Streams form a pipeline of operations that elements are being passed through.
//
// Streams are constructed by creating an initial ProducerFunc, which can produce elements from slices,
// iterators, readers, suppliers, or any arbitrary source.
//
// Elements may then be operated upon using mapping, filtering, limiting, and sorting operations
// (which are intermediate ProducerFuncs).
//
// Finally, the elements are consumed by terminal operations, such as reducing them into slices, sets,
// maps, sums or strings, checking for matching elements, or simply iterating over them.
//
// Stream operations will receive a context.CancelCauseFunc. Calling the cancel function will
// cancel the entire stream, thus short-circuiting processing elements. The terminal operation
// reports the cause of the cancelation as its error.
// Producer implementations must be prepared to be canceled at any time by checking the provided context.Context.
//
// Streams are always lazy and synchronous: a producer yields its next element only when the
// downstream operation pulls it, on the caller's goroutine. Streams are single-pass.
package gostreams
