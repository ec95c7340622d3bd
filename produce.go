package gostreams

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// MaxLineLength is the maximum length of a single line read by ProduceLines.
const MaxLineLength = 1024 * 1024

// ProducerFunc returns a sequence of elements for a stream.
// The sequence is single-pass and is evaluated on the goroutine that ranges over it.
type ProducerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T]

// SupplierFunc returns a new element for a stream each time it is called.
type SupplierFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc) T

// FuncSupplier returns a supplier that calls supp for each element.
func FuncSupplier[T any](supp func() T) SupplierFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc) T {
		return supp()
	}
}

// Produce returns a producer that produces the elements of the given slices, in order.
func Produce[T any](slices ...[]T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			for _, slice := range slices {
				for _, elem := range slice {
					if contextDone(ctx) || !yield(elem) {
						return
					}
				}
			}
		}
	}
}

// ProduceSeq returns a producer that produces the elements of seq, in order.
func ProduceSeq[T any](seq iter.Seq[T]) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			for elem := range seq {
				if contextDone(ctx) || !yield(elem) {
					return
				}
			}
		}
	}
}

// Generate returns a producer that produces an unbounded number of elements, each returned by a call to supp.
// It is usually combined with Limit.
func Generate[T any](supp SupplierFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			for {
				if contextDone(ctx) {
					return
				}

				elem := supp(ctx, cancel)

				if contextDone(ctx) || !yield(elem) {
					return
				}
			}
		}
	}
}

// ProduceLines returns a producer that produces the lines read from r, in order.
// A line ends at "\n", "\r\n" or a lone "\r"; terminators are stripped.
// Invalid UTF-8 sequences are replaced with utf8.RuneError.
// If reading from r fails, the stream's context is canceled using the read error.
// Lines longer than MaxLineLength fail with bufio.ErrTooLong.
func ProduceLines(r io.Reader) ProducerFunc[string] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[string] {
		return func(yield func(string) bool) {
			scanner := bufio.NewScanner(r)
			scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineLength)
			scanner.Split(ScanLines)

			for scanner.Scan() {
				line := strings.ToValidUTF8(scanner.Text(), string(utf8.RuneError))

				if contextDone(ctx) || !yield(line) {
					return
				}
			}

			if err := scanner.Err(); err != nil {
				cancel(err)
			}
		}
	}
}

// ScanLines is a bufio.SplitFunc that splits lines at "\n", "\r\n" or a lone "\r".
// The terminator is not part of the returned line. A final line without terminator is returned as well.
func ScanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	i := bytes.IndexAny(data, "\r\n")

	switch {
	case i < 0:
		if atEOF {
			return len(data), data, nil
		}

	case data[i] == '\n':
		return i + 1, data[:i], nil

	case i+1 < len(data):
		if data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}

		return i + 1, data[:i], nil

	case atEOF:
		return i + 1, data[:i], nil
	}

	// need more data: no terminator yet, or a "\r" that may be followed by "\n"
	return 0, nil, nil
}

// Join returns a producer that produces the elements produced by the given producers, in order.
func Join[T any](producers ...ProducerFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) iter.Seq[T] {
		return func(yield func(T) bool) {
			for _, prod := range producers {
				for elem := range prod(ctx, cancel) {
					if !yield(elem) {
						return
					}
				}

				if contextDone(ctx) {
					return
				}
			}
		}
	}
}
