// Package streamapi implements the stream tasks: summing credit points,
// collecting the distinct credit points of a program, drawing filtered
// random squares, and filtering the lines of an embedded text resource.
//
// Each task is a single pipeline built from gostreams producers and
// collectors. The tasks share no state.
package streamapi
