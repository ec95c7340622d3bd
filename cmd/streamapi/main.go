// Command streamapi runs the stream tasks over hardcoded sample data and
// prints each result on its own line:
//
//  1. total credit points of all students
//  2. distinct credit points of all IFM students
//  3. squares of the even numbers among ten random draws
//  4. lines of the embedded resource starting with "a"
//
// Configuration is read from STREAMAPI_* environment variables, see package config.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/deadlyengineer/gostreams"
	"github.com/deadlyengineer/gostreams/internal/config"
	"github.com/deadlyengineer/gostreams/internal/logging"
	"github.com/deadlyengineer/gostreams/internal/streamapi"
	"github.com/deadlyengineer/gostreams/internal/student"
)

func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Stderr))
}

func run(ctx context.Context, stdout io.Writer, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "cannot load config: %v\n", err)
		return 1
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format, stderr)

	log.Debug("starting streamapi", slog.String("resource", cfg.Resource))

	total := streamapi.TotalCredits(enrolledStudents())
	log.Debug("summed credit points", slog.Int("total", total))
	fmt.Fprintln(stdout, total)

	ifmStudents := ifmSampleStudents()

	ifm := streamapi.IFMCredits(ifmStudents)
	log.Debug("collected IFM credit points",
		slog.Int("distinct", ifm.Len()),
		slog.Any("by_enrollment", streamapi.CreditsByEnrollment(ifmStudents)),
	)
	fmt.Fprintln(stdout, gostreams.SortedValues(ifm))

	squares := streamapi.RandomSquares(streamapi.NewRandomSource())
	log.Debug("drew random squares", slog.Int("kept", len(squares)))
	fmt.Fprintln(stdout, squares)

	lines := streamapi.FilterResourceLines(ctx, streamapi.Resources(), cfg.Resource, stderr)
	log.Debug("filtered resource lines",
		slog.String("resource", cfg.Resource),
		slog.Int("bytes", len(lines)),
	)
	fmt.Fprintln(stdout, lines)

	log.Debug("finished streamapi")

	return 0
}

func enrolledStudents() []student.Student {
	return []student.Student{
		student.MustNew("A", 30, student.EnrollmentIFM),
		student.MustNew("B", 45, student.EnrollmentIFM),
		student.MustNew("C", 60, student.EnrollmentELT),
		student.MustNew("D", 45, student.EnrollmentARCH),
		student.MustNew("E", 80, student.EnrollmentIFM),
	}
}

func ifmSampleStudents() []student.Student {
	return []student.Student{
		student.MustNew("A", 35, student.EnrollmentIFM),
		student.MustNew("B", 35, student.EnrollmentIFM),
		student.MustNew("C", 60, student.EnrollmentELT),
		student.MustNew("D", 45, student.EnrollmentARCH),
		student.MustNew("E", 80, student.EnrollmentIFM),
	}
}
