// Package student holds the Student record the stream tasks operate on.
//
// Students are values: once constructed they are never modified, and
// slices of students are only ever read.
package student

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidStudent is returned by New for records violating the Student invariants.
var ErrInvalidStudent = errors.New("invalid student")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Student is an enrolled person with the credit points earned so far.
type Student struct {
	Name       string     `validate:"required"`
	CPS        int        `validate:"gte=0"`
	Enrollment Enrollment `validate:"oneof=IFM ELT ARCH"`
}

// New returns a validated Student.
func New(name string, cps int, enrollment Enrollment) (Student, error) {
	s := Student{
		Name:       name,
		CPS:        cps,
		Enrollment: enrollment,
	}

	if err := validate.Struct(s); err != nil {
		return Student{}, fmt.Errorf("%w: %w", ErrInvalidStudent, err)
	}

	return s, nil
}

// MustNew is like New but panics on invalid input.
// It is meant for hardcoded sample data.
func MustNew(name string, cps int, enrollment Enrollment) Student {
	s, err := New(name, cps, enrollment)
	if err != nil {
		panic(err)
	}

	return s
}

// CreditPoints returns the credit points of s.
func CreditPoints(s Student) int {
	return s.CPS
}

// IsIFM returns true if s is enrolled in computer science.
func IsIFM(s Student) bool {
	return s.Enrollment == EnrollmentIFM
}

// HasEnrollment returns a predicate matching students enrolled in e.
func HasEnrollment(e Enrollment) func(Student) bool {
	return func(s Student) bool {
		return s.Enrollment == e
	}
}

// String implements fmt.Stringer.
func (s Student) String() string {
	return fmt.Sprintf("%s (%d, %s)", s.Name, s.CPS, s.Enrollment)
}
