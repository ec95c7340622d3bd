package streamapi

import (
	"context"

	"github.com/deadlyengineer/gostreams"
	"github.com/deadlyengineer/gostreams/internal/student"
)

// TotalCredits returns the sum of credit points of all students, or 0 for no students.
func TotalCredits(students []student.Student) int {
	cps := gostreams.Map(gostreams.Produce(students), gostreams.FuncMapper(student.CreditPoints))

	// the stream is never canceled, so there is no error to report
	sum, _ := gostreams.ReduceSum(context.Background(), cps)

	return sum
}

// UniqueCredits returns the distinct credit points of all students matching filter.
func UniqueCredits(students []student.Student, filter func(student.Student) bool) gostreams.Set[int] {
	matching := gostreams.Filter(gostreams.Produce(students), gostreams.FuncPredicate(filter))
	cps := gostreams.Map(matching, gostreams.FuncMapper(student.CreditPoints))

	set, _ := gostreams.ReduceSet(context.Background(), cps)

	return set
}

// IFMCredits returns the distinct credit points of all IFM students.
func IFMCredits(students []student.Student) gostreams.Set[int] {
	return UniqueCredits(students, student.IsIFM)
}

// CreditsByEnrollment groups the credit points of all students by enrollment.
// Credit points keep the order of students; enrollments without students are absent.
func CreditsByEnrollment(students []student.Student) map[student.Enrollment][]int {
	enrollment := gostreams.FuncMapper(func(s student.Student) student.Enrollment {
		return s.Enrollment
	})

	groups, _ := gostreams.Reduce(context.Background(), gostreams.Produce(students),
		map[student.Enrollment][]int{}, gostreams.CollectGroup(enrollment, gostreams.FuncMapper(student.CreditPoints)))

	return groups
}
