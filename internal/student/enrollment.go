package student

// Enrollment is the study program a student is enrolled in.
type Enrollment string

const (
	EnrollmentIFM  Enrollment = "IFM"
	EnrollmentELT  Enrollment = "ELT"
	EnrollmentARCH Enrollment = "ARCH"
)

// IsValid returns true if the enrollment is one of the defined constants.
func (e Enrollment) IsValid() bool {
	switch e {
	case EnrollmentIFM, EnrollmentELT, EnrollmentARCH:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (e Enrollment) String() string {
	return string(e)
}
