package models

type Student struct {
	ID             int64   `json:"id" db:"id"`
	StudentID      string  `json:"student_id" db:"student_id"`
	Name           string  `json:"name" db:"name"`
	Surname        string  `json:"surname" db:"surname"`
	Class          string  `json:"class" db:"class"`
	Phone          string  `json:"phone" db:"phone"`
	Attendance     string  `json:"attendance" db:"attendance"`
	Age            int     `json:"age" db:"age"`
	Sex            string  `json:"sex" db:"sex"`
	Password       *string `json:"-" db:"password"`
	Email          string  `json:"email" db:"email"`
	Address        string  `json:"address" db:"address"`
	GuardianName   string  `json:"guardian_name" db:"guardian_name"`
	GuardianPhone  string  `json:"guardian_phone" db:"guardian_phone"`
	DateOfBirth    string  `json:"date_of_birth" db:"date_of_birth"`
	EnrollmentDate string  `json:"enrollment_date" db:"enrollment_date"`
}

// HasPassword reports whether the student has completed first-time
// password setup.
func (s *Student) HasPassword() bool {
	return s.Password != nil && *s.Password != ""
}
