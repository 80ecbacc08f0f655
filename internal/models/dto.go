package models

// Data Transfer Objects

type AdminLoginRequest struct {
	AdminID  string `json:"adminId"`
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Success  bool   `json:"success"`
	Redirect string `json:"redirect"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

type TeacherLoginRequest struct {
	TeacherID string `json:"teacherId"`
	Password  string `json:"password"`
}

type TeacherLoginResponse struct {
	Success  bool   `json:"success"`
	Redirect string `json:"redirect"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type VerifyStudentRequest struct {
	StudentID string `json:"studentId"`
}

type StudentInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`
	Email string `json:"email,omitempty"`
}

type StudentVerification struct {
	Valid       bool        `json:"valid"`
	HasPassword bool        `json:"hasPassword"`
	Student     StudentInfo `json:"student"`
}

type CreatePasswordRequest struct {
	StudentID string `json:"studentId"`
	Password  string `json:"password"`
}

type StudentLoginRequest struct {
	StudentID string `json:"studentId"`
	Password  string `json:"password"`
}

type StudentLoginResponse struct {
	Success  bool        `json:"success"`
	Redirect string      `json:"redirect"`
	Student  StudentInfo `json:"student"`
}

type SearchStudentRequest struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
}

type AddStudentRequest struct {
	SID        string `json:"sid"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Class      string `json:"class"`
	Phone      string `json:"phone"`
	Attendance string `json:"attendance"`
	Age        int    `json:"age"`
	Sex        string `json:"sex"`
}

type AddTeacherRequest struct {
	TeacherID string `json:"teacher_id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Class     string `json:"class"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type AddAdminRequest struct {
	AdminID  string `json:"admin_id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// SaveResultRequest uses pointers for the required fields so that an absent
// key can be told apart from a zero value.
type SaveResultRequest struct {
	StudentID   *string `json:"student_id"`
	StudentName *string `json:"student_name"`
	Form        *string `json:"form"`
	Level       *string `json:"level"`
	Subject     *string `json:"subject"`
	Term        *string `json:"term"`
	Year        *int    `json:"year"`
	Marks       *int    `json:"marks"`
	Grade       *string `json:"grade"`
	Status      *string `json:"status"`
	ExamType    string  `json:"exam_type"`
	ExamDate    string  `json:"exam_date"`
	Comment     string  `json:"comment"`
	TeacherID   string  `json:"teacher_id"`
}

type StudentResultsResponse struct {
	Results    []Result         `json:"results"`
	Statistics ResultStatistics `json:"statistics"`
}

type DashboardStatistics struct {
	Students    int    `json:"students"`
	Teachers    int    `json:"teachers"`
	Subjects    int    `json:"subjects"`
	Uptime      string `json:"uptime"`
	UptimeHours string `json:"uptime_hours"`
}
