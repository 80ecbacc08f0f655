package models

type ResultSavedEvent struct {
	EventID     string `json:"event_id"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	Subject     string `json:"subject"`
	Term        string `json:"term"`
	Year        int    `json:"year"`
	ExamType    string `json:"exam_type"`
	Marks       *int   `json:"marks"`
	Grade       string `json:"grade"`
	Status      string `json:"status"`
	TeacherID   string `json:"teacher_id"`
	Timestamp   int64  `json:"timestamp"`
}
