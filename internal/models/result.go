package models

import "time"

// Result is one exam record. The natural key is
// (student_id, subject, term, year, exam_type); saving over an existing key
// replaces the row. Marks may be absent.
type Result struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   string    `json:"student_id" db:"student_id"`
	StudentName string    `json:"student_name" db:"student_name"`
	Form        string    `json:"form" db:"form"`
	Level       string    `json:"level" db:"level"`
	Subject     string    `json:"subject" db:"subject"`
	Term        string    `json:"term" db:"term"`
	Year        int       `json:"year" db:"year"`
	ExamType    string    `json:"exam_type" db:"exam_type"`
	ExamDate    string    `json:"exam_date" db:"exam_date"`
	Marks       *int      `json:"marks" db:"marks"`
	Grade       string    `json:"grade" db:"grade"`
	Status      string    `json:"status" db:"status"`
	Comment     string    `json:"comment" db:"comment"`
	TeacherID   string    `json:"teacher_id" db:"teacher_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type ResultFilter struct {
	Form    string
	Subject string
	Term    string
}

type ResultStatistics struct {
	TotalSubjects  int     `json:"totalSubjects"`
	Average        float64 `json:"average"`
	BestSubject    string  `json:"bestSubject"`
	BestScore      int     `json:"bestScore"`
	WeakestSubject string  `json:"weakestSubject"`
	WeakestScore   int     `json:"weakestScore"`
	Passed         int     `json:"passed"`
	Failed         int     `json:"failed"`
}
