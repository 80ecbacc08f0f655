package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"school-backend/internal/models"
)

func TestOverviewCounts(t *testing.T) {
	students := newFakeStudentRepo(
		&models.Student{ID: 1, StudentID: "S001", Name: "Tino"},
		&models.Student{ID: 2, StudentID: "S002", Name: "Rudo"},
	)
	teachers := newFakeTeacherRepo(
		&models.Teacher{ID: 1, TeacherID: "T010", Name: "Ms. Phiri"},
	)
	results := newFakeResultRepo()
	for _, subject := range []string{"Math", "Eng", "Sci"} {
		req := validSaveRequest()
		req.Subject = strPtr(subject)
		result := &models.Result{
			StudentID: *req.StudentID,
			Subject:   subject,
			Term:      *req.Term,
			Year:      *req.Year,
			ExamType:  req.ExamType,
		}
		if err := results.Upsert(context.Background(), result); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	svc := NewStatsService(students, teachers, results, nil, 0, zerolog.Nop())

	stats, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Students != 2 || stats.Teachers != 1 || stats.Subjects != 3 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.Uptime != "99.9%" {
		t.Fatalf("uptime = %q", stats.Uptime)
	}
	if !strings.Contains(stats.UptimeHours, "h ") || !strings.HasSuffix(stats.UptimeHours, "m") {
		t.Fatalf("uptime hours format = %q", stats.UptimeHours)
	}
}

func TestOverviewPlaceholderSubjects(t *testing.T) {
	svc := NewStatsService(
		newFakeStudentRepo(),
		newFakeTeacherRepo(),
		newFakeResultRepo(),
		nil,
		0,
		zerolog.Nop(),
	)

	stats, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A fresh install with no results reports the placeholder count.
	if stats.Subjects != 15 {
		t.Fatalf("subjects = %d, want 15", stats.Subjects)
	}
}
