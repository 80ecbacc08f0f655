package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"school-backend/internal/models"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hashing failed: %v", err)
	}
	return string(hash)
}

type fakeStudentRepo struct {
	students map[string]*models.Student
	byName   map[string]*models.Student
	setCalls int
	lastHash string
	setRows  int64
}

func newFakeStudentRepo(students ...*models.Student) *fakeStudentRepo {
	repo := &fakeStudentRepo{
		students: make(map[string]*models.Student),
		byName:   make(map[string]*models.Student),
		setRows:  1,
	}
	for _, s := range students {
		repo.students[s.StudentID] = s
		repo.byName[s.Name] = s
	}
	return repo
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	f.students[student.StudentID] = student
	return nil
}

func (f *fakeStudentRepo) GetByStudentID(_ context.Context, studentID string) (*models.Student, error) {
	return f.students[studentID], nil
}

func (f *fakeStudentRepo) GetByStudentIDFold(_ context.Context, studentID string) (*models.Student, error) {
	for id, s := range f.students {
		if strings.EqualFold(id, studentID) {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentRepo) SearchByName(_ context.Context, name string) (*models.Student, error) {
	return f.byName[name], nil
}

func (f *fakeStudentRepo) GetAll(_ context.Context) ([]models.Student, error) {
	var all []models.Student
	for _, s := range f.students {
		all = append(all, *s)
	}
	return all, nil
}

func (f *fakeStudentRepo) DeleteByID(_ context.Context, id int64) error {
	for key, s := range f.students {
		if s.ID == id {
			delete(f.students, key)
		}
	}
	return nil
}

func (f *fakeStudentRepo) SetPassword(_ context.Context, studentID, passwordHash string) (int64, error) {
	f.setCalls++
	f.lastHash = passwordHash
	if s, ok := f.students[studentID]; ok && f.setRows > 0 {
		s.Password = &passwordHash
	}
	return f.setRows, nil
}

func (f *fakeStudentRepo) Count(_ context.Context) (int, error) {
	return len(f.students), nil
}

type fakeTeacherRepo struct {
	teachers map[string]*models.Teacher
}

func newFakeTeacherRepo(teachers ...*models.Teacher) *fakeTeacherRepo {
	repo := &fakeTeacherRepo{teachers: make(map[string]*models.Teacher)}
	for _, t := range teachers {
		repo.teachers[t.TeacherID] = t
	}
	return repo
}

func (f *fakeTeacherRepo) Create(_ context.Context, teacher *models.Teacher) error {
	f.teachers[teacher.TeacherID] = teacher
	return nil
}

func (f *fakeTeacherRepo) GetByTeacherID(_ context.Context, teacherID string) (*models.Teacher, error) {
	return f.teachers[teacherID], nil
}

func (f *fakeTeacherRepo) GetAll(_ context.Context) ([]models.Teacher, error) {
	var all []models.Teacher
	for _, t := range f.teachers {
		all = append(all, *t)
	}
	return all, nil
}

func (f *fakeTeacherRepo) DeleteByID(_ context.Context, id int64) error {
	for key, t := range f.teachers {
		if t.ID == id {
			delete(f.teachers, key)
		}
	}
	return nil
}

func (f *fakeTeacherRepo) Count(_ context.Context) (int, error) {
	return len(f.teachers), nil
}

type fakeAdminRepo struct {
	admins map[string]*models.Admin
}

func newFakeAdminRepo(admins ...*models.Admin) *fakeAdminRepo {
	repo := &fakeAdminRepo{admins: make(map[string]*models.Admin)}
	for _, a := range admins {
		repo.admins[a.AdminID] = a
	}
	return repo
}

func (f *fakeAdminRepo) Create(_ context.Context, admin *models.Admin) error {
	f.admins[admin.AdminID] = admin
	return nil
}

func (f *fakeAdminRepo) GetByAdminID(_ context.Context, adminID string) (*models.Admin, error) {
	return f.admins[adminID], nil
}

func (f *fakeAdminRepo) GetAll(_ context.Context) ([]models.Admin, error) {
	var all []models.Admin
	for _, a := range f.admins {
		all = append(all, *a)
	}
	return all, nil
}

func (f *fakeAdminRepo) DeleteByID(_ context.Context, id int64) error {
	for key, a := range f.admins {
		if a.ID == id {
			delete(f.admins, key)
		}
	}
	return nil
}

func newAuthService(students *fakeStudentRepo, teachers *fakeTeacherRepo, admins *fakeAdminRepo) AuthService {
	if students == nil {
		students = newFakeStudentRepo()
	}
	if teachers == nil {
		teachers = newFakeTeacherRepo()
	}
	if admins == nil {
		admins = newFakeAdminRepo()
	}
	return NewAuthService(students, teachers, admins, zerolog.Nop())
}

func TestAdminLogin(t *testing.T) {
	admins := newFakeAdminRepo(&models.Admin{
		ID:       1,
		AdminID:  "A001",
		Name:     "Mr. Banda",
		Role:     "superadmin",
		Password: hashFor(t, "admin123"),
	})
	svc := newAuthService(nil, nil, admins)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.AdminLogin(context.Background(), "A001", "admin123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resp.Success || resp.Redirect != "/admin/dashboard" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if resp.Role != "superadmin" || resp.Name != "Mr. Banda" {
			t.Fatalf("unexpected identity: %+v", resp)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.AdminLogin(context.Background(), "A999", "admin123")
		if !errors.Is(err, ErrAdminNotFound) {
			t.Fatalf("expected ErrAdminNotFound, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.AdminLogin(context.Background(), "A001", "nope")
		if !errors.Is(err, ErrIncorrectPassword) {
			t.Fatalf("expected ErrIncorrectPassword, got %v", err)
		}
	})
}

func TestTeacherLogin(t *testing.T) {
	teachers := newFakeTeacherRepo(&models.Teacher{
		ID:        1,
		TeacherID: "T010",
		Name:      "Ms. Phiri",
		Role:      "teacher",
		Password:  hashFor(t, "chalkdust1"),
	})
	svc := newAuthService(nil, teachers, nil)

	resp, err := svc.TeacherLogin(context.Background(), "T010", "chalkdust1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Redirect != "/teacher/teacher_dashboard.html" {
		t.Fatalf("unexpected redirect: %s", resp.Redirect)
	}

	if _, err := svc.TeacherLogin(context.Background(), "T999", "chalkdust1"); !errors.Is(err, ErrTeacherNotFound) {
		t.Fatalf("expected ErrTeacherNotFound, got %v", err)
	}
	if _, err := svc.TeacherLogin(context.Background(), "T010", "wrong"); !errors.Is(err, ErrIncorrectPassword) {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}
}

func TestVerifyStudent(t *testing.T) {
	hash := hashFor(t, "secret-pass")
	students := newFakeStudentRepo(
		&models.Student{ID: 1, StudentID: "S001", Name: "Tino", Surname: "Moyo", Class: "Form 2", Email: "tino@example.com", Password: &hash},
		&models.Student{ID: 2, StudentID: "S002", Name: "Rudo"},
	)
	svc := newAuthService(students, nil, nil)

	t.Run("full profile", func(t *testing.T) {
		resp, err := svc.VerifyStudent(context.Background(), "S001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resp.Valid || !resp.HasPassword {
			t.Fatalf("unexpected flags: %+v", resp)
		}
		if resp.Student.Name != "Tino Moyo" {
			t.Fatalf("expected joined name, got %q", resp.Student.Name)
		}
		if resp.Student.Email != "tino@example.com" {
			t.Fatalf("unexpected email: %q", resp.Student.Email)
		}
	})

	t.Run("fallbacks", func(t *testing.T) {
		resp, err := svc.VerifyStudent(context.Background(), "S002")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.HasPassword {
			t.Fatal("expected hasPassword false")
		}
		if resp.Student.Class != "Not Assigned" {
			t.Fatalf("expected class fallback, got %q", resp.Student.Class)
		}
		if resp.Student.Email != "S002@school.edu" {
			t.Fatalf("expected synthesized email, got %q", resp.Student.Email)
		}
	})

	t.Run("case-insensitive fallback lookup", func(t *testing.T) {
		resp, err := svc.VerifyStudent(context.Background(), "s001")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Student.ID != "S001" {
			t.Fatalf("expected stored id back, got %q", resp.Student.ID)
		}
	})

	t.Run("unknown student", func(t *testing.T) {
		if _, err := svc.VerifyStudent(context.Background(), "S404"); !errors.Is(err, ErrStudentNotFound) {
			t.Fatalf("expected ErrStudentNotFound, got %v", err)
		}
	})
}

func TestCreateStudentPassword(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		students := newFakeStudentRepo(&models.Student{ID: 1, StudentID: "S001", Name: "Tino"})
		svc := newAuthService(students, nil, nil)

		err := svc.CreateStudentPassword(context.Background(), "S001", "seven77")
		if !errors.Is(err, ErrPasswordTooShort) {
			t.Fatalf("expected ErrPasswordTooShort, got %v", err)
		}
		if students.setCalls != 0 {
			t.Fatal("password must not be written on validation failure")
		}
	})

	t.Run("minimum length passes", func(t *testing.T) {
		students := newFakeStudentRepo(&models.Student{ID: 1, StudentID: "S001", Name: "Tino"})
		svc := newAuthService(students, nil, nil)

		if err := svc.CreateStudentPassword(context.Background(), "S001", "eight888"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if students.setCalls != 1 {
			t.Fatalf("expected one SetPassword call, got %d", students.setCalls)
		}
		if students.lastHash == "eight888" {
			t.Fatal("password must be stored hashed, not verbatim")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(students.lastHash), []byte("eight888")); err != nil {
			t.Fatalf("stored hash does not verify: %v", err)
		}
	})

	t.Run("unknown student", func(t *testing.T) {
		svc := newAuthService(newFakeStudentRepo(), nil, nil)

		err := svc.CreateStudentPassword(context.Background(), "S404", "eight888")
		if !errors.Is(err, ErrStudentNotFound) {
			t.Fatalf("expected ErrStudentNotFound, got %v", err)
		}
	})

	t.Run("no row updated", func(t *testing.T) {
		students := newFakeStudentRepo(&models.Student{ID: 1, StudentID: "S001", Name: "Tino"})
		students.setRows = 0
		svc := newAuthService(students, nil, nil)

		err := svc.CreateStudentPassword(context.Background(), "S001", "eight888")
		if !errors.Is(err, ErrPasswordUpdateFailed) {
			t.Fatalf("expected ErrPasswordUpdateFailed, got %v", err)
		}
	})

	t.Run("repeated call resets", func(t *testing.T) {
		students := newFakeStudentRepo(&models.Student{ID: 1, StudentID: "S001", Name: "Tino"})
		svc := newAuthService(students, nil, nil)

		if err := svc.CreateStudentPassword(context.Background(), "S001", "first-pass"); err != nil {
			t.Fatalf("first set failed: %v", err)
		}
		if err := svc.CreateStudentPassword(context.Background(), "S001", "second-pass"); err != nil {
			t.Fatalf("second set failed: %v", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(students.lastHash), []byte("second-pass")); err != nil {
			t.Fatalf("latest hash does not match latest password: %v", err)
		}
	})
}

func TestStudentLogin(t *testing.T) {
	hash := hashFor(t, "studentpw")
	students := newFakeStudentRepo(
		&models.Student{ID: 1, StudentID: "S001", Name: "Tino", Surname: "Moyo", Class: "Form 2", Password: &hash},
		&models.Student{ID: 2, StudentID: "S002", Name: "Rudo"},
	)
	svc := newAuthService(students, nil, nil)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.StudentLogin(context.Background(), "S001", "studentpw")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Redirect != "/student/student_dashboard.html?studentId=S001" {
			t.Fatalf("unexpected redirect: %s", resp.Redirect)
		}
		if resp.Student.Name != "Tino Moyo" || resp.Student.Class != "Form 2" {
			t.Fatalf("unexpected student info: %+v", resp.Student)
		}
	})

	t.Run("no password set", func(t *testing.T) {
		_, err := svc.StudentLogin(context.Background(), "S002", "anything")
		if !errors.Is(err, ErrNoPasswordSet) {
			t.Fatalf("expected ErrNoPasswordSet, got %v", err)
		}
	})

	t.Run("exact id only", func(t *testing.T) {
		// Login has no case-insensitive fallback, unlike verification.
		_, err := svc.StudentLogin(context.Background(), "s001", "studentpw")
		if !errors.Is(err, ErrStudentNotFound) {
			t.Fatalf("expected ErrStudentNotFound, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.StudentLogin(context.Background(), "S001", "wrong")
		if !errors.Is(err, ErrIncorrectPassword) {
			t.Fatalf("expected ErrIncorrectPassword, got %v", err)
		}
	})
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		student models.Student
		want    string
	}{
		{"name and surname", models.Student{Name: "Tino", Surname: "Moyo"}, "Tino Moyo"},
		{"name only", models.Student{Name: "Tino"}, "Tino"},
		{"surname only", models.Student{Surname: "Moyo"}, "Moyo"},
		{"empty", models.Student{}, "Student"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := displayName(&test.student); got != test.want {
				t.Fatalf("displayName = %q, want %q", got, test.want)
			}
		})
	}
}
