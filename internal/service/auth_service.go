package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"school-backend/internal/models"
	"school-backend/internal/repository"
)

const minPasswordLength = 8

type AuthService interface {
	AdminLogin(ctx context.Context, adminID, password string) (*models.AdminLoginResponse, error)
	TeacherLogin(ctx context.Context, teacherID, password string) (*models.TeacherLoginResponse, error)
	VerifyStudent(ctx context.Context, studentID string) (*models.StudentVerification, error)
	CreateStudentPassword(ctx context.Context, studentID, password string) error
	StudentLogin(ctx context.Context, studentID, password string) (*models.StudentLoginResponse, error)
}

type authService struct {
	studentRepo repository.StudentRepository
	teacherRepo repository.TeacherRepository
	adminRepo   repository.AdminRepository
	logger      zerolog.Logger
}

func NewAuthService(
	studentRepo repository.StudentRepository,
	teacherRepo repository.TeacherRepository,
	adminRepo repository.AdminRepository,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		adminRepo:   adminRepo,
		logger:      logger,
	}
}

func (s *authService) AdminLogin(ctx context.Context, adminID, password string) (*models.AdminLoginResponse, error) {
	admin, err := s.adminRepo.GetByAdminID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}

	if err := checkPassword(admin.Password, password); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("admin_id", adminID).
		Str("role", admin.Role).
		Msg("Admin logged in")

	return &models.AdminLoginResponse{
		Success:  true,
		Redirect: "/admin/dashboard",
		Role:     admin.Role,
		Name:     admin.Name,
	}, nil
}

func (s *authService) TeacherLogin(ctx context.Context, teacherID, password string) (*models.TeacherLoginResponse, error) {
	teacher, err := s.teacherRepo.GetByTeacherID(ctx, teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up teacher: %w", err)
	}
	if teacher == nil {
		return nil, ErrTeacherNotFound
	}

	if err := checkPassword(teacher.Password, password); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("teacher_id", teacherID).
		Msg("Teacher logged in")

	return &models.TeacherLoginResponse{
		Success:  true,
		Redirect: "/teacher/teacher_dashboard.html",
		Name:     teacher.Name,
		Role:     teacher.Role,
	}, nil
}

// VerifyStudent looks up the student by exact id first, then falls back to a
// case-insensitive match, and reports whether password setup is complete.
func (s *authService) VerifyStudent(ctx context.Context, studentID string) (*models.StudentVerification, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up student: %w", err)
	}
	if student == nil {
		student, err = s.studentRepo.GetByStudentIDFold(ctx, studentID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up student: %w", err)
		}
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	email := student.Email
	if email == "" {
		email = studentID + "@school.edu"
	}

	return &models.StudentVerification{
		Valid:       true,
		HasPassword: student.HasPassword(),
		Student: models.StudentInfo{
			ID:    student.StudentID,
			Name:  displayName(student),
			Class: displayClass(student),
			Email: email,
		},
	}, nil
}

// CreateStudentPassword overwrites the stored password unconditionally, so a
// repeated call resets it.
func (s *authService) CreateStudentPassword(ctx context.Context, studentID, password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}

	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return fmt.Errorf("failed to look up student: %w", err)
	}
	if student == nil {
		return ErrStudentNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	rows, err := s.studentRepo.SetPassword(ctx, studentID, string(hash))
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if rows == 0 {
		return ErrPasswordUpdateFailed
	}

	s.logger.Info().
		Str("student_id", studentID).
		Msg("Student password created")

	return nil
}

func (s *authService) StudentLogin(ctx context.Context, studentID, password string) (*models.StudentLoginResponse, error) {
	student, err := s.studentRepo.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up student: %w", err)
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	if !student.HasPassword() {
		return nil, ErrNoPasswordSet
	}

	if err := checkPassword(*student.Password, password); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("student_id", studentID).
		Msg("Student logged in")

	return &models.StudentLoginResponse{
		Success:  true,
		Redirect: "/student/student_dashboard.html?studentId=" + student.StudentID,
		Student: models.StudentInfo{
			ID:    student.StudentID,
			Name:  displayName(student),
			Class: displayClass(student),
		},
	}, nil
}

func checkPassword(storedHash, supplied string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(supplied)); err != nil {
		return ErrIncorrectPassword
	}
	return nil
}

// displayName appends the surname only when one is present and never returns
// an empty string.
func displayName(student *models.Student) string {
	name := student.Name
	if student.Surname != "" {
		name = strings.TrimSpace(name + " " + student.Surname)
	}
	if name == "" {
		return "Student"
	}
	return name
}

func displayClass(student *models.Student) string {
	if student.Class == "" {
		return "Not Assigned"
	}
	return student.Class
}
