package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"school-backend/internal/models"
	"school-backend/internal/repository"
)

type StudentService interface {
	AddStudent(ctx context.Context, req *models.AddStudentRequest) error
	GetAllStudents(ctx context.Context) ([]models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	SearchStudent(ctx context.Context, studentID, name string) (*models.Student, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
	logger      zerolog.Logger
}

func NewStudentService(studentRepo repository.StudentRepository, logger zerolog.Logger) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		logger:      logger,
	}
}

func (s *studentService) AddStudent(ctx context.Context, req *models.AddStudentRequest) error {
	student := &models.Student{
		StudentID:  req.SID,
		Name:       req.Name,
		Surname:    req.Surname,
		Class:      req.Class,
		Phone:      req.Phone,
		Attendance: req.Attendance,
		Age:        req.Age,
		Sex:        req.Sex,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		if repository.IsUniqueViolation(err) {
			return &DuplicateKeyError{Err: err}
		}
		return fmt.Errorf("failed to create student: %w", err)
	}

	s.logger.Info().
		Str("student_id", req.SID).
		Str("class", req.Class).
		Msg("Student added")

	return nil
}

func (s *studentService) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all students: %w", err)
	}

	return students, nil
}

// DeleteStudent removes the row by surrogate id. A missing row is not an
// error; result rows for the student are left in place.
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}

	return nil
}

func (s *studentService) SearchStudent(ctx context.Context, studentID, name string) (*models.Student, error) {
	if studentID == "" && name == "" {
		return nil, &ValidationError{Message: "Please provide student ID or name"}
	}

	var (
		student *models.Student
		err     error
	)

	if studentID != "" {
		student, err = s.studentRepo.GetByStudentID(ctx, studentID)
	} else {
		student, err = s.studentRepo.SearchByName(ctx, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search student: %w", err)
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}

	return student, nil
}
