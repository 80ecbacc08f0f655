package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"school-backend/internal/models"
	"school-backend/internal/repository"
)

type TeacherService interface {
	AddTeacher(ctx context.Context, req *models.AddTeacherRequest) error
	GetAllTeachers(ctx context.Context) ([]models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error
}

type teacherService struct {
	teacherRepo repository.TeacherRepository
	logger      zerolog.Logger
}

func NewTeacherService(teacherRepo repository.TeacherRepository, logger zerolog.Logger) TeacherService {
	return &teacherService{
		teacherRepo: teacherRepo,
		logger:      logger,
	}
}

func (s *teacherService) AddTeacher(ctx context.Context, req *models.AddTeacherRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	teacher := &models.Teacher{
		TeacherID: req.TeacherID,
		Name:      req.Name,
		Surname:   req.Surname,
		Class:     req.Class,
		Phone:     req.Phone,
		Password:  string(hash),
		Role:      req.Role,
	}

	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		if repository.IsUniqueViolation(err) {
			return &DuplicateKeyError{Err: err}
		}
		return fmt.Errorf("failed to create teacher: %w", err)
	}

	s.logger.Info().
		Str("teacher_id", req.TeacherID).
		Str("role", req.Role).
		Msg("Teacher added")

	return nil
}

func (s *teacherService) GetAllTeachers(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.teacherRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all teachers: %w", err)
	}

	return teachers, nil
}

func (s *teacherService) DeleteTeacher(ctx context.Context, id int64) error {
	if err := s.teacherRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete teacher: %w", err)
	}

	return nil
}
