package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"school-backend/internal/models"
	"school-backend/internal/repository"
)

type AdminService interface {
	AddAdmin(ctx context.Context, req *models.AddAdminRequest) error
	GetAllAdmins(ctx context.Context) ([]models.Admin, error)
	DeleteAdmin(ctx context.Context, id int64) error
}

type adminService struct {
	adminRepo repository.AdminRepository
	logger    zerolog.Logger
}

func NewAdminService(adminRepo repository.AdminRepository, logger zerolog.Logger) AdminService {
	return &adminService{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (s *adminService) AddAdmin(ctx context.Context, req *models.AddAdminRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		AdminID:  req.AdminID,
		Name:     req.Name,
		Role:     req.Role,
		Password: string(hash),
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		if repository.IsUniqueViolation(err) {
			return &DuplicateKeyError{Err: err}
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	s.logger.Info().
		Str("admin_id", req.AdminID).
		Str("role", req.Role).
		Msg("Admin added")

	return nil
}

func (s *adminService) GetAllAdmins(ctx context.Context) ([]models.Admin, error) {
	admins, err := s.adminRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all admins: %w", err)
	}

	return admins, nil
}

func (s *adminService) DeleteAdmin(ctx context.Context, id int64) error {
	if err := s.adminRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
	}

	return nil
}
