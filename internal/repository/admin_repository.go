package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"school-backend/internal/models"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByAdminID(ctx context.Context, adminID string) (*models.Admin, error)
	GetAll(ctx context.Context) ([]models.Admin, error)
	DeleteByID(ctx context.Context, id int64) error
}

type adminRepository struct {
	*PostgresRepository
}

func NewAdminRepository(db *sql.DB, logger zerolog.Logger) AdminRepository {
	return &adminRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

const adminColumns = `
	id, admin_id, COALESCE(name, ''), COALESCE(role, ''), COALESCE(password, '')
`

func scanAdmin(row interface{ Scan(...interface{}) error }) (*models.Admin, error) {
	admin := &models.Admin{}

	err := row.Scan(
		&admin.ID,
		&admin.AdminID,
		&admin.Name,
		&admin.Role,
		&admin.Password,
	)
	if err != nil {
		return nil, err
	}

	return admin, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (admin_id, name, role, password)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query,
		admin.AdminID,
		admin.Name,
		admin.Role,
		admin.Password,
	)

	return err
}

func (r *adminRepository) GetByAdminID(ctx context.Context, adminID string) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE admin_id = $1`

	admin, err := scanAdmin(r.db.QueryRowContext(ctx, query, adminID))
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return admin, err
}

func (r *adminRepository) GetAll(ctx context.Context) ([]models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var admins []models.Admin
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, err
		}
		admins = append(admins, *admin)
	}

	return admins, rows.Err()
}

func (r *adminRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM admins WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
