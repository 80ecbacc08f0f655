package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"school-backend/internal/models"
)

type TeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByTeacherID(ctx context.Context, teacherID string) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]models.Teacher, error)
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type teacherRepository struct {
	*PostgresRepository
}

func NewTeacherRepository(db *sql.DB, logger zerolog.Logger) TeacherRepository {
	return &teacherRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

const teacherColumns = `
	id, teacher_id,
	COALESCE(name, ''), COALESCE(surname, ''), COALESCE(class, ''),
	COALESCE(phone, ''), COALESCE(password, ''), COALESCE(role, '')
`

func scanTeacher(row interface{ Scan(...interface{}) error }) (*models.Teacher, error) {
	teacher := &models.Teacher{}

	err := row.Scan(
		&teacher.ID,
		&teacher.TeacherID,
		&teacher.Name,
		&teacher.Surname,
		&teacher.Class,
		&teacher.Phone,
		&teacher.Password,
		&teacher.Role,
	)
	if err != nil {
		return nil, err
	}

	return teacher, nil
}

func (r *teacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (teacher_id, name, surname, class, phone, password, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		teacher.TeacherID,
		teacher.Name,
		teacher.Surname,
		teacher.Class,
		teacher.Phone,
		teacher.Password,
		teacher.Role,
	)

	return err
}

func (r *teacherRepository) GetByTeacherID(ctx context.Context, teacherID string) (*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE teacher_id = $1`

	teacher, err := scanTeacher(r.db.QueryRowContext(ctx, query, teacherID))
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return teacher, err
}

func (r *teacherRepository) GetAll(ctx context.Context) ([]models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []models.Teacher
	for rows.Next() {
		teacher, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, *teacher)
	}

	return teachers, rows.Err()
}

func (r *teacherRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM teachers WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *teacherRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM teachers`

	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}
