package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"school-backend/internal/models"
)

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	GetByStudentIDFold(ctx context.Context, studentID string) (*models.Student, error)
	SearchByName(ctx context.Context, name string) (*models.Student, error)
	GetAll(ctx context.Context) ([]models.Student, error)
	DeleteByID(ctx context.Context, id int64) error
	SetPassword(ctx context.Context, studentID, passwordHash string) (int64, error)
	Count(ctx context.Context) (int, error)
}

type studentRepository struct {
	*PostgresRepository
}

func NewStudentRepository(db *sql.DB, logger zerolog.Logger) StudentRepository {
	return &studentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

// Most student columns are nullable in the schema, so the select list
// coalesces them into empty values.
const studentColumns = `
	id, student_id,
	COALESCE(name, ''), COALESCE(surname, ''), COALESCE(class, ''),
	COALESCE(phone, ''), COALESCE(attendance, ''), COALESCE(age, 0),
	COALESCE(sex, ''), password, COALESCE(email, ''), COALESCE(address, ''),
	COALESCE(guardian_name, ''), COALESCE(guardian_phone, ''),
	COALESCE(date_of_birth, ''), COALESCE(enrollment_date, '')
`

func scanStudent(row interface{ Scan(...interface{}) error }) (*models.Student, error) {
	student := &models.Student{}
	var password sql.NullString

	err := row.Scan(
		&student.ID,
		&student.StudentID,
		&student.Name,
		&student.Surname,
		&student.Class,
		&student.Phone,
		&student.Attendance,
		&student.Age,
		&student.Sex,
		&password,
		&student.Email,
		&student.Address,
		&student.GuardianName,
		&student.GuardianPhone,
		&student.DateOfBirth,
		&student.EnrollmentDate,
	)
	if err != nil {
		return nil, err
	}

	if password.Valid {
		student.Password = &password.String
	}

	return student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (student_id, name, surname, class, phone, attendance, age, sex)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		student.StudentID,
		student.Name,
		student.Surname,
		student.Class,
		student.Phone,
		student.Attendance,
		student.Age,
		student.Sex,
	)

	return err
}

func (r *studentRepository) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1`

	student, err := scanStudent(r.db.QueryRowContext(ctx, query, studentID))
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return student, err
}

// GetByStudentIDFold is the case-insensitive fallback lookup used after an
// exact match has failed.
func (r *studentRepository) GetByStudentIDFold(ctx context.Context, studentID string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE LOWER(student_id) = LOWER($1)`

	student, err := scanStudent(r.db.QueryRowContext(ctx, query, studentID))
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return student, err
}

func (r *studentRepository) SearchByName(ctx context.Context, name string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE name ILIKE $1 LIMIT 1`

	student, err := scanStudent(r.db.QueryRowContext(ctx, query, "%"+name+"%"))
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return student, err
}

func (r *studentRepository) GetAll(ctx context.Context) ([]models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, *student)
	}

	return students, rows.Err()
}

func (r *studentRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM students WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *studentRepository) SetPassword(ctx context.Context, studentID, passwordHash string) (int64, error) {
	query := `UPDATE students SET password = $1 WHERE student_id = $2`

	res, err := r.db.ExecContext(ctx, query, passwordHash, studentID)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *studentRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM students`

	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}
