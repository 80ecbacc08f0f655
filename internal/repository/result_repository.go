package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"school-backend/internal/models"
)

type ResultRepository interface {
	Upsert(ctx context.Context, result *models.Result) error
	GetByStudentID(ctx context.Context, studentID string) ([]models.Result, error)
	List(ctx context.Context, filter models.ResultFilter) ([]models.Result, error)
	DeleteByID(ctx context.Context, id int64) error
	CountDistinctSubjects(ctx context.Context) (int, error)
}

type resultRepository struct {
	*PostgresRepository
}

func NewResultRepository(db *sql.DB, logger zerolog.Logger) ResultRepository {
	return &resultRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

const resultColumns = `
	id, COALESCE(student_id, ''), COALESCE(student_name, ''),
	COALESCE(form, ''), COALESCE(level, ''), COALESCE(subject, ''),
	COALESCE(term, ''), COALESCE(year, 0), COALESCE(exam_type, ''),
	COALESCE(exam_date, ''), marks, COALESCE(grade, ''),
	COALESCE(status, ''), COALESCE(comment, ''), COALESCE(teacher_id, ''),
	created_at
`

func scanResult(row interface{ Scan(...interface{}) error }) (*models.Result, error) {
	result := &models.Result{}
	var marks sql.NullInt64

	err := row.Scan(
		&result.ID,
		&result.StudentID,
		&result.StudentName,
		&result.Form,
		&result.Level,
		&result.Subject,
		&result.Term,
		&result.Year,
		&result.ExamType,
		&result.ExamDate,
		&marks,
		&result.Grade,
		&result.Status,
		&result.Comment,
		&result.TeacherID,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if marks.Valid {
		v := int(marks.Int64)
		result.Marks = &v
	}

	return result, nil
}

// Upsert replaces the existing row on a natural key collision. created_at is
// refreshed so recency ordering reflects the latest submission, the same way
// an insert-or-replace would.
func (r *resultRepository) Upsert(ctx context.Context, result *models.Result) error {
	query := `
		INSERT INTO results
			(student_id, student_name, form, level, subject, term, year,
			 exam_type, exam_date, marks, grade, status, comment, teacher_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT ON CONSTRAINT results_natural_key DO UPDATE SET
			student_name = EXCLUDED.student_name,
			form         = EXCLUDED.form,
			level        = EXCLUDED.level,
			exam_date    = EXCLUDED.exam_date,
			marks        = EXCLUDED.marks,
			grade        = EXCLUDED.grade,
			status       = EXCLUDED.status,
			comment      = EXCLUDED.comment,
			teacher_id   = EXCLUDED.teacher_id,
			created_at   = now()
	`

	var marks sql.NullInt64
	if result.Marks != nil {
		marks = sql.NullInt64{Int64: int64(*result.Marks), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		result.StudentID,
		result.StudentName,
		result.Form,
		result.Level,
		result.Subject,
		result.Term,
		result.Year,
		result.ExamType,
		result.ExamDate,
		marks,
		result.Grade,
		result.Status,
		result.Comment,
		result.TeacherID,
	)

	return err
}

// GetByStudentID returns the student's results newest term first. The id
// tiebreak keeps rows written at the same instant in insertion order.
func (r *resultRepository) GetByStudentID(ctx context.Context, studentID string) ([]models.Result, error) {
	query := `
		SELECT ` + resultColumns + `
		FROM results
		WHERE student_id = $1
		ORDER BY year DESC, term DESC, created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}

	return results, rows.Err()
}

func (r *resultRepository) List(ctx context.Context, filter models.ResultFilter) ([]models.Result, error) {
	query := `SELECT ` + resultColumns + ` FROM results WHERE 1=1`
	var args []interface{}

	if filter.Form != "" {
		args = append(args, filter.Form)
		query += fmt.Sprintf(" AND form = $%d", len(args))
	}
	if filter.Subject != "" {
		args = append(args, filter.Subject)
		query += fmt.Sprintf(" AND subject = $%d", len(args))
	}
	if filter.Term != "" {
		args = append(args, filter.Term)
		query += fmt.Sprintf(" AND term = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.Result
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *result)
	}

	return results, rows.Err()
}

func (r *resultRepository) DeleteByID(ctx context.Context, id int64) error {
	query := `DELETE FROM results WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *resultRepository) CountDistinctSubjects(ctx context.Context) (int, error) {
	query := `SELECT COUNT(DISTINCT subject) FROM results`

	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}
