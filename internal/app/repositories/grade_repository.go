package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/dberrors"
	"github.com/yigit/unirecords/internal/pkg/logger"
)

// GradeRepository handles grade database operations
type GradeRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db DBTX) *GradeRepository {
	return &GradeRepository{
		db: db,
		sb: psql,
	}
}

// selectDetailed selects grades joined with the student's name and the course title
func (r *GradeRepository) selectDetailed() squirrel.SelectBuilder {
	return r.sb.Select(
		"g.id", "g.student_id", "g.course_id", "g.grade_value::float8",
		"s.full_name", "c.title",
	).
		From("grades g").
		Join("users s ON s.id = g.student_id").
		Join("courses c ON c.id = g.course_id")
}

func scanGrade(row pgx.Row) (*models.Grade, error) {
	var (
		grade       models.Grade
		studentName string
		courseTitle string
	)
	if err := row.Scan(&grade.ID, &grade.StudentID, &grade.CourseID, &grade.Value, &studentName, &courseTitle); err != nil {
		return nil, err
	}

	grade.Student = &models.User{ID: grade.StudentID, FullName: studentName, Role: models.RoleStudent}
	grade.Course = &models.Course{ID: grade.CourseID, Title: courseTitle}
	return &grade, nil
}

// Create inserts a new grade
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	sql, args, err := r.sb.Insert("grades").
		Columns("student_id", "course_id", "grade_value").
		Values(grade.StudentID, grade.CourseID, grade.Value).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create grade query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&grade.ID); err != nil {
		if mapped := gradeConstraintError(err); mapped != nil {
			return mapped
		}
		logger.Error().Err(err).Int64("studentID", grade.StudentID).Int64("courseID", grade.CourseID).Msg("Error creating grade")
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// GetByID retrieves a grade with its student and course
func (r *GradeRepository) GetByID(ctx context.Context, id int64) (*models.Grade, error) {
	sql, args, err := r.selectDetailed().Where(squirrel.Eq{"g.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get grade query: %w", err)
	}

	grade, err := scanGrade(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error retrieving grade: %w", err)
	}

	return grade, nil
}

// GetAll retrieves every grade with its student and course
func (r *GradeRepository) GetAll(ctx context.Context) ([]*models.Grade, error) {
	sql, args, err := r.selectDetailed().OrderBy("g.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list grades query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing grades: %w", err)
	}
	defer rows.Close()

	grades := make([]*models.Grade, 0)
	for rows.Next() {
		grade, err := scanGrade(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning grade: %w", err)
		}
		grades = append(grades, grade)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grades: %w", err)
	}

	return grades, nil
}

// ListGradesFor maps course ID to grade value for one student. When a
// student has several rows for the same course the most recent row wins.
func (r *GradeRepository) ListGradesFor(ctx context.Context, studentID int64) (map[int64]float64, error) {
	sql, args, err := r.sb.Select("course_id", "grade_value::float8").
		From("grades").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student grades query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing student grades: %w", err)
	}
	defer rows.Close()

	grades := make(map[int64]float64)
	for rows.Next() {
		var (
			courseID int64
			value    float64
		)
		if err := rows.Scan(&courseID, &value); err != nil {
			return nil, fmt.Errorf("error scanning student grade: %w", err)
		}
		grades[courseID] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student grades: %w", err)
	}

	return grades, nil
}

// Update stores a grade's student, course and value
func (r *GradeRepository) Update(ctx context.Context, grade *models.Grade) error {
	sql, args, err := r.sb.Update("grades").
		Set("student_id", grade.StudentID).
		Set("course_id", grade.CourseID).
		Set("grade_value", grade.Value).
		Where(squirrel.Eq{"id": grade.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update grade query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if mapped := gradeConstraintError(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("error updating grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

// Delete removes a grade
func (r *GradeRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("grades").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete grade query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting grade: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGradeNotFound
	}

	return nil
}

func gradeConstraintError(err error) error {
	switch {
	case dberrors.IsForeignKeyViolation(err, "grades_student_id_fkey"):
		return apperrors.ErrUserNotFound
	case dberrors.IsForeignKeyViolation(err, "grades_course_id_fkey"):
		return apperrors.ErrCourseNotFound
	case dberrors.IsCheckViolation(err, ""):
		return apperrors.ErrGradeOutOfRange
	default:
		return nil
	}
}
