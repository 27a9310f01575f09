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

// CourseRepository handles course database operations
type CourseRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: psql,
	}
}

// selectDetailed selects courses joined with their teacher and department
func (r *CourseRepository) selectDetailed() squirrel.SelectBuilder {
	return r.sb.Select(
		"c.id", "c.title", "c.teacher_id", "c.department_id",
		"t.full_name", "d.name",
	).
		From("courses c").
		LeftJoin("users t ON t.id = c.teacher_id").
		LeftJoin("departments d ON d.id = c.department_id")
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var (
		course      models.Course
		teacherName *string
		deptName    *string
	)
	if err := row.Scan(&course.ID, &course.Title, &course.TeacherID, &course.DepartmentID, &teacherName, &deptName); err != nil {
		return nil, err
	}

	if course.TeacherID != nil && teacherName != nil {
		course.Teacher = &models.User{ID: *course.TeacherID, FullName: *teacherName, Role: models.RoleTeacher}
	}
	if course.DepartmentID != nil && deptName != nil {
		course.Department = &models.Department{ID: *course.DepartmentID, Name: *deptName}
	}
	return &course, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "teacher_id", "department_id").
		Values(course.Title, course.TeacherID, course.DepartmentID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&course.ID); err != nil {
		if fkErr := courseForeignKeyError(err); fkErr != nil {
			return fkErr
		}
		logger.Error().Err(err).Str("title", course.Title).Msg("Error creating course")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course with its teacher and department
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.selectDetailed().Where(squirrel.Eq{"c.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAll retrieves every course with its teacher and department
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	return r.list(ctx, r.selectDetailed().OrderBy("c.id"))
}

// ListCoursesEnrolledBy returns, ordered by course ID, the courses for which
// the student has at least one grade row.
func (r *CourseRepository) ListCoursesEnrolledBy(ctx context.Context, studentID int64) ([]*models.Course, error) {
	builder := r.selectDetailed().
		Where(squirrel.Expr("EXISTS (SELECT 1 FROM grades g WHERE g.course_id = c.id AND g.student_id = ?)", studentID)).
		OrderBy("c.id")
	return r.list(ctx, builder)
}

func (r *CourseRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.Course, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating courses: %w", err)
	}

	return courses, nil
}

// Update stores the course's title, teacher and department
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		Set("title", course.Title).
		Set("teacher_id", course.TeacherID).
		Set("department_id", course.DepartmentID).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if fkErr := courseForeignKeyError(err); fkErr != nil {
			return fkErr
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course together with its grades
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("courses").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

func courseForeignKeyError(err error) error {
	switch {
	case dberrors.IsForeignKeyViolation(err, "courses_teacher_id_fkey"):
		return apperrors.ErrTeacherNotFound
	case dberrors.IsForeignKeyViolation(err, "courses_department_id_fkey"):
		return apperrors.ErrDepartmentNotFound
	default:
		return nil
	}
}
