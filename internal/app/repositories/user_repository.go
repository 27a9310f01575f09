package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/dberrors"
	"github.com/yigit/unirecords/internal/pkg/logger"
)

// emailUniqueConstraint is the unique index over LOWER(email)
const emailUniqueConstraint = "users_email_lower_key"

var userColumns = []string{
	"u.id", "u.full_name", "u.email", "u.password", "u.role",
	"u.department_id", "u.profile_document", "u.created_at", "u.updated_at",
}

// UserRepository handles user database operations
type UserRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{
		db: db,
		sb: psql,
	}
}

// selectWithDepartment selects user columns plus the joined department
func (r *UserRepository) selectWithDepartment() squirrel.SelectBuilder {
	return r.sb.Select(append(userColumns, "d.id", "d.name")...).
		From("users u").
		LeftJoin("departments d ON d.id = u.department_id")
}

func scanUser(row pgx.Row, withDepartment bool) (*models.User, error) {
	var (
		user     models.User
		role     string
		deptID   *int64
		deptName *string
	)
	dest := []any{
		&user.ID, &user.FullName, &user.Email, &user.Password, &role,
		&user.DepartmentID, &user.ProfileDocument, &user.CreatedAt, &user.UpdatedAt,
	}
	if withDepartment {
		dest = append(dest, &deptID, &deptName)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	user.Role = models.Role(role)
	if deptID != nil && deptName != nil {
		user.Department = &models.Department{ID: *deptID, Name: *deptName}
	}
	return &user, nil
}

// Create inserts a new user. The email is stored lowercased.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now().UTC()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt, user.UpdatedAt = now, now

	sql, args, err := r.sb.Insert("users").
		Columns("full_name", "email", "password", "role", "department_id", "profile_document", "created_at", "updated_at").
		Values(user.FullName, user.Email, user.Password, string(user.Role), user.DepartmentID, user.ProfileDocument, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&user.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, emailUniqueConstraint) {
			logger.Warn().Str("email", user.Email).Msg("Attempted to create user with duplicate email")
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"u.id": id}, false)
}

// GetByEmail retrieves a user by email, ignoring case
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Expr("LOWER(u.email) = LOWER(?)", strings.TrimSpace(email)), false)
}

// FindUserWithDepartment retrieves a user by ID with its department loaded
func (r *UserRepository) FindUserWithDepartment(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"u.id": id}, true)
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Sqlizer, withDepartment bool) (*models.User, error) {
	var builder squirrel.SelectBuilder
	if withDepartment {
		builder = r.selectWithDepartment()
	} else {
		builder = r.sb.Select(userColumns...).From("users u")
	}

	sql, args, err := builder.Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...), withDepartment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// EmailExists checks, ignoring case, whether another user already uses the email.
// excludeID skips the user being updated; pass 0 when creating.
func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	where := squirrel.And{squirrel.Expr("LOWER(email) = LOWER(?)", strings.TrimSpace(email))}
	if excludeID > 0 {
		where = append(where, squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := r.sb.Select("1").
		From("users").
		Where(where).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build email exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// List returns one page of users with their departments, and the total user count
func (r *UserRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.User, int64, error) {
	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count users query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting users: %w", err)
	}

	builder := r.selectWithDepartment().OrderBy("u.id")
	if limit > 0 {
		builder = builder.Limit(uint64(limit)).Offset(offset)
	}

	users, err := r.list(ctx, builder)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListAll returns every user with their department
func (r *UserRepository) ListAll(ctx context.Context) ([]*models.User, error) {
	return r.list(ctx, r.selectWithDepartment().OrderBy("u.id"))
}

func (r *UserRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.User, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows, true)
		if err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// Update stores the user's profile fields. The password is only changed
// when user.Password is non-empty.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.UpdatedAt = time.Now().UTC()

	builder := r.sb.Update("users").
		Set("full_name", user.FullName).
		Set("email", user.Email).
		Set("role", string(user.Role)).
		Set("department_id", user.DepartmentID).
		Set("profile_document", user.ProfileDocument).
		Set("updated_at", user.UpdatedAt)
	if user.Password != "" {
		builder = builder.Set("password", user.Password)
	}

	sql, args, err := builder.Where(squirrel.Eq{"id": user.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, emailUniqueConstraint) {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err, "") {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user. Their grades are deleted and the courses they
// teach lose their teacher.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("users").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}
