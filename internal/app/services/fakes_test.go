package services

import (
	"context"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
)

type memUsers struct {
	users  map[int64]*models.User
	nextID int64
}

func newMemUsers(users ...*models.User) *memUsers {
	m := &memUsers{users: map[int64]*models.User{}, nextID: 100}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memUsers) Create(_ context.Context, user *models.User) error {
	m.nextID++
	user.ID = m.nextID
	user.Email = strings.ToLower(user.Email)
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *memUsers) FindUserWithDepartment(ctx context.Context, id int64) (*models.User, error) {
	return m.GetByID(ctx, id)
}

func (m *memUsers) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, u := range m.users {
		if u.ID != excludeID && strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) List(ctx context.Context, offset uint64, limit int) ([]*models.User, int64, error) {
	all, _ := m.ListAll(ctx)
	start := int(offset)
	if start > len(all) {
		start = len(all)
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (m *memUsers) ListAll(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *memUsers) Update(_ context.Context, user *models.User) error {
	existing, ok := m.users[user.ID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	copied := *user
	if copied.Password == "" {
		copied.Password = existing.Password
	}
	m.users[user.ID] = &copied
	return nil
}

func (m *memUsers) Delete(_ context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

type memDepartments struct {
	departments map[int64]*models.Department
}

func newMemDepartments(ids ...int64) *memDepartments {
	m := &memDepartments{departments: map[int64]*models.Department{}}
	for _, id := range ids {
		m.departments[id] = &models.Department{ID: id, Name: "Department"}
	}
	return m
}

func (m *memDepartments) Create(_ context.Context, d *models.Department) error {
	d.ID = int64(len(m.departments) + 1)
	m.departments[d.ID] = d
	return nil
}

func (m *memDepartments) GetByID(_ context.Context, id int64) (*models.Department, error) {
	d, ok := m.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return d, nil
}

func (m *memDepartments) GetAll(_ context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(m.departments))
	for _, d := range m.departments {
		out = append(out, d)
	}
	return out, nil
}

func (m *memDepartments) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := m.departments[id]
	return ok, nil
}

func (m *memDepartments) Update(_ context.Context, d *models.Department) error {
	if _, ok := m.departments[d.ID]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	m.departments[d.ID] = d
	return nil
}

func (m *memDepartments) Delete(_ context.Context, id int64) error {
	if _, ok := m.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	delete(m.departments, id)
	return nil
}

type memCourses struct {
	courses map[int64]*models.Course
}

func (m *memCourses) Create(_ context.Context, c *models.Course) error {
	c.ID = int64(len(m.courses) + 1)
	m.courses[c.ID] = c
	return nil
}

func (m *memCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := m.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (m *memCourses) GetAll(_ context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(m.courses))
	for _, c := range m.courses {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCourses) Update(_ context.Context, c *models.Course) error {
	if _, ok := m.courses[c.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	m.courses[c.ID] = c
	return nil
}

func (m *memCourses) Delete(_ context.Context, id int64) error {
	if _, ok := m.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(m.courses, id)
	return nil
}

type memGrades struct {
	grades map[int64]*models.Grade
}

func (m *memGrades) Create(_ context.Context, g *models.Grade) error {
	g.ID = int64(len(m.grades) + 1)
	m.grades[g.ID] = g
	return nil
}

func (m *memGrades) GetByID(_ context.Context, id int64) (*models.Grade, error) {
	g, ok := m.grades[id]
	if !ok {
		return nil, apperrors.ErrGradeNotFound
	}
	return g, nil
}

func (m *memGrades) GetAll(_ context.Context) ([]*models.Grade, error) {
	out := make([]*models.Grade, 0, len(m.grades))
	for _, g := range m.grades {
		out = append(out, g)
	}
	return out, nil
}

func (m *memGrades) Update(_ context.Context, g *models.Grade) error {
	if _, ok := m.grades[g.ID]; !ok {
		return apperrors.ErrGradeNotFound
	}
	m.grades[g.ID] = g
	return nil
}

func (m *memGrades) Delete(_ context.Context, id int64) error {
	if _, ok := m.grades[id]; !ok {
		return apperrors.ErrGradeNotFound
	}
	delete(m.grades, id)
	return nil
}

// roleTable validates roles from a fixed id -> role table
type roleTable map[int64]models.Role

func (r roleTable) ValidateTeacher(_ context.Context, id int64) error {
	role, ok := r[id]
	if !ok {
		return apperrors.ErrTeacherNotFound
	}
	if role != models.RoleTeacher {
		return apperrors.ErrInvalidTeacher
	}
	return nil
}

func (r roleTable) ValidateStudent(_ context.Context, id int64) error {
	role, ok := r[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	if role != models.RoleStudent {
		return apperrors.ErrInvalidStudent
	}
	return nil
}

type stubTokens struct{}

func (stubTokens) GenerateAccessToken(user *models.User) (string, time.Time, error) {
	return "token-for-" + user.Email, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

type memStorage struct {
	saved   []string
	deleted []string
}

func (m *memStorage) SaveFileWithPath(fh *multipart.FileHeader, path string) (string, error) {
	stored := path + "/" + fh.Filename
	m.saved = append(m.saved, stored)
	return stored, nil
}

func (m *memStorage) DeleteFile(path string) error {
	m.deleted = append(m.deleted, path)
	return nil
}

func imageHeader(name string) *multipart.FileHeader {
	fh := &multipart.FileHeader{Filename: name, Header: map[string][]string{}}
	fh.Header.Set("Content-Type", "image/png")
	return fh
}
