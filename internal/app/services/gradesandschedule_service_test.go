package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/auth"
)

type fakeGradebook struct {
	mu       sync.Mutex
	users    map[int64]*models.User
	courses  map[int64][]*models.Course
	grades   map[int64]map[int64]float64
	userErr  error
	listErr  error
	calls    int
	targetID []int64
}

func (f *fakeGradebook) record(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.targetID = append(f.targetID, id)
}

func (f *fakeGradebook) FindUserWithDepartment(_ context.Context, id int64) (*models.User, error) {
	f.record(id)
	if f.userErr != nil {
		return nil, f.userErr
	}
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeGradebook) ListCoursesEnrolledBy(_ context.Context, studentID int64) ([]*models.Course, error) {
	f.record(studentID)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.courses[studentID], nil
}

func (f *fakeGradebook) ListGradesFor(_ context.Context, studentID int64) (map[int64]float64, error) {
	f.record(studentID)
	return f.grades[studentID], nil
}

func int64Ptr(v int64) *int64 { return &v }

func stringPtr(v string) *string { return &v }

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 14, 45, 0, 0, time.UTC)
}

func newSummaryService(store GradesAndScheduleStore) *GradesAndScheduleService {
	return NewGradesAndScheduleService(store, time.UTC, zerolog.Nop()).WithClock(fixedClock)
}

func studentSeven() *fakeGradebook {
	teacher := &models.User{ID: 3, FullName: "Dr. Smith", Role: models.RoleTeacher}
	return &fakeGradebook{
		users: map[int64]*models.User{
			7: {ID: 7, FullName: "Ana Student", Email: "ana@uni.edu", Role: models.RoleStudent, DepartmentID: int64Ptr(2)},
		},
		courses: map[int64][]*models.Course{
			7: {
				{ID: 1, Title: "Algorithms", TeacherID: int64Ptr(3), Teacher: teacher},
				{ID: 2, Title: "Databases"},
			},
		},
		grades: map[int64]map[int64]float64{
			7: {1: 95.5},
		},
	}
}

func TestGradesAndSchedule_StudentSummary(t *testing.T) {
	store := studentSeven()
	svc := newSummaryService(store)

	resp, err := svc.Get(context.Background(), &auth.Principal{UserID: 7, Role: models.RoleStudent}, 0)
	require.NoError(t, err)

	assert.Equal(t, dto.CurrentUserSummary{
		UserID:          7,
		FullName:        "Ana Student",
		Email:           "ana@uni.edu",
		ProfileDocument: "default.jpg",
		DepartmentID:    int64Ptr(2),
		Role:            stringPtr("Student"),
	}, resp.CurrentUser)

	assert.Equal(t, []dto.EnrolledCourseSummary{
		{CourseID: 1, Title: "Algorithms", TeacherName: "Dr. Smith"},
		{CourseID: 2, Title: "Databases", TeacherName: ""},
	}, resp.EnrolledCourses)

	assert.Equal(t, []dto.CourseGrade{
		{Course: "Algorithms", Grade: "95.50"},
		{Course: "Databases", Grade: "N/A"},
	}, resp.Grades)

	assert.Equal(t, []dto.ScheduleItem{
		{Course: "Algorithms", StartTime: "03/15/2024 8:30 AM", EndTime: "03/15/2024 10:30 AM"},
		{Course: "Databases", StartTime: "03/15/2024 10:30 AM", EndTime: "03/15/2024 12:30 PM"},
	}, resp.Schedule)
}

func TestGradesAndSchedule_ThirdCourseMovesToAfternoon(t *testing.T) {
	store := studentSeven()
	store.courses[7] = append(store.courses[7], &models.Course{ID: 5, Title: "Networks"})
	svc := newSummaryService(store)

	resp, err := svc.Get(context.Background(), &auth.Principal{UserID: 7}, 0)
	require.NoError(t, err)

	require.Len(t, resp.Schedule, 3)
	assert.Equal(t, dto.ScheduleItem{
		Course:    "Networks",
		StartTime: "03/15/2024 4:00 PM",
		EndTime:   "03/15/2024 6:00 PM",
	}, resp.Schedule[2])
}

func TestGradesAndSchedule_ScheduleUsesConfiguredTimezone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	store := studentSeven()
	// 20:00 UTC on the 15th is already the 16th in Tokyo
	svc := NewGradesAndScheduleService(store, tokyo, zerolog.Nop()).
		WithClock(func() time.Time { return time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC) })

	resp, err := svc.Get(context.Background(), &auth.Principal{UserID: 7}, 0)
	require.NoError(t, err)
	assert.Equal(t, "03/16/2024 8:30 AM", resp.Schedule[0].StartTime)
}

func TestGradesAndSchedule_Unauthenticated(t *testing.T) {
	for name, principal := range map[string]*auth.Principal{
		"nil principal": nil,
		"zero user id":  {UserID: 0},
	} {
		t.Run(name, func(t *testing.T) {
			store := studentSeven()
			svc := newSummaryService(store)

			resp, err := svc.Get(context.Background(), principal, 0)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
			assert.Zero(t, store.calls)
		})
	}
}

func TestGradesAndSchedule_GuestFallback(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		store := &fakeGradebook{}
		svc := newSummaryService(store)

		resp, err := svc.Get(context.Background(), &auth.Principal{UserID: 42}, 0)
		require.NoError(t, err)

		assert.Equal(t, dto.CurrentUserSummary{
			UserID:          42,
			FullName:        "Guest",
			Email:           "guest@example.com",
			ProfileDocument: "default.jpg",
			DepartmentID:    int64Ptr(0),
		}, resp.CurrentUser)
		assert.NotNil(t, resp.EnrolledCourses)
		assert.Empty(t, resp.EnrolledCourses)
		assert.Empty(t, resp.Grades)
		assert.Empty(t, resp.Schedule)
	})

	t.Run("teacher caller", func(t *testing.T) {
		store := studentSeven()
		store.users[3] = &models.User{ID: 3, FullName: "Dr. Smith", Email: "smith@uni.edu", Role: models.RoleTeacher}
		svc := newSummaryService(store)

		resp, err := svc.Get(context.Background(), &auth.Principal{UserID: 3, Role: models.RoleTeacher}, 0)
		require.NoError(t, err)
		assert.Equal(t, "Guest", resp.CurrentUser.FullName)
		assert.Nil(t, resp.CurrentUser.Role)
		require.NotNil(t, resp.CurrentUser.DepartmentID)
		assert.Equal(t, int64(0), *resp.CurrentUser.DepartmentID)

		body, err := json.Marshal(resp.CurrentUser)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"Role":null`)
		assert.Contains(t, string(body), `"DepartmentID":0`)
	})

	t.Run("non-student with grade rows keeps enrollment", func(t *testing.T) {
		store := studentSeven()
		store.users[7].Role = models.RoleTeacher
		svc := newSummaryService(store)

		resp, err := svc.Get(context.Background(), &auth.Principal{UserID: 7, Role: models.RoleTeacher}, 0)
		require.NoError(t, err)

		assert.Equal(t, "Guest", resp.CurrentUser.FullName)
		assert.Equal(t, int64(7), resp.CurrentUser.UserID)
		require.Len(t, resp.EnrolledCourses, 2)
		assert.Equal(t, "Algorithms", resp.EnrolledCourses[0].Title)
		require.Len(t, resp.Grades, 2)
		assert.Equal(t, dto.CourseGrade{Course: "Algorithms", Grade: "95.50"}, resp.Grades[0])
		assert.Equal(t, "N/A", resp.Grades[1].Grade)
		require.Len(t, resp.Schedule, 2)
		assert.ElementsMatch(t, []int64{7, 7, 7}, store.targetID)
	})
}

func TestGradesAndSchedule_StudentWithoutDepartment(t *testing.T) {
	store := studentSeven()
	store.users[7].DepartmentID = nil
	svc := newSummaryService(store)

	resp, err := svc.Get(context.Background(), &auth.Principal{UserID: 7, Role: models.RoleStudent}, 0)
	require.NoError(t, err)

	assert.Nil(t, resp.CurrentUser.DepartmentID)
	body, err := json.Marshal(resp.CurrentUser)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"DepartmentID":null`)
	assert.Contains(t, string(body), `"Role":"Student"`)
}

func TestGradesAndSchedule_TargetUser(t *testing.T) {
	store := studentSeven()
	store.users[8] = &models.User{ID: 8, FullName: "Bo Student", Email: "bo@uni.edu", Role: models.RoleStudent}
	svc := newSummaryService(store)

	resp, err := svc.Get(context.Background(), &auth.Principal{UserID: 8, Role: models.RoleStudent}, 7)
	require.NoError(t, err)

	assert.Equal(t, "Bo Student", resp.CurrentUser.FullName)
	require.Len(t, resp.EnrolledCourses, 2)
	assert.Equal(t, "Algorithms", resp.EnrolledCourses[0].Title)
	assert.ElementsMatch(t, []int64{8, 7, 7}, store.targetID)
}

func TestGradesAndSchedule_StoreFailures(t *testing.T) {
	t.Run("user lookup", func(t *testing.T) {
		store := studentSeven()
		store.userErr = errors.New("connection refused")
		svc := newSummaryService(store)

		_, err := svc.Get(context.Background(), &auth.Principal{UserID: 7}, 0)
		assert.ErrorIs(t, err, apperrors.ErrPersistence)
	})

	t.Run("course listing", func(t *testing.T) {
		store := studentSeven()
		store.listErr = errors.New("timeout")
		svc := newSummaryService(store)

		resp, err := svc.Get(context.Background(), &auth.Principal{UserID: 7}, 0)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrPersistence)
	})
}

func TestGradesAndSchedule_Idempotent(t *testing.T) {
	svc := newSummaryService(studentSeven())
	principal := &auth.Principal{UserID: 7}

	first, err := svc.Get(context.Background(), principal, 0)
	require.NoError(t, err)
	second, err := svc.Get(context.Background(), principal, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFormatGrade(t *testing.T) {
	tests := map[float64]string{
		95.5:    "95.50",
		100:     "100.00",
		0:       "0.00",
		72.126:  "72.13",
		88.3333: "88.33",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatGrade(in))
	}
}
