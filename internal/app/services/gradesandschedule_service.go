package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/app/schedule"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/auth"
	"golang.org/x/sync/errgroup"
)

// Guest identity shown when the caller has no student record
const (
	GuestFullName     = "Guest"
	GuestEmail        = "guest@example.com"
	GuestDepartmentID = int64(0)
)

// GradesAndScheduleService composes the caller's profile, enrolled courses,
// grades and a synthesized daily schedule.
type GradesAndScheduleService struct {
	store    GradesAndScheduleStore
	location *time.Location
	now      func() time.Time
	logger   zerolog.Logger
}

// NewGradesAndScheduleService creates a new GradesAndScheduleService.
// location is the timezone whose calendar day the schedule is laid out on.
func NewGradesAndScheduleService(store GradesAndScheduleStore, location *time.Location, logger zerolog.Logger) *GradesAndScheduleService {
	if location == nil {
		location = time.Local
	}
	return &GradesAndScheduleService{
		store:    store,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// WithClock replaces the clock used to pick the schedule day
func (s *GradesAndScheduleService) WithClock(now func() time.Time) *GradesAndScheduleService {
	s.now = now
	return s
}

// Get builds the summary for the principal. targetUserID selects whose
// enrollment and grades are listed; zero or negative means the principal's own.
// The displayed user is always the principal.
func (s *GradesAndScheduleService) Get(ctx context.Context, principal *auth.Principal, targetUserID int64) (*dto.GradesAndScheduleResponse, error) {
	if !principal.Valid() {
		return nil, apperrors.ErrUnauthenticated
	}
	if targetUserID <= 0 {
		targetUserID = principal.UserID
	}

	log := s.logger.With().Int64("userID", principal.UserID).Int64("targetUserID", targetUserID).Logger()

	user, err := s.store.FindUserWithDepartment(ctx, principal.UserID)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		log.Error().Err(err).Msg("Failed to load user for grades and schedule")
		return nil, fmt.Errorf("%w: loading user: %v", apperrors.ErrPersistence, err)
	}

	var (
		courses []*models.Course
		grades  map[int64]float64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = s.store.ListCoursesEnrolledBy(gctx, targetUserID)
		if err != nil {
			return fmt.Errorf("listing enrolled courses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		grades, err = s.store.ListGradesFor(gctx, targetUserID)
		if err != nil {
			return fmt.Errorf("listing grades: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Failed to load enrollment for grades and schedule")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPersistence, err)
	}

	resp := &dto.GradesAndScheduleResponse{
		CurrentUser:     currentUserSummary(principal, user),
		EnrolledCourses: make([]dto.EnrolledCourseSummary, 0, len(courses)),
		Grades:          make([]dto.CourseGrade, 0, len(courses)),
	}

	for _, course := range courses {
		resp.EnrolledCourses = append(resp.EnrolledCourses, dto.EnrolledCourseSummary{
			CourseID:    course.ID,
			Title:       course.Title,
			TeacherName: course.TeacherName(),
		})

		grade := dto.NoGrade
		if value, ok := grades[course.ID]; ok {
			grade = FormatGrade(value)
		}
		resp.Grades = append(resp.Grades, dto.CourseGrade{Course: course.Title, Grade: grade})
	}

	entries := schedule.Generate(courses, s.today())
	resp.Schedule = make([]dto.ScheduleItem, 0, len(entries))
	for _, entry := range entries {
		resp.Schedule = append(resp.Schedule, dto.ScheduleItem{
			Course:    entry.Course.Title,
			StartTime: entry.StartTime.Format(dto.ScheduleTimeLayout),
			EndTime:   entry.EndTime.Format(dto.ScheduleTimeLayout),
		})
	}

	log.Debug().Int("courses", len(courses)).Int("grades", len(grades)).Msg("Grades and schedule composed")
	return resp, nil
}

// today returns midnight of the current day in the schedule timezone
func (s *GradesAndScheduleService) today() time.Time {
	now := s.now().In(s.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
}

// FormatGrade renders a grade with exactly two decimals
func FormatGrade(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// currentUserSummary describes the caller, or a guest when the caller has no
// student record
func currentUserSummary(principal *auth.Principal, user *models.User) dto.CurrentUserSummary {
	if user == nil || !user.IsStudent() {
		guestDepartment := GuestDepartmentID
		return dto.CurrentUserSummary{
			UserID:          principal.UserID,
			FullName:        GuestFullName,
			Email:           GuestEmail,
			ProfileDocument: models.DefaultProfileDocument,
			DepartmentID:    &guestDepartment,
		}
	}

	role := string(user.Role)
	summary := dto.CurrentUserSummary{
		UserID:          user.ID,
		FullName:        user.FullName,
		Email:           user.Email,
		ProfileDocument: user.ProfileDocumentOrDefault(),
		Role:            &role,
	}
	if user.DepartmentID != nil {
		departmentID := *user.DepartmentID
		summary.DepartmentID = &departmentID
	}
	return summary
}
