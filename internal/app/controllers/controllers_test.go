package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/app/services"
	"github.com/yigit/unirecords/internal/middleware"
	"github.com/yigit/unirecords/internal/pkg/apperrors"
	"github.com/yigit/unirecords/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterValidators(); err != nil {
		panic(err)
	}
}

func int64Ptr(v int64) *int64 { return &v }

type stubResolver struct {
	principal *auth.Principal
}

func (s stubResolver) Resolve(*http.Request) (*auth.Principal, error) {
	if s.principal == nil {
		return nil, auth.ErrTokenMissing
	}
	return s.principal, nil
}

// --- auth ---

type stubAuthService struct {
	session     *services.Session
	loginErr    error
	registered  *dto.RegisterRequest
	document    *multipart.FileHeader
	registerErr error
	users       []*models.User
	listErr     error
	lookup      *models.User
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*services.Session, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.session, nil
}

func (s *stubAuthService) Register(_ context.Context, req *dto.RegisterRequest, document *multipart.FileHeader) (*models.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	s.registered = req
	s.document = document
	return &models.User{ID: 11, Email: req.Email}, nil
}

func (s *stubAuthService) LookupByEmail(_ context.Context, email string) (*models.User, error) {
	if s.lookup == nil || s.lookup.Email != email {
		return nil, apperrors.ErrUserNotFound
	}
	return s.lookup, nil
}

func (s *stubAuthService) GetRegisteredUser(_ context.Context, id int64) (*models.User, error) {
	if s.lookup == nil || s.lookup.ID != id {
		return nil, apperrors.ErrUserNotFound
	}
	return s.lookup, nil
}

func (s *stubAuthService) ListRegisteredUsers(context.Context) ([]*models.User, error) {
	return s.users, s.listErr
}

func newAuthRouter(svc *stubAuthService) *gin.Engine {
	c := NewAuthController(svc, "access_token", zerolog.Nop())
	router := gin.New()
	login := router.Group("/api/userlogin")
	login.POST("/login", c.Login)
	login.GET("/login", c.LoginWithQuery)
	login.GET("/:email", c.LookupByEmail)
	register := router.Group("/api/userregister")
	register.POST("/register", c.Register)
	register.GET("/get/:id", c.GetRegisteredUser)
	register.GET("/getAll", c.ListRegisteredUsers)
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func multipartRequest(t *testing.T, method, target string, fields map[string]string, fileField, contentType string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+fileField+`"; filename="photo.png"`)
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorCode {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func TestAuthController_Login(t *testing.T) {
	svc := &stubAuthService{session: &services.Session{
		User:      &models.User{Email: "jane@contoso.edu", FullName: "Jane Doe"},
		Token:     "signed.jwt.token",
		ExpiresAt: time.Now().Add(time.Hour),
	}}
	router := newAuthRouter(svc)

	rec := serve(router, jsonRequest(http.MethodPost, "/api/userlogin/login", `{"email":"jane@contoso.edu","password":"secret123"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"signed.jwt.token","email":"jane@contoso.edu","fullName":"Jane Doe"}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Equal(t, "signed.jwt.token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAuthController_LoginFailures(t *testing.T) {
	router := newAuthRouter(&stubAuthService{loginErr: apperrors.ErrInvalidCredentials})

	rec := serve(router, jsonRequest(http.MethodPost, "/api/userlogin/login", `{"email":"jane@contoso.edu","password":"wrong"}`))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, errorCode(t, rec))

	rec = serve(router, jsonRequest(http.MethodPost, "/api/userlogin/login", `{"email":"not-an-email"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, errorCode(t, rec))
}

func TestAuthController_LoginWithQuery(t *testing.T) {
	router := newAuthRouter(&stubAuthService{session: &services.Session{
		User:  &models.User{Email: "jane@contoso.edu"},
		Token: "query.jwt",
	}})

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/userlogin/login?email=JANE@contoso.edu&password=secret123", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"query.jwt"}`, rec.Body.String())

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/api/userlogin/login?email=jane@contoso.edu", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthController_LookupByEmail(t *testing.T) {
	router := newAuthRouter(&stubAuthService{lookup: &models.User{
		ID: 4, FullName: "Jane Doe", Email: "jane@contoso.edu", Role: models.RoleStudent, DepartmentID: int64Ptr(2),
	}})

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/userlogin/jane@contoso.edu", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":4,"fullName":"Jane Doe","email":"jane@contoso.edu","role":"Student","departmentId":2}`, rec.Body.String())

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/api/userlogin/nobody@contoso.edu", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAuthController_Register(t *testing.T) {
	fields := map[string]string{
		"fullName":        "Jane Doe",
		"email":           "jane@contoso.edu",
		"password":        "secret123",
		"confirmPassword": "secret123",
	}

	t.Run("with document", func(t *testing.T) {
		svc := &stubAuthService{}
		rec := serve(newAuthRouter(svc), multipartRequest(t, http.MethodPost, "/api/userregister/register", fields, "fileUpload", "image/png"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"User registered successfully."}`, rec.Body.String())
		require.NotNil(t, svc.document)
		assert.Equal(t, "photo.png", svc.document.Filename)
		assert.Equal(t, "Jane Doe", svc.registered.FullName)
	})

	t.Run("without document", func(t *testing.T) {
		svc := &stubAuthService{}
		rec := serve(newAuthRouter(svc), multipartRequest(t, http.MethodPost, "/api/userregister/register", fields, "", ""))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, svc.document)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := &stubAuthService{registerErr: apperrors.ErrEmailAlreadyExists}
		rec := serve(newAuthRouter(svc), multipartRequest(t, http.MethodPost, "/api/userregister/register", fields, "", ""))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("blank name", func(t *testing.T) {
		blank := map[string]string{
			"fullName":        "   ",
			"email":           "jane@contoso.edu",
			"password":        "secret123",
			"confirmPassword": "secret123",
		}
		svc := &stubAuthService{}
		rec := serve(newAuthRouter(svc), multipartRequest(t, http.MethodPost, "/api/userregister/register", blank, "", ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, svc.registered)
	})
}

func TestAuthController_RegisteredUsers(t *testing.T) {
	svc := &stubAuthService{
		lookup: &models.User{ID: 4, FullName: "Jane Doe", Email: "jane@contoso.edu", Role: models.RoleStudent},
		users: []*models.User{
			{ID: 4, FullName: "Jane Doe", Email: "jane@contoso.edu", Role: models.RoleStudent, Department: &models.Department{ID: 1, Name: "Mathematics"}},
			{ID: 5, FullName: "Ann Smith", Email: "ann@contoso.edu", Role: models.RoleTeacher},
		},
	}
	router := newAuthRouter(svc)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/userregister/get/4", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"userId":4,"fullName":"Jane Doe","email":"jane@contoso.edu","role":"Student","profileDocument":"default.jpg"}`, rec.Body.String())

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/api/userregister/get/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(router, httptest.NewRequest(http.MethodGet, "/api/userregister/getAll", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"userId":4,"fullName":"Jane Doe","email":"jane@contoso.edu","role":"Student","departmentName":"Mathematics"},
		{"userId":5,"fullName":"Ann Smith","email":"ann@contoso.edu","role":"Teacher","departmentName":"No Department"}
	]`, rec.Body.String())

	svc.users = nil
	svc.listErr = apperrors.NewResourceNotFoundError("No users found.")
	rec = serve(router, httptest.NewRequest(http.MethodGet, "/api/userregister/getAll", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// --- grades and schedule ---

type stubGradesAndSchedule struct {
	principal *auth.Principal
	target    int64
	err       error
}

func (s *stubGradesAndSchedule) Get(_ context.Context, principal *auth.Principal, targetUserID int64) (*dto.GradesAndScheduleResponse, error) {
	s.principal = principal
	s.target = targetUserID
	if s.err != nil {
		return nil, s.err
	}
	role := string(principal.Role)
	return &dto.GradesAndScheduleResponse{
		CurrentUser:     dto.CurrentUserSummary{UserID: principal.UserID, FullName: "Jane Doe", Role: &role},
		EnrolledCourses: []dto.EnrolledCourseSummary{},
		Grades:          []dto.CourseGrade{},
		Schedule:        []dto.ScheduleItem{},
	}, nil
}

func newGradesAndScheduleRouter(svc *stubGradesAndSchedule, principal *auth.Principal) *gin.Engine {
	c := NewGradesAndScheduleController(svc)
	m := middleware.NewAuthMiddleware(stubResolver{principal: principal})
	router := gin.New()
	group := router.Group("/api/gradesandschedule", m.JWTAuth())
	group.GET("/gradesandschedule", c.GetGradesAndSchedule)
	group.POST("/gradesandschedule", m.RoleRequired(models.RoleStudent), c.PostGradesAndSchedule)
	return router
}

func TestGradesAndScheduleController_Get(t *testing.T) {
	svc := &stubGradesAndSchedule{}
	principal := &auth.Principal{UserID: 7, Role: models.RoleStudent}

	rec := serve(newGradesAndScheduleRouter(svc, principal), httptest.NewRequest(http.MethodGet, "/api/gradesandschedule/gradesandschedule", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, principal, svc.principal)
	assert.Zero(t, svc.target)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "CurrentUser")
	assert.Contains(t, body, "EnrolledCourses")
	assert.Contains(t, body, "Grades")
	assert.Contains(t, body, "Schedule")
	assert.NotContains(t, body, "success")
}

func TestGradesAndScheduleController_Unauthenticated(t *testing.T) {
	svc := &stubGradesAndSchedule{}

	rec := serve(newGradesAndScheduleRouter(svc, nil), httptest.NewRequest(http.MethodGet, "/api/gradesandschedule/gradesandschedule", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, svc.principal)
}

func TestGradesAndScheduleController_Post(t *testing.T) {
	t.Run("student targets another user", func(t *testing.T) {
		svc := &stubGradesAndSchedule{}
		principal := &auth.Principal{UserID: 7, Role: models.RoleStudent}

		rec := serve(newGradesAndScheduleRouter(svc, principal), jsonRequest(http.MethodPost, "/api/gradesandschedule/gradesandschedule", `{"UserID":9}`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(9), svc.target)
		assert.Equal(t, principal, svc.principal)
	})

	t.Run("teacher is forbidden", func(t *testing.T) {
		svc := &stubGradesAndSchedule{}
		principal := &auth.Principal{UserID: 3, Role: models.RoleTeacher}

		rec := serve(newGradesAndScheduleRouter(svc, principal), jsonRequest(http.MethodPost, "/api/gradesandschedule/gradesandschedule", `{"UserID":9}`))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, svc.principal)
	})

	t.Run("missing target", func(t *testing.T) {
		svc := &stubGradesAndSchedule{}
		principal := &auth.Principal{UserID: 7, Role: models.RoleStudent}

		rec := serve(newGradesAndScheduleRouter(svc, principal), jsonRequest(http.MethodPost, "/api/gradesandschedule/gradesandschedule", `{}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure is a generic 500", func(t *testing.T) {
		svc := &stubGradesAndSchedule{err: apperrors.ErrPersistence}
		principal := &auth.Principal{UserID: 7, Role: models.RoleStudent}

		rec := serve(newGradesAndScheduleRouter(svc, principal), jsonRequest(http.MethodPost, "/api/gradesandschedule/gradesandschedule", `{"UserID":7}`))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, dto.ErrorCodeInternalServer, errorCode(t, rec))
	})
}
