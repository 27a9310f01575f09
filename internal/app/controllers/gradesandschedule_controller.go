package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/middleware"
)

// GradesAndScheduleController serves the combined grades and schedule view
type GradesAndScheduleController struct {
	service GradesAndScheduleService
}

// NewGradesAndScheduleController creates a new GradesAndScheduleController
func NewGradesAndScheduleController(service GradesAndScheduleService) *GradesAndScheduleController {
	return &GradesAndScheduleController{
		service: service,
	}
}

// GetGradesAndSchedule returns the caller's own grades and schedule
// @Summary Get grades and schedule
// @Description Returns the caller's profile, enrolled courses, grades and a schedule for today. Callers without a student record see guest profile values.
// @Tags gradesandschedule
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.GradesAndScheduleResponse "Grades and schedule"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gradesandschedule/gradesandschedule [get]
func (c *GradesAndScheduleController) GetGradesAndSchedule(ctx *gin.Context) {
	principal, _ := middleware.PrincipalFrom(ctx)

	resp, err := c.service.Get(ctx.Request.Context(), principal, 0)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// PostGradesAndSchedule returns grades and schedule for the student named in the body
// @Summary Get grades and schedule for a student
// @Description Lists the enrolled courses, grades and schedule of the student named in the body. The profile shown is still the caller's.
// @Tags gradesandschedule
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GradesAndScheduleRequest true "Target student"
// @Success 200 {object} dto.GradesAndScheduleResponse "Grades and schedule"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Student role required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gradesandschedule/gradesandschedule [post]
func (c *GradesAndScheduleController) PostGradesAndSchedule(ctx *gin.Context) {
	var req dto.GradesAndScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	principal, _ := middleware.PrincipalFrom(ctx)

	resp, err := c.service.Get(ctx.Request.Context(), principal, req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
