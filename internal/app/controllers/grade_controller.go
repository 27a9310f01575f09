package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/app/models/dto"
	"github.com/yigit/unirecords/internal/middleware"
)

// GradeController handles grade-related operations
type GradeController struct {
	gradeService GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

func gradeFromRequest(req *dto.GradeRequest) models.Grade {
	grade := models.Grade{
		ID:        req.ID,
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
	}
	if req.GradeValue != nil {
		grade.Value = *req.GradeValue
	}
	return grade
}

func (c *GradeController) respondWithGrade(ctx *gin.Context, status int, id int64) {
	grade, err := c.gradeService.GetGradeByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(status, dto.NewSuccessResponse(dto.FromGrade(grade)))
}

// CreateGrade records a grade
// @Summary Create a new grade
// @Description Records a grade between 0 and 100 for a student in a course
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GradeRequest true "Grade information"
// @Success 201 {object} dto.APIResponse{data=dto.GradeResponse} "Grade created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data, value out of range or user is not a student"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [post]
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	var req dto.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	grade := gradeFromRequest(&req)
	grade.ID = 0
	if err := c.gradeService.CreateGrade(ctx.Request.Context(), &grade); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.respondWithGrade(ctx, http.StatusCreated, grade.ID)
}

// GetGradeByID retrieves a grade by ID
// @Summary Get grade by ID
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse} "Grade retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id} [get]
func (c *GradeController) GetGradeByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "grade")
	if !ok {
		return
	}

	c.respondWithGrade(ctx, http.StatusOK, id)
}

// GetAllGrades retrieves all grades
// @Summary Get all grades
// @Description Retrieves every grade with its student name and course title
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.GradeResponse} "Grades retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades [get]
func (c *GradeController) GetAllGrades(ctx *gin.Context) {
	grades, err := c.gradeService.GetAllGrades(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := make([]dto.GradeResponse, 0, len(grades))
	for _, grade := range grades {
		resp = append(resp, dto.FromGrade(grade))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// UpdateGrade updates an existing grade
// @Summary Update grade
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Param request body dto.GradeRequest true "Updated grade information"
// @Success 200 {object} dto.APIResponse{data=dto.GradeResponse} "Grade updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or ID mismatch"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Grade, student or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id} [put]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "grade")
	if !ok {
		return
	}

	var req dto.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.RespondValidationError(ctx, err)
		return
	}

	grade := gradeFromRequest(&req)
	if err := c.gradeService.UpdateGrade(ctx.Request.Context(), id, &grade); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.respondWithGrade(ctx, http.StatusOK, id)
}

// DeleteGrade deletes a grade
// @Summary Delete grade
// @Tags grades
// @Security BearerAuth
// @Param id path int true "Grade ID"
// @Success 204 "Grade deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid grade ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /grades/{id} [delete]
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "grade")
	if !ok {
		return
	}

	if err := c.gradeService.DeleteGrade(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
