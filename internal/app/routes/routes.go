package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/unirecords/internal/app/controllers"
	"github.com/yigit/unirecords/internal/app/models"
	"github.com/yigit/unirecords/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	departmentController *controllers.DepartmentController,
	courseController *controllers.CourseController,
	gradeController *controllers.GradeController,
	gradesAndScheduleController *controllers.GradesAndScheduleController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public Auth routes ---
	login := api.Group("/userlogin")
	{
		login.POST("/login", authController.Login)
		login.GET("/login", authController.LoginWithQuery)
		login.GET("/:email", authController.LookupByEmail)
	}

	register := api.Group("/userregister")
	{
		register.POST("/register", authController.Register)
		register.GET("/get/:id", authController.GetRegisteredUser)
		register.GET("/getAll", authController.ListRegisteredUsers)
	}

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	gradesAndSchedule := authenticated.Group("/gradesandschedule")
	{
		gradesAndSchedule.GET("/gradesandschedule", gradesAndScheduleController.GetGradesAndSchedule)
		gradesAndSchedule.POST("/gradesandschedule",
			authMiddleware.RoleRequired(models.RoleStudent),
			gradesAndScheduleController.PostGradesAndSchedule)
	}

	users := authenticated.Group("/users")
	{
		users.GET("", userController.GetAllUsers)
		users.GET("/:id", userController.GetUserByID)
		users.POST("", userController.CreateUser)
		users.PUT("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}

	departments := authenticated.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
		departments.POST("", departmentController.CreateDepartment)
		departments.PUT("/:id", departmentController.UpdateDepartment)
		departments.DELETE("/:id", departmentController.DeleteDepartment)
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.POST("", courseController.CreateCourse)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	grades := authenticated.Group("/grades")
	{
		grades.GET("", gradeController.GetAllGrades)
		grades.GET("/:id", gradeController.GetGradeByID)
		grades.POST("", gradeController.CreateGrade)
		grades.PUT("/:id", gradeController.UpdateGrade)
		grades.DELETE("/:id", gradeController.DeleteGrade)
	}
}
