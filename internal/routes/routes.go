package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/authz"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/handlers"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/middleware"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/services"
)

func SetupRoutes(
	r *gin.Engine,
	tokens services.TokenService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	courseHandler *handlers.CourseHandler,
	studentHandler *handlers.StudentHandler,
	sessionHandler *handlers.SessionHandler,
	attendanceHandler *handlers.AttendanceHandler,
	activityHandler *handlers.ActivityHandler,
) *gin.Engine {
	api := r.Group("/api")

	// ---- public
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.PATCH("/reset-password", authHandler.ResetPassword)
	}

	// ---- protected
	protected := api.Group("", middleware.AuthMiddleware(tokens))

	me := protected.Group("/auth")
	{
		me.GET("/me", authHandler.FetchMe)
		me.PATCH("/update-me", authHandler.UpdateMe)
		me.PATCH("/change-password", authHandler.ChangePassword)
		me.POST("/send-verification-code", authHandler.SendVerificationCode)
		me.PATCH("/verify-email", authHandler.VerifyEmail)
		me.PATCH("/make-admin", authHandler.MakeAdmin)
	}

	lecturers := protected.Group("/lecturers")
	{
		lecturers.GET("", userHandler.ListUsers)
		lecturers.GET("/:id", middleware.RequireRoles(authz.RoleAdmin), userHandler.GetUser)
		lecturers.POST("", middleware.RequireCan(authz.ActionWrite, authz.ResourceUsers), userHandler.CreateLecturer)
		lecturers.PATCH("/:id", middleware.RequireRoles(authz.RoleAdmin), userHandler.UpdateUser)
		lecturers.PATCH("/:id/approve", middleware.RequireCan(authz.ActionApprove, authz.ResourceUsers), userHandler.Approve)
		lecturers.PATCH("/:id/deny", middleware.RequireCan(authz.ActionApprove, authz.ResourceUsers), userHandler.Deny)
		lecturers.PATCH("/:id/deactivate", middleware.RequireCan(authz.ActionDelete, authz.ResourceUsers), userHandler.Deactivate)
	}

	courses := protected.Group("/courses")
	{
		courses.GET("", courseHandler.List)
		courses.GET("/level/:level", courseHandler.ListByLevel)
		courses.GET("/semester/:semester", courseHandler.ListBySemester)
		courses.POST("", middleware.RequireCan(authz.ActionWrite, authz.ResourceCourses), courseHandler.Create)
		courses.DELETE("/:id", middleware.RequireCan(authz.ActionDelete, authz.ResourceCourses), courseHandler.Delete)
	}

	students := protected.Group("/students")
	{
		students.GET("", studentHandler.List)
		students.GET("/level/:level", studentHandler.ListByLevel)
		students.POST("", middleware.RequireCan(authz.ActionWrite, authz.ResourceStudents), studentHandler.Create)
		students.PATCH("/:id", middleware.RequireCan(authz.ActionWrite, authz.ResourceStudents), studentHandler.Update)
		students.DELETE("/:id", middleware.RequireCan(authz.ActionDelete, authz.ResourceStudents), studentHandler.Delete)
	}

	sessions := protected.Group("/sessions")
	{
		sessions.GET("", sessionHandler.List)
		sessions.GET("/:id", sessionHandler.GetByID)
		sessions.POST("", middleware.RequireCan(authz.ActionWrite, authz.ResourceSessions), sessionHandler.Create)
		sessions.DELETE("/:id", middleware.RequireCan(authz.ActionDelete, authz.ResourceSessions), sessionHandler.Delete)
	}

	attendance := protected.Group("/attendance")
	{
		attendance.GET("", attendanceHandler.List)
		attendance.GET("/session/:sessionId", attendanceHandler.ListBySession)
		attendance.GET("/course/:courseId", attendanceHandler.ListByCourse)
		attendance.GET("/course/:courseId/register.pdf", attendanceHandler.DownloadRegister)
		attendance.POST("", middleware.RequireCan(authz.ActionWrite, authz.ResourceAttendance), attendanceHandler.OpenRegister)
		attendance.PATCH("/mark", middleware.RequireCan(authz.ActionWrite, authz.ResourceAttendance), attendanceHandler.Mark)
	}

	activities := protected.Group("/activities")
	{
		activities.GET("", activityHandler.List)
		activities.DELETE("", middleware.RequireCan(authz.ActionDelete, authz.ResourceActivities), activityHandler.DeleteAll)
	}

	return r
}
