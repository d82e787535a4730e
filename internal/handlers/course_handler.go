package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/responses"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/services"
)

type CourseHandler struct {
	base
	service services.CourseService
}

func NewCourseHandler(service services.CourseService, dev bool) *CourseHandler {
	return &CourseHandler{base: base{dev: dev}, service: service}
}

type createCourseRequest struct {
	CourseTitle string `json:"course_title" binding:"required"`
	CourseCode  string `json:"course_code" binding:"required"`
	Semester    string `json:"semester" binding:"required"`
	Level       string `json:"level" binding:"required"`
}

// @Summary      Add a new course (admin)
// @Tags         Courses
// @Accept       json
// @Produce      json
// @Param        course  body      createCourseRequest  true  "Course data"
// @Success      201     {object}  responses.Envelope
// @Failure      400     {object}  responses.Envelope
// @Router       /api/courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Kindly fill in the required field")
		return
	}
	course := &models.Course{
		CourseTitle: req.CourseTitle,
		CourseCode:  req.CourseCode,
		Semester:    req.Semester,
		Level:       req.Level,
	}
	if err := h.service.CreateCourse(course); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusCreated, "Course successfully created", course)
}

// @Summary      List all courses
// @Tags         Courses
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Router       /api/courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.service.ListCourses()
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Courses successfully fetched", courses)
}

// @Summary      List courses by level
// @Tags         Courses
// @Produce      json
// @Param        level  path      string  true  "Academic level"
// @Success      200    {object}  responses.Envelope
// @Router       /api/courses/level/{level} [get]
func (h *CourseHandler) ListByLevel(c *gin.Context) {
	courses, err := h.service.ListCoursesByLevel(c.Param("level"))
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Courses successfully fetched", courses)
}

// @Summary      List courses by semester
// @Tags         Courses
// @Produce      json
// @Param        semester  path      string  true  "Semester"
// @Success      200       {object}  responses.Envelope
// @Router       /api/courses/semester/{semester} [get]
func (h *CourseHandler) ListBySemester(c *gin.Context) {
	courses, err := h.service.ListCoursesBySemester(c.Param("semester"))
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Courses successfully fetched", courses)
}

// @Summary      Delete a course (admin)
// @Tags         Courses
// @Produce      json
// @Param        id   path      int  true  "Course ID"
// @Success      200  {object}  responses.Envelope
// @Failure      404  {object}  responses.Envelope
// @Router       /api/courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		responses.Error(c, http.StatusBadRequest, "Invalid course ID")
		return
	}
	if err := h.service.DeleteCourse(id); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Course successfully deleted", nil)
}
