package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/responses"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/services"
)

type StudentHandler struct {
	base
	service services.StudentService
}

func NewStudentHandler(service services.StudentService, dev bool) *StudentHandler {
	return &StudentHandler{base: base{dev: dev}, service: service}
}

type studentRequest struct {
	Name          string `json:"name" binding:"required"`
	RegNo         string `json:"reg_no" binding:"required"`
	Level         string `json:"level" binding:"required"`
	FingerPrint   string `json:"finger_print"`
	AdmissionYear string `json:"admission_year"`
	Email         string `json:"email" binding:"omitempty,email"`
	CourseIDs     []int  `json:"course_ids"`
}

// @Summary      Create a student (admin)
// @Tags         Students
// @Accept       json
// @Produce      json
// @Param        student  body      studentRequest  true  "Student data"
// @Success      201      {object}  responses.Envelope
// @Failure      400      {object}  responses.Envelope
// @Router       /api/students [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Kindly fill in the required field")
		return
	}
	student := &models.Student{
		Name:          req.Name,
		RegNo:         req.RegNo,
		Level:         req.Level,
		FingerPrint:   req.FingerPrint,
		AdmissionYear: req.AdmissionYear,
		Email:         req.Email,
		CourseIDs:     req.CourseIDs,
	}
	if err := h.service.CreateStudent(student); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusCreated, "Student successfully created", student)
}

// @Summary      List all students
// @Tags         Students
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Router       /api/students [get]
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.service.ListStudents()
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Students successfully fetched", students)
}

// @Summary      List students by level
// @Tags         Students
// @Produce      json
// @Param        level  path      string  true  "Academic level"
// @Success      200    {object}  responses.Envelope
// @Router       /api/students/level/{level} [get]
func (h *StudentHandler) ListByLevel(c *gin.Context) {
	students, err := h.service.ListStudentsByLevel(c.Param("level"))
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Students successfully fetched", students)
}

// @Summary      Update a student
// @Tags         Students
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Student ID"
// @Param        student  body      studentRequest  true  "Student data"
// @Success      200      {object}  responses.Envelope
// @Failure      404      {object}  responses.Envelope
// @Router       /api/students/{id} [patch]
func (h *StudentHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		responses.Error(c, http.StatusBadRequest, "Invalid student ID")
		return
	}
	var req studentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "No data provided for update")
		return
	}
	student := &models.Student{
		ID:            id,
		Name:          req.Name,
		RegNo:         req.RegNo,
		Level:         req.Level,
		FingerPrint:   req.FingerPrint,
		AdmissionYear: req.AdmissionYear,
		Email:         req.Email,
		CourseIDs:     req.CourseIDs,
	}
	if err := h.service.UpdateStudent(student); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Student successfully updated", student)
}

// @Summary      Delete a student (admin)
// @Tags         Students
// @Produce      json
// @Param        id   path      int  true  "Student ID"
// @Success      200  {object}  responses.Envelope
// @Failure      404  {object}  responses.Envelope
// @Router       /api/students/{id} [delete]
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		responses.Error(c, http.StatusBadRequest, "Invalid student ID")
		return
	}
	if err := h.service.DeleteStudent(id); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Student successfully deleted", nil)
}
