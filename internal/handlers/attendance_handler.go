package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/middleware"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/responses"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/services"
)

type AttendanceHandler struct {
	base
	service services.AttendanceService
}

func NewAttendanceHandler(service services.AttendanceService, dev bool) *AttendanceHandler {
	return &AttendanceHandler{base: base{dev: dev}, service: service}
}

type openRegisterRequest struct {
	CourseID  int    `json:"course_id" binding:"required"`
	SessionID int    `json:"session_id" binding:"required"`
	Semester  string `json:"semester"`
}

// @Summary      Open today's register for a course
// @Description  Creates absent entries for every student at the course level
// @Tags         Attendance
// @Accept       json
// @Produce      json
// @Param        register  body      openRegisterRequest  true  "Course and session"
// @Success      201       {object}  responses.Envelope
// @Failure      404       {object}  responses.Envelope
// @Router       /api/attendance [post]
func (h *AttendanceHandler) OpenRegister(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		responses.Error(c, http.StatusUnauthorized, "You are not logged in")
		return
	}
	var req openRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Kindly fill in the required field")
		return
	}
	created, err := h.service.OpenRegister(req.CourseID, req.SessionID, user.ID, req.Semester)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusCreated,
		fmt.Sprintf("Attendance register opened, %d students marked absent", created),
		gin.H{"created": created})
}

type markAttendanceRequest struct {
	CourseID    int    `json:"course_id" binding:"required"`
	RegNo       string `json:"reg_no"`
	Fingerprint string `json:"fingerprint"`
}

// @Summary      Mark a student present
// @Description  Student is identified by reg no or fingerprint
// @Tags         Attendance
// @Accept       json
// @Produce      json
// @Param        mark  body      markAttendanceRequest  true  "Identification"
// @Success      200   {object}  responses.Envelope
// @Failure      404   {object}  responses.Envelope
// @Router       /api/attendance/mark [patch]
func (h *AttendanceHandler) Mark(c *gin.Context) {
	var req markAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Kindly fill in the required field")
		return
	}
	rec, err := h.service.MarkPresent(req.CourseID, req.RegNo, req.Fingerprint)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Attendance successfully taken.", rec)
}

// @Summary      List all attendance records
// @Tags         Attendance
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Router       /api/attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	records, err := h.service.ListAttendance()
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Attendance successfully fetched", records)
}

// @Summary      List attendance by academic session
// @Tags         Attendance
// @Produce      json
// @Param        sessionId  path      int  true  "Session ID"
// @Success      200        {object}  responses.Envelope
// @Router       /api/attendance/session/{sessionId} [get]
func (h *AttendanceHandler) ListBySession(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("sessionId"))
	if err != nil || sessionID <= 0 {
		responses.Error(c, http.StatusBadRequest, "Invalid session ID")
		return
	}
	records, err := h.service.ListBySession(sessionID)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Attendance successfully fetched", records)
}

func dateQuery(c *gin.Context) (time.Time, bool) {
	raw := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}

// @Summary      List attendance for a course on a date
// @Tags         Attendance
// @Produce      json
// @Param        courseId  path      int     true   "Course ID"
// @Param        date      query     string  false  "Date (YYYY-MM-DD), defaults to today"
// @Success      200       {object}  responses.Envelope
// @Router       /api/attendance/course/{courseId} [get]
func (h *AttendanceHandler) ListByCourse(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("courseId"))
	if err != nil || courseID <= 0 {
		responses.Error(c, http.StatusBadRequest, "Invalid course ID")
		return
	}
	date, ok := dateQuery(c)
	if !ok {
		return
	}
	records, err := h.service.ListByCourseAndDate(courseID, date)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Attendance successfully fetched", records)
}

// @Summary      Download a course register as PDF
// @Tags         Attendance
// @Produce      application/pdf
// @Param        courseId  path      int     true   "Course ID"
// @Param        date      query     string  false  "Date (YYYY-MM-DD), defaults to today"
// @Success      200       {file}    file
// @Failure      404       {object}  responses.Envelope
// @Router       /api/attendance/course/{courseId}/register.pdf [get]
func (h *AttendanceHandler) DownloadRegister(c *gin.Context) {
	courseID, err := strconv.Atoi(c.Param("courseId"))
	if err != nil || courseID <= 0 {
		responses.Error(c, http.StatusBadRequest, "Invalid course ID")
		return
	}
	date, ok := dateQuery(c)
	if !ok {
		return
	}
	path, err := h.service.ExportRegisterPDF(courseID, date)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.FileAttachment(path, fmt.Sprintf("register_%d_%s.pdf", courseID, date.Format("2006-01-02")))
}
