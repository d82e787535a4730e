package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/responses"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/services"
)

type SessionHandler struct {
	base
	service services.SessionService
}

func NewSessionHandler(service services.SessionService, dev bool) *SessionHandler {
	return &SessionHandler{base: base{dev: dev}, service: service}
}

type createSessionRequest struct {
	Name      string   `json:"name" binding:"required"`
	Start     string   `json:"start" binding:"required"` // YYYY-MM-DD
	End       string   `json:"end" binding:"required"`
	Semesters []string `json:"semesters"`
	Active    bool     `json:"active"`
}

// @Summary      Create an academic session (admin)
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        session  body      createSessionRequest  true  "Session data"
// @Success      201      {object}  responses.Envelope
// @Failure      400      {object}  responses.Envelope
// @Router       /api/sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Kindly fill in the required field")
		return
	}
	start, err := time.Parse("2006-01-02", req.Start)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.End)
	if err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
		return
	}
	session := &models.AcademicSession{
		Name:      req.Name,
		Start:     start,
		End:       end,
		Semesters: req.Semesters,
		Active:    req.Active,
	}
	if err := h.service.CreateSession(session); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusCreated, "Academic session successfully created", session)
}

// @Summary      List academic sessions
// @Tags         Sessions
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Router       /api/sessions [get]
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.service.ListSessions()
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Academic sessions successfully fetched", sessions)
}

// @Summary      Get an academic session by id
// @Tags         Sessions
// @Produce      json
// @Param        id   path      int  true  "Session ID"
// @Success      200  {object}  responses.Envelope
// @Failure      404  {object}  responses.Envelope
// @Router       /api/sessions/{id} [get]
func (h *SessionHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		responses.Error(c, http.StatusBadRequest, "Invalid session ID")
		return
	}
	session, err := h.service.GetSessionByID(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Academic session successfully fetched", session)
}

// @Summary      Delete an academic session (admin)
// @Tags         Sessions
// @Produce      json
// @Param        id   path      int  true  "Session ID"
// @Success      200  {object}  responses.Envelope
// @Failure      404  {object}  responses.Envelope
// @Router       /api/sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		responses.Error(c, http.StatusBadRequest, "Invalid session ID")
		return
	}
	if err := h.service.DeleteSession(id); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Academic session successfully deleted", nil)
}
