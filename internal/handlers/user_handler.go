package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/responses"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/services"
)

type UserHandler struct {
	base
	service services.UserService
}

func NewUserHandler(service services.UserService, dev bool) *UserHandler {
	return &UserHandler{base: base{dev: dev}, service: service}
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		responses.Error(c, http.StatusBadRequest, "Invalid user ID")
		return 0, false
	}
	return id, true
}

// @Summary      List users
// @Tags         Lecturers
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Router       /api/lecturers [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	users, err := h.service.ListUsers(limit, offset)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "fetching lecturers successful", users)
}

// @Summary      Get a user by id
// @Tags         Lecturers
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  responses.Envelope
// @Failure      404  {object}  responses.Envelope
// @Router       /api/lecturers/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := h.service.GetUserByID(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "fetching user successful", user)
}

type createLecturerRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// @Summary      Create a lecturer (admin)
// @Tags         Lecturers
// @Accept       json
// @Produce      json
// @Param        lecturer  body      createLecturerRequest  true  "Lecturer data"
// @Success      201       {object}  responses.Envelope
// @Failure      400       {object}  responses.Envelope
// @Router       /api/lecturers [post]
func (h *UserHandler) CreateLecturer(c *gin.Context) {
	var req createLecturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Kindly fill in the required field")
		return
	}
	user, err := h.service.CreateLecturer(req.FullName, req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusCreated, "Lecturer registration successful.", user)
}

type updateUserRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// @Summary      Update a user (admin)
// @Tags         Lecturers
// @Accept       json
// @Produce      json
// @Param        id      path      int                true  "User ID"
// @Param        update  body      updateUserRequest  true  "Fields to change"
// @Success      200     {object}  responses.Envelope
// @Failure      404     {object}  responses.Envelope
// @Router       /api/lecturers/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Error(c, http.StatusBadRequest, "Invalid data provided")
		return
	}
	user, err := h.service.UpdateUser(id, req.FullName, req.Email)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "User successfully updated", user)
}

// @Summary      Approve a pending user (admin)
// @Tags         Lecturers
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  responses.Envelope
// @Failure      404  {object}  responses.Envelope
// @Router       /api/lecturers/{id}/approve [patch]
func (h *UserHandler) Approve(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := h.service.Approve(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "User approved successfully", user)
}

// @Summary      Deny a pending user (admin)
// @Tags         Lecturers
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  responses.Envelope
// @Failure      404  {object}  responses.Envelope
// @Router       /api/lecturers/{id}/deny [patch]
func (h *UserHandler) Deny(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := h.service.Deny(id)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "User denied successfully", user)
}

// @Summary      Deactivate a user (admin, soft delete)
// @Tags         Lecturers
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  responses.Envelope
// @Failure      404  {object}  responses.Envelope
// @Router       /api/lecturers/{id}/deactivate [patch]
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.Deactivate(id); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "deleted successfully", nil)
}
