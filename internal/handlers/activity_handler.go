package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/responses"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/services"
)

type ActivityHandler struct {
	base
	service services.ActivityService
}

func NewActivityHandler(service services.ActivityService, dev bool) *ActivityHandler {
	return &ActivityHandler{base: base{dev: dev}, service: service}
}

// @Summary      List recent activities
// @Tags         Activities
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Router       /api/activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	activities, err := h.service.List(limit, offset)
	if err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "Activities successfully fetched.", activities)
}

// @Summary      Delete all activities (admin)
// @Tags         Activities
// @Produce      json
// @Success      200  {object}  responses.Envelope
// @Router       /api/activities [delete]
func (h *ActivityHandler) DeleteAll(c *gin.Context) {
	if err := h.service.DeleteAll(); err != nil {
		h.fail(c, err)
		return
	}
	responses.Success(c, http.StatusOK, "all activities successfully deleted", nil)
}
