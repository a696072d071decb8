package handlers

import (
	"github.com/gin-gonic/gin"

	"mcp-playground/helper"
	"mcp-playground/models"
	"mcp-playground/panel"
	"mcp-playground/services"
)

type PlaygroundHandler struct {
	playgroundService services.PlaygroundService
	Helper            *helper.HTTPHelper
}

func NewPlaygroundHandler(playgroundService services.PlaygroundService, h *helper.HTTPHelper) *PlaygroundHandler {
	return &PlaygroundHandler{playgroundService: playgroundService, Helper: h}
}

func (h *PlaygroundHandler) GetStarterPrompts(c *gin.Context) {
	h.Helper.SendSuccess(c, panel.StarterPrompts())
}

func (h *PlaygroundHandler) CreateSession(c *gin.Context) {
	session, err := h.playgroundService.CreateSession(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err, "Failed to create playground session")
		return
	}

	h.Helper.SendCreated(c, session)
}

func (h *PlaygroundHandler) GetSession(c *gin.Context) {
	session, err := h.playgroundService.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err, "Failed to fetch playground session")
		return
	}

	h.Helper.SendSuccess(c, session)
}

// SendMessage accepts the message and returns the pending task; poll the
// task or the session for the reply.
func (h *PlaygroundHandler) SendMessage(c *gin.Context) {
	var req models.SendPlaygroundMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	task, err := h.playgroundService.SendMessage(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err, "Failed to send message")
		return
	}

	h.Helper.SendAccepted(c, task)
}

func (h *PlaygroundHandler) GetTask(c *gin.Context) {
	task, err := h.playgroundService.GetTask(c.Request.Context(), c.Param("id"), c.Param("task_id"))
	if err != nil {
		h.Helper.SendError(c, err, "Failed to fetch task")
		return
	}

	h.Helper.SendSuccess(c, task)
}

func (h *PlaygroundHandler) UpdateConfig(c *gin.Context) {
	var req panel.ConfigView
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	session, err := h.playgroundService.UpdateConfig(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err, "Failed to update playground config")
		return
	}

	h.Helper.SendSuccess(c, session)
}
