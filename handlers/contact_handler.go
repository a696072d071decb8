package handlers

import (
	"github.com/gin-gonic/gin"

	"mcp-playground/helper"
	"mcp-playground/models"
	"mcp-playground/services"
)

type ContactHandler struct {
	contactService services.ContactService
	Helper         *helper.HTTPHelper
}

func NewContactHandler(contactService services.ContactService, h *helper.HTTPHelper) *ContactHandler {
	return &ContactHandler{contactService: contactService, Helper: h}
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req models.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.contactService.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err, "Failed to submit contact message. Please try again later.")
		return
	}

	h.Helper.SendCreated(c, receipt)
}

// GetMessages lists submissions for the support inbox.
func (h *ContactHandler) GetMessages(c *gin.Context) {
	var params models.ContactListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query parameters")
		return
	}

	res, err := h.contactService.ListMessages(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err, "Failed to fetch contact messages")
		return
	}

	h.Helper.SendList(c, res.Items, res.Total, res.Window.Page(), res.Window.Limit)
}

func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	msg, err := h.contactService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.Helper.SendError(c, err, "Failed to update contact message")
		return
	}

	h.Helper.SendSuccess(c, msg)
}
