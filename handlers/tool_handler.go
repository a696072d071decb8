package handlers

import (
	"github.com/gin-gonic/gin"

	"mcp-playground/helper"
	"mcp-playground/models"
	"mcp-playground/services"
)

type ToolHandler struct {
	toolService services.ToolService
	Helper      *helper.HTTPHelper
}

func NewToolHandler(toolService services.ToolService, h *helper.HTTPHelper) *ToolHandler {
	return &ToolHandler{toolService: toolService, Helper: h}
}

func (h *ToolHandler) GetTools(c *gin.Context) {
	var params models.ToolListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query parameters")
		return
	}
	params.Tags = append(params.Tags, c.QueryArray("tags[]")...)

	res, err := h.toolService.ListTools(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err, "Failed to fetch tools")
		return
	}

	h.Helper.SendList(c, res.Items, res.Total, res.Window.Page(), res.Window.Limit)
}

func (h *ToolHandler) GetTool(c *gin.Context) {
	tool, err := h.toolService.GetTool(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err, "Failed to fetch tool")
		return
	}

	h.Helper.SendSuccess(c, tool)
}

func (h *ToolHandler) CreateTool(c *gin.Context) {
	var req models.CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	tool, err := h.toolService.CreateTool(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err, "Failed to create tool")
		return
	}

	h.Helper.SendCreated(c, tool)
}

func (h *ToolHandler) UpdateTool(c *gin.Context) {
	var req models.UpdateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	tool, err := h.toolService.UpdateTool(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.Helper.SendError(c, err, "Failed to update tool")
		return
	}

	h.Helper.SendSuccess(c, tool)
}

func (h *ToolHandler) DeleteTool(c *gin.Context) {
	if err := h.toolService.DeleteTool(c.Request.Context(), c.Param("id")); err != nil {
		h.Helper.SendError(c, err, "Failed to delete tool")
		return
	}

	h.Helper.SendSuccess(c, models.MessageResponse{Message: "Tool deleted successfully"})
}
