package handlers

import (
	"github.com/gin-gonic/gin"

	"mcp-playground/helper"
	"mcp-playground/models"
	"mcp-playground/services"
)

type DocumentationHandler struct {
	docService services.DocumentationService
	Helper     *helper.HTTPHelper
}

func NewDocumentationHandler(docService services.DocumentationService, h *helper.HTTPHelper) *DocumentationHandler {
	return &DocumentationHandler{docService: docService, Helper: h}
}

func (h *DocumentationHandler) GetSections(c *gin.Context) {
	var params models.DocumentationListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query parameters")
		return
	}

	res, err := h.docService.ListSections(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err, "Failed to fetch documentation")
		return
	}

	h.Helper.SendList(c, res.Items, res.Total, res.Window.Page(), res.Window.Limit)
}

func (h *DocumentationHandler) GetSection(c *gin.Context) {
	doc, err := h.docService.GetSection(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Helper.SendError(c, err, "Failed to fetch documentation section")
		return
	}

	h.Helper.SendSuccess(c, doc)
}

func (h *DocumentationHandler) GetCategories(c *gin.Context) {
	categories, err := h.docService.Categories(c.Request.Context())
	if err != nil {
		h.Helper.SendError(c, err, "Failed to fetch documentation categories")
		return
	}

	h.Helper.SendSuccess(c, categories)
}
