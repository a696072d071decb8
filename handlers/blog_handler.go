package handlers

import (
	"github.com/gin-gonic/gin"

	"mcp-playground/helper"
	"mcp-playground/models"
	"mcp-playground/services"
)

type BlogHandler struct {
	blogService services.BlogService
	Helper      *helper.HTTPHelper
}

func NewBlogHandler(blogService services.BlogService, h *helper.HTTPHelper) *BlogHandler {
	return &BlogHandler{blogService: blogService, Helper: h}
}

func (h *BlogHandler) GetPosts(c *gin.Context) {
	var params models.BlogListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, "Invalid query parameters")
		return
	}

	res, err := h.blogService.ListPosts(c.Request.Context(), params)
	if err != nil {
		h.Helper.SendError(c, err, "Failed to fetch blog posts")
		return
	}

	h.Helper.SendList(c, res.Items, res.Total, res.Window.Page(), res.Window.Limit)
}

func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.blogService.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.Helper.SendError(c, err, "Failed to fetch blog post")
		return
	}

	h.Helper.SendSuccess(c, post)
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req models.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Invalid request body")
		return
	}

	post, err := h.blogService.CreatePost(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err, "Failed to create blog post")
		return
	}

	h.Helper.SendCreated(c, post)
}
