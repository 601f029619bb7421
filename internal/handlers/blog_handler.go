package handlers

import (
	"net/http"

	"storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService services.BlogService
}

func NewBlogHandler(blogService services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) ListPosts(c *gin.Context) {
	limit, offset := parsePagination(c)

	posts, total, err := h.blogService.ListPosts(true, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "total": total})
}

func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.blogService.GetPublishedPostBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}
