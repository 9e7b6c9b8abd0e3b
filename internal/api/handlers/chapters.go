package handlers

import (
	"errors"
	"net/http"

	"climate-pricing/internal/api/models"
	"climate-pricing/internal/content"

	"github.com/gin-gonic/gin"
)

// ChapterHandler serves the narrative course chapters
type ChapterHandler struct {
	library *content.Library
}

// NewChapterHandler creates a new chapter handler
func NewChapterHandler(library *content.Library) *ChapterHandler {
	return &ChapterHandler{library: library}
}

// ListChapters handles GET /api/v1/chapters
func (h *ChapterHandler) ListChapters(c *gin.Context) {
	infos, err := h.library.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CONTENT_LOAD_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"chapters": infos, "count": len(infos)})
}

// GetChapter handles GET /api/v1/chapters/:id
func (h *ChapterHandler) GetChapter(c *gin.Context) {
	chapter, err := h.library.Render(c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrChapterNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "CHAPTER_NOT_FOUND",
					Message: err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "CONTENT_LOAD_ERROR",
				Message: err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusOK, chapter)
}
