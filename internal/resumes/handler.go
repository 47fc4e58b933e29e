package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/export"
	"resume-builder/resume/model"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resume", h.get)
	rg.PUT("/resume", h.put)
	rg.DELETE("/resume", h.delete)
	rg.GET("/resume/suggestions", h.suggestions)
	rg.GET("/resume/export/text", h.exportText)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	doc, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no saved resume", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to load resume", nil)
		return
	}

	respond.OK(c, doc)
}

func (h *Handler) put(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var doc model.Resume
	if err := c.ShouldBindJSON(&doc); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	saved, err := h.Svc.Save(c.Request.Context(), userID, doc)
	if err != nil {
		if errors.Is(err, ErrInvalidTemplateStyle) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to save resume", nil)
		return
	}

	respond.OK(c, saved)
}

func (h *Handler) delete(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	if err := h.Svc.Delete(c.Request.Context(), userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no saved resume", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to delete resume", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) suggestions(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	suggestions, err := h.Svc.Suggestions(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no saved resume", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to analyze resume", nil)
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}

	respond.OK(c, gin.H{"suggestions": suggestions})
}

func (h *Handler) exportText(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	doc, err := h.Svc.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "no saved resume", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal", "failed to export resume", nil)
		return
	}

	filename := export.TextFilename(doc)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(export.ToText(doc)))
}
