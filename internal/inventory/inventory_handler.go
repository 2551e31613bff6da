package inventory

import (
	"net/http"

	"go-shopops/internal/shared/apperror"
	"go-shopops/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Issue(c *gin.Context) {
	var req IssuePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Issue(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListByRange(c *gin.Context) {
	resp, err := h.service.ListByRange(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListByTask(c *gin.Context) {
	resp, err := h.service.ListByTask(c.Request.Context(), c.Param("taskId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Void(c *gin.Context) {
	resp, err := h.service.Void(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Catalog(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.PriceCatalog(), nil)
}
