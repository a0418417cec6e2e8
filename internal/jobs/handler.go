package jobs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/server/middleware"
	"jobboard-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.list)
	rg.GET("/jobs/:id", h.get)
	rg.POST("/jobs", h.post)
	rg.POST("/jobs/:id/apply", h.apply)
	rg.GET("/applications", h.listApplications)
}

func (h *Handler) list(c *gin.Context) {
	limit, offset := pagination(c)

	items, err := h.Svc.ListOpen(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list jobs", nil)
		return
	}

	out := make([]JobResponse, 0, len(items))
	for _, job := range items {
		out = append(out, toJobResponse(job))
	}
	respond.JSON(c, http.StatusOK, gin.H{"items": out})
}

func (h *Handler) get(c *gin.Context) {
	job, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch job", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, toJobResponse(job))
}

type postJobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

func (h *Handler) post(c *gin.Context) {
	var req postJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	job, err := h.Svc.Post(c.Request.Context(), req.Title, req.Company, req.Location, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "title and company are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to post job", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toJobResponse(job))
}

type applyRequest struct {
	ResumeID string `json:"resumeId"`
}

func (h *Handler) apply(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	application, err := h.Svc.Apply(c.Request.Context(), userID, c.Param("id"), req.ResumeID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
		case errors.Is(err, ErrJobClosed):
			respond.Error(c, http.StatusConflict, "job_closed", "job is no longer accepting applications", nil)
		case errors.Is(err, ErrAlreadyApplied):
			respond.Error(c, http.StatusConflict, "already_applied", "you already applied to this job", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "resumeId must reference one of your resumes", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to apply", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, toApplicationResponse(application))
}

func (h *Handler) listApplications(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	limit, offset := pagination(c)

	items, err := h.Svc.ListApplications(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		return
	}

	out := make([]ApplicationResponse, 0, len(items))
	for _, application := range items {
		out = append(out, toApplicationResponse(application))
	}
	respond.JSON(c, http.StatusOK, gin.H{"items": out})
}

func pagination(c *gin.Context) (int, int) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	return limit, offset
}
