package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"cep.backend/internal/domain/entities"
	domainerrors "cep.backend/internal/domain/errors"
	"cep.backend/internal/interfaces/http/middleware"
	"cep.backend/internal/interfaces/http/response"
	"cep.backend/internal/usecases"
	"cep.backend/pkg/utils"
)

// CandidateHandler handles candidate endpoints
type CandidateHandler struct {
	candidateUsecase *usecases.CandidateUsecase
}

// NewCandidateHandler creates a new candidate handler
func NewCandidateHandler(candidateUsecase *usecases.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{candidateUsecase: candidateUsecase}
}

// Create onboards a new candidate
// POST /api/candidates
func (h *CandidateHandler) Create(c *gin.Context) {
	var input entities.CreateCandidateInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Missing required fields").WithDetails(err.Error()))
		return
	}

	createdBy, _ := middleware.GetUserID(c)

	candidate, err := h.candidateUsecase.Onboard(c.Request.Context(), &input, createdBy)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, candidate)
}

// List returns candidates, newest first
// GET /api/candidates
func (h *CandidateHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	params := utils.GetPaginationParams(page, limit)

	candidates, total, err := h.candidateUsecase.List(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	if params.Limit == 0 {
		response.Success(c, http.StatusOK, candidates)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"data": candidates,
		"meta": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Get returns a single candidate
// GET /api/candidates/:id
func (h *CandidateHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid candidate ID"))
		return
	}

	candidate, err := h.candidateUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, candidate)
}

// Update replaces a candidate's mutable fields
// PUT /api/candidates/:id
func (h *CandidateHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid candidate ID"))
		return
	}

	var input entities.UpdateCandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid request body").WithDetails(err.Error()))
		return
	}

	candidate, err := h.candidateUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, candidate)
}

// UpdateStatus moves a candidate through the pipeline
// PATCH /api/candidates/:id/status
func (h *CandidateHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid candidate ID"))
		return
	}

	var input struct {
		Status entities.CandidateStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Status is required").WithDetails(err.Error()))
		return
	}

	candidate, err := h.candidateUsecase.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, candidate)
}

// Delete removes a candidate
// DELETE /api/candidates/:id
func (h *CandidateHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid candidate ID"))
		return
	}

	if err := h.candidateUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Candidate deleted"})
}
