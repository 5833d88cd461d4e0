package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"cep.backend/internal/domain/entities"
	domainerrors "cep.backend/internal/domain/errors"
	"cep.backend/internal/interfaces/http/response"
	"cep.backend/internal/usecases"
	"cep.backend/pkg/utils"
)

// InterviewHandler handles interview endpoints
type InterviewHandler struct {
	interviewUsecase *usecases.InterviewUsecase
}

// NewInterviewHandler creates a new interview handler
func NewInterviewHandler(interviewUsecase *usecases.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{interviewUsecase: interviewUsecase}
}

// Create schedules a new interview
// POST /api/interviews
func (h *InterviewHandler) Create(c *gin.Context) {
	var input entities.CreateInterviewInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Missing required fields").WithDetails(err.Error()))
		return
	}

	interview, err := h.interviewUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, interview)
}

// List returns interviews, optionally filtered by status and date
// GET /api/interviews?status=scheduled&date=2025-01-20
func (h *InterviewHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	params := utils.GetPaginationParams(page, limit)
	filter := entities.InterviewFilter{
		Status: entities.InterviewStatus(c.Query("status")),
		Date:   c.Query("date"),
	}

	interviews, total, err := h.interviewUsecase.List(c.Request.Context(), filter, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	if params.Limit == 0 {
		response.Success(c, http.StatusOK, interviews)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"data": interviews,
		"meta": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Get returns a single interview
// GET /api/interviews/:id
func (h *InterviewHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid interview ID"))
		return
	}

	interview, err := h.interviewUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, interview)
}

// Update edits an interview's schedule details
// PUT /api/interviews/:id
func (h *InterviewHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid interview ID"))
		return
	}

	var input entities.UpdateInterviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid request body").WithDetails(err.Error()))
		return
	}

	interview, err := h.interviewUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, interview)
}

// UpdateStatus moves an interview through its lifecycle
// PATCH /api/interviews/:id/status
func (h *InterviewHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid interview ID"))
		return
	}

	var input struct {
		Status entities.InterviewStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Status is required").WithDetails(err.Error()))
		return
	}

	interview, err := h.interviewUsecase.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, interview)
}

// Delete removes an interview
// DELETE /api/interviews/:id
func (h *InterviewHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid interview ID"))
		return
	}

	if err := h.interviewUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Interview deleted"})
}
