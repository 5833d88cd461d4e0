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

// CompanyHandler handles company endpoints
type CompanyHandler struct {
	companyUsecase *usecases.CompanyUsecase
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyUsecase *usecases.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{companyUsecase: companyUsecase}
}

// Create registers a new company
// POST /api/companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var input entities.CompanyInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Missing required fields").WithDetails(err.Error()))
		return
	}

	company, err := h.companyUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, company)
}

// List returns companies, newest first
// GET /api/companies
func (h *CompanyHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	params := utils.GetPaginationParams(page, limit)

	companies, total, err := h.companyUsecase.List(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	if params.Limit == 0 {
		response.Success(c, http.StatusOK, companies)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"data": companies,
		"meta": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Get returns a single company
// GET /api/companies/:id
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid company ID"))
		return
	}

	company, err := h.companyUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, company)
}

// Update replaces a company's fields
// PUT /api/companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid company ID"))
		return
	}

	var input entities.CompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid request body").WithDetails(err.Error()))
		return
	}

	company, err := h.companyUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, company)
}

// Delete removes a company
// DELETE /api/companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid company ID"))
		return
	}

	if err := h.companyUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Company deleted"})
}
