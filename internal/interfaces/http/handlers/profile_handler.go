package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "cep.backend/internal/domain/errors"
	"cep.backend/internal/interfaces/http/middleware"
	"cep.backend/internal/interfaces/http/response"
	"cep.backend/internal/usecases"
)

// ProfileHandler serves the logged-in candidate's own profile
type ProfileHandler struct {
	candidateUsecase *usecases.CandidateUsecase
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(candidateUsecase *usecases.CandidateUsecase) *ProfileHandler {
	return &ProfileHandler{candidateUsecase: candidateUsecase}
}

// GetMe returns the candidate record matching the caller's email
// GET /api/profile/me
func (h *ProfileHandler) GetMe(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	profile, err := h.candidateUsecase.GetProfileByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Candidate profile not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}
