package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "cep.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response in the `{error, details?}` envelope
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = fromSentinel(err)
	}

	body := gin.H{"error": appErr.Message}
	if appErr.Details != "" {
		body["details"] = appErr.Details
	}
	c.JSON(appErr.Status, body)
}

// AbortError aborts the request with an error response (middleware use)
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

func fromSentinel(err error) *domainerrors.AppError {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("Already exists")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, "Invalid credentials", err)
	case errors.Is(err, domainerrors.ErrInvalidOTP):
		return domainerrors.BadRequest("Invalid or expired OTP")
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("Unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("Forbidden")
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.BadRequest("Invalid input")
	default:
		return domainerrors.InternalError(err)
	}
}
