package handler

import (
	"errors"
	"log"
	"net/http"

	apperrors "humanness-tasks/internal/errors"
	"humanness-tasks/pkg/response"

	"github.com/gin-gonic/gin"
)

// statusFor maps a service error to its HTTP status. Unknown errors map to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrRecordingTooShort),
		errors.Is(err, apperrors.ErrRecordingTooLong),
		errors.Is(err, apperrors.ErrNoiseTooHigh),
		errors.Is(err, apperrors.ErrNoiseTestRequired),
		errors.Is(err, apperrors.ErrQualityChecksIncomplete):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrAlreadyRecording),
		errors.Is(err, apperrors.ErrNotRecording),
		errors.Is(err, apperrors.ErrRecordingNotValid),
		errors.Is(err, apperrors.ErrWrongScreen),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrNoPreviousScreen):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err using the standard envelope.
func respondError(c *gin.Context, err error) {
	switch status := statusFor(err); status {
	case http.StatusInternalServerError:
		log.Printf("Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		response.InternalError(c)
	case http.StatusUnprocessableEntity:
		response.UnprocessableEntity(c, err.Error())
	case http.StatusConflict:
		response.Conflict(c, err.Error())
	case http.StatusNotFound:
		response.NotFound(c, err.Error())
	case http.StatusServiceUnavailable:
		response.ServiceUnavailable(c, err.Error())
	default:
		response.Error(c, status, err.Error())
	}
}

// respondAdvisory writes an advisory failure together with the state the
// client should render, such as a rejected recording or a noisy test result.
// A nil data falls back to a plain error response.
func respondAdvisory[T any](c *gin.Context, err error, data *T) {
	if data == nil || statusFor(err) != http.StatusUnprocessableEntity {
		respondError(c, err)
		return
	}
	response.ErrorWithData(c, http.StatusUnprocessableEntity, err.Error(), data)
}
