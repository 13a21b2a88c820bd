package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/catwiki/catwiki-api/internal/application"
	"github.com/catwiki/catwiki-api/internal/domain/entity"
	"github.com/catwiki/catwiki-api/pkg/response"
)

// MapError translates a domain or application failure into transport
// status, message and optional details. Anything unrecognized maps to
// a generic 500; the original error is for the server log only.
func MapError(err error) (status int, message string, details interface{}) {
	var (
		emailErr    *entity.InvalidEmailError
		passwordErr *entity.InvalidPasswordError
		idErr       *entity.InvalidUserIDError
		existsErr   *entity.UserAlreadyExistsError
		notFoundErr *entity.UserNotFoundError
	)

	switch {
	case errors.As(err, &emailErr):
		return http.StatusBadRequest, emailErr.Error(), map[string]string{"reason": emailErr.Reason}
	case errors.As(err, &passwordErr):
		return http.StatusBadRequest, passwordErr.Error(), map[string]string{"reason": passwordErr.Reason}
	case errors.As(err, &idErr):
		return http.StatusBadRequest, idErr.Error(), map[string]string{"reason": idErr.Reason}
	case errors.As(err, &existsErr):
		return http.StatusConflict, existsErr.Error(), map[string]string{"email": existsErr.Email}
	case errors.Is(err, application.ErrInvalidCredentials):
		// Never reveals which factor failed.
		return http.StatusUnauthorized, "invalid credentials", nil
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error(), map[string]string{"id": notFoundErr.ID}
	default:
		return http.StatusInternalServerError, "internal server error", nil
	}
}

// writeError applies MapError and writes the envelope, logging
// unexpected failures server-side only.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	status, message, details := MapError(err)
	if status == http.StatusInternalServerError && logger != nil {
		logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error("unexpected error")
	}
	response.Fail(c, status, message, details)
}
