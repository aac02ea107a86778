package adaptor

import (
	"errors"
	"net/http"

	"shop-portal/internal/usecase"
	"shop-portal/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service errors onto HTTP responses. Services
// return sentinel errors wrapped with context, so matching runs on
// errors.Is rather than message text.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	if ve, ok := usecase.AsValidationError(err); ok {
		log.Warn(operation+" validation failed",
			zap.Any("errors", ve.Fields),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", ve.Fields)
		return
	}

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" forbidden",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, "You do not have permission to perform this action")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials",
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, "Invalid credentials")

	case errors.Is(err, usecase.ErrIntegrity):
		log.Warn(operation+" blocked by referencing records",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - already exists",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
