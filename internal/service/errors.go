package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"media-catalog-api/internal/response"
)

// EventRecorder counts created entities, implemented by metrics.Metrics
type EventRecorder interface {
	IncrementEntityCreated(entity string)
}

type noopRecorder struct{}

func (noopRecorder) IncrementEntityCreated(string) {}

func recorderOrNoop(r EventRecorder) EventRecorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}

// lookupError converts a repository read error into a NOT_FOUND or INTERNAL AppError
func lookupError(logger *zap.Logger, err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewNotFoundError(notFoundMsg, "")
	}
	logger.Error("Repository read failed", zap.String("context", notFoundMsg), zap.Error(err))
	return response.NewInternalError("Failed to load resource", err)
}

// writeError converts a repository write error, mapping unique violations to ALREADY_EXISTS
func writeError(logger *zap.Logger, err error, conflictMsg, internalMsg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return response.NewConflictError(conflictMsg, "")
	}
	logger.Error(internalMsg, zap.Error(err))
	return response.NewInternalError(internalMsg, err)
}
