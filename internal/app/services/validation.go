package services

import (
	"strings"

	"github.com/yigit/wish2work/internal/pkg/apperrors"
)

// requireText rejects empty or whitespace-only values
func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(field, field+" cannot be empty")
	}
	return nil
}

// requireID rejects non-positive ids
func requireID(field string, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError(field, field+" must be positive")
	}
	return nil
}
