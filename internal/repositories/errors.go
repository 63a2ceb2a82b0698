package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"melodia/internal/apperrors"
)

// translateStoreError maps driver-level constraint failures onto the shared
// taxonomy. GORM is opened with TranslateError, so both the postgres and
// sqlite drivers surface constraint violations as the gorm sentinels checked
// here; the message checks cover driver versions that predate translation.
// Anything else passes through unchanged for the handler boundary to treat
// as internal.
func translateStoreError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		strings.Contains(err.Error(), "FOREIGN KEY constraint"),
		strings.Contains(err.Error(), "violates foreign key constraint"):
		return fmt.Errorf("%w: referenced record does not exist", apperrors.ErrIntegrity)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(err.Error(), "UNIQUE constraint failed"),
		strings.Contains(err.Error(), "duplicate key value"):
		return fmt.Errorf("%w: duplicate value", apperrors.ErrIntegrity)
	default:
		return err
	}
}
