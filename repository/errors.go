package repository

import (
	"errors"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/utils"
	"gorm.io/gorm"
)

// dbError maps a gorm error onto the domain error kinds.
func dbError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFound(entity)
	case utils.IsUniqueViolation(err):
		return domain.Conflict(utils.TranslateDBError(err))
	default:
		return domain.StoreError(utils.TranslateDBError(err), err)
	}
}
