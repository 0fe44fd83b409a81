package utils

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const UniqueViolation = "23505"

// IsUniqueViolation reports whether err is a postgres unique constraint failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == UniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// TranslateDBError turns a database error into a message fit for an API response.
func TranslateDBError(err error) string {
	if err == nil {
		return ""
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case UniqueViolation:
			switch {
			case strings.Contains(pgErr.ConstraintName, "email"):
				return "Email already exists"
			case strings.Contains(pgErr.ConstraintName, "national_id"):
				return "National ID already exists"
			case strings.Contains(pgErr.ConstraintName, "idx_enrollment_student_course"):
				return "Student is already enrolled in this course"
			case strings.Contains(pgErr.ConstraintName, "idx_payout_teacher_period"):
				return "Payout already exists for this period"
			}
			return "Duplicate value, please use another"
		case "23503":
			return "This record is referenced by another table"
		case "23502":
			return "Some required fields are missing"
		case "22P02":
			return "Invalid data format"
		case "42703":
			return "Column not found in database"
		}
		return "A database error occurred"
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "Record not found"
	}

	lowerErr := strings.ToLower(err.Error())
	if strings.Contains(lowerErr, "context deadline exceeded") {
		return "Request timeout"
	}
	if strings.Contains(lowerErr, "context canceled") {
		return "Request was cancelled"
	}

	return err.Error()
}
