package delivery

import (
	"errors"
	"net/http"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/utils"
	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes the failure envelope. Store failures never leak details.
func respondError(c *gin.Context, function, message string, err error) {
	name := utils.GetAPIHitter(c)
	status := statusFor(err)
	utils.PrintLogInfo(&name, status, function, &err)

	errMsg := "internal server error"
	var appErr *domain.AppError
	if status != http.StatusInternalServerError && errors.As(err, &appErr) {
		errMsg = appErr.Message
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   errMsg,
		"message": message,
	})
}

func respondBindError(c *gin.Context, function, message string, err error) {
	name := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&name, http.StatusBadRequest, function, &err)
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   utils.TranslateValidationError(err),
		"message": message,
	})
}

func respondData(c *gin.Context, status int, function string, data interface{}) {
	name := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&name, status, function, nil)
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c *gin.Context, function, message string) {
	name := utils.GetAPIHitter(c)
	utils.PrintLogInfo(&name, http.StatusOK, function, nil)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}
