package delivery

import (
	"net/http"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/dto"
	"github.com/gin-gonic/gin"
)

type TeacherHandler struct {
	uc domain.TeacherUseCase
}

func NewTeacherHandler(r gin.IRouter, uc domain.TeacherUseCase) {
	h := &TeacherHandler{uc: uc}

	teachers := r.Group("/teachers")
	{
		teachers.GET("", h.GetAllTeachers)
		teachers.POST("", h.CreateTeacher)
		teachers.GET("/:id", h.GetTeacherByID)
		teachers.PUT("/:id", h.UpdateTeacher)
		teachers.DELETE("/:id", h.DeleteTeacher)
	}
}

func (h *TeacherHandler) CreateTeacher(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "CreateTeacher", "Failed to create teacher", err)
		return
	}

	teacher, err := h.uc.CreateTeacher(c.Request.Context(), dto.MapCreateTeacherRequestToTeacher(&req), req.CourseIDs)
	if err != nil {
		respondError(c, "CreateTeacher", "Failed to create teacher", err)
		return
	}
	respondData(c, http.StatusCreated, "CreateTeacher", teacher)
}

// GetAllTeachers lists teachers with their courses and this month's payout.
func (h *TeacherHandler) GetAllTeachers(c *gin.Context) {
	teachers, err := h.uc.GetAllTeachers(c.Request.Context())
	if err != nil {
		respondError(c, "GetAllTeachers", "Failed to get teachers", err)
		return
	}
	respondData(c, http.StatusOK, "GetAllTeachers", teachers)
}

func (h *TeacherHandler) GetTeacherByID(c *gin.Context) {
	teacher, err := h.uc.GetTeacherByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "GetTeacherByID", "Failed to get teacher", err)
		return
	}
	respondData(c, http.StatusOK, "GetTeacherByID", teacher)
}

func (h *TeacherHandler) UpdateTeacher(c *gin.Context) {
	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateTeacher", "Failed to update teacher", err)
		return
	}

	teacher, err := h.uc.UpdateTeacher(c.Request.Context(), dto.MapUpdateTeacherRequestToTeacher(c.Param("id"), &req), req.CourseIDs)
	if err != nil {
		respondError(c, "UpdateTeacher", "Failed to update teacher", err)
		return
	}
	respondData(c, http.StatusOK, "UpdateTeacher", teacher)
}

func (h *TeacherHandler) DeleteTeacher(c *gin.Context) {
	if err := h.uc.DeleteTeacher(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "DeleteTeacher", "Failed to delete teacher", err)
		return
	}
	respondMessage(c, "DeleteTeacher", "Teacher deleted successfully")
}
