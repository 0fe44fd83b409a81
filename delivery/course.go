package delivery

import (
	"net/http"
	"time"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/dto"
	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	uc  domain.CourseUseCase
	loc *time.Location
}

func NewCourseHandler(r gin.IRouter, uc domain.CourseUseCase, loc *time.Location) {
	h := &CourseHandler{uc: uc, loc: loc}

	courses := r.Group("/courses")
	{
		courses.GET("", h.GetAllCourses)
		courses.POST("", h.CreateCourse)
		courses.GET("/:id", h.GetCourseByID)
		courses.PUT("/:id", h.UpdateCourse)
		courses.DELETE("/:id", h.DeleteCourse)
	}
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "CreateCourse", "Failed to create course", err)
		return
	}

	course, err := h.uc.CreateCourse(c.Request.Context(), dto.MapCourseRequestToCourse("", &req, h.loc))
	if err != nil {
		respondError(c, "CreateCourse", "Failed to create course", err)
		return
	}
	respondData(c, http.StatusCreated, "CreateCourse", course)
}

func (h *CourseHandler) GetAllCourses(c *gin.Context) {
	courses, err := h.uc.GetAllCourses(c.Request.Context())
	if err != nil {
		respondError(c, "GetAllCourses", "Failed to get courses", err)
		return
	}
	respondData(c, http.StatusOK, "GetAllCourses", courses)
}

func (h *CourseHandler) GetCourseByID(c *gin.Context) {
	course, err := h.uc.GetCourseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "GetCourseByID", "Failed to get course", err)
		return
	}
	respondData(c, http.StatusOK, "GetCourseByID", course)
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req dto.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateCourse", "Failed to update course", err)
		return
	}

	course, err := h.uc.UpdateCourse(c.Request.Context(), dto.MapCourseRequestToCourse(c.Param("id"), &req, h.loc))
	if err != nil {
		respondError(c, "UpdateCourse", "Failed to update course", err)
		return
	}
	respondData(c, http.StatusOK, "UpdateCourse", course)
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	if err := h.uc.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "DeleteCourse", "Failed to delete course", err)
		return
	}
	respondMessage(c, "DeleteCourse", "Course deleted successfully")
}
