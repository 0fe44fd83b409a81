package delivery

import (
	"net/http"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/dto"
	"github.com/gin-gonic/gin"
)

type StudentHandler struct {
	studUC domain.StudentUseCase
}

func NewStudentHandler(r gin.IRouter, studUC domain.StudentUseCase) {
	handler := &StudentHandler{studUC: studUC}

	students := r.Group("/students")
	{
		students.GET("", handler.GetAllStudents)
		students.POST("", handler.RegisterStudent)
		students.GET("/:id", handler.GetStudentByID)
		students.PUT("/:id", handler.UpdateStudent)
		students.DELETE("/:id", handler.DeleteStudent)
		students.POST("/:id/enrollments", handler.EnrollStudent)
	}
}

func (h *StudentHandler) RegisterStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "RegisterStudent", "Failed to register student", err)
		return
	}

	student, err := h.studUC.RegisterStudent(c.Request.Context(), dto.MapCreateStudentRequestToStudent(&req), req.CourseIDs, req.PaymentStatus)
	if err != nil {
		respondError(c, "RegisterStudent", "Failed to register student", err)
		return
	}
	respondData(c, http.StatusCreated, "RegisterStudent", student)
}

func (h *StudentHandler) GetAllStudents(c *gin.Context) {
	students, err := h.studUC.GetAllStudents(c.Request.Context())
	if err != nil {
		respondError(c, "GetAllStudents", "Failed to get students", err)
		return
	}
	respondData(c, http.StatusOK, "GetAllStudents", students)
}

func (h *StudentHandler) GetStudentByID(c *gin.Context) {
	student, err := h.studUC.GetStudentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "GetStudentByID", "Failed to get student", err)
		return
	}
	respondData(c, http.StatusOK, "GetStudentByID", student)
}

func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateStudent", "Failed to update student", err)
		return
	}

	student, err := h.studUC.UpdateStudent(c.Request.Context(), dto.MapUpdateStudentRequestToStudent(c.Param("id"), &req))
	if err != nil {
		respondError(c, "UpdateStudent", "Failed to update student", err)
		return
	}
	respondData(c, http.StatusOK, "UpdateStudent", student)
}

func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	if err := h.studUC.DeleteStudent(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "DeleteStudent", "Failed to delete student", err)
		return
	}
	respondMessage(c, "DeleteStudent", "Student deleted successfully")
}

func (h *StudentHandler) EnrollStudent(c *gin.Context) {
	var req dto.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "EnrollStudent", "Failed to enroll student", err)
		return
	}

	enrollment, err := h.studUC.EnrollStudent(c.Request.Context(), c.Param("id"), req.CourseID, req.PaymentStatus)
	if err != nil {
		respondError(c, "EnrollStudent", "Failed to enroll student", err)
		return
	}
	respondData(c, http.StatusCreated, "EnrollStudent", enrollment)
}
