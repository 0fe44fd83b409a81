package dto

import (
	"github.com/enzoobispoo/EduSystem/domain"
)

type CreateStudentRequest struct {
	Name          string   `json:"name" binding:"required,min=3,max=100"`
	Email         string   `json:"email" binding:"required,email"`
	Phone         string   `json:"phone" binding:"omitempty,max=20"`
	NationalID    string   `json:"national_id" binding:"required,min=5,max=20"`
	CourseIDs     []string `json:"course_ids" binding:"omitempty,dive,uuid"`
	PaymentStatus string   `json:"payment_status" binding:"omitempty,oneof=pending paid"`
}

type UpdateStudentRequest struct {
	Name       string `json:"name" binding:"required,min=3,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"omitempty,max=20"`
	NationalID string `json:"national_id" binding:"required,min=5,max=20"`
	Status     string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type EnrollStudentRequest struct {
	CourseID      string `json:"course_id" binding:"required,uuid"`
	PaymentStatus string `json:"payment_status" binding:"omitempty,oneof=pending paid"`
}

func MapCreateStudentRequestToStudent(req *CreateStudentRequest) *domain.Student {
	return &domain.Student{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		NationalID: req.NationalID,
	}
}

func MapUpdateStudentRequestToStudent(id string, req *UpdateStudentRequest) *domain.Student {
	return &domain.Student{
		Base:       domain.Base{ID: id},
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		NationalID: req.NationalID,
		Status:     req.Status,
	}
}
