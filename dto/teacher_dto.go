package dto

import (
	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/shopspring/decimal"
)

// Rates travel as strings so cents are never rounded through float64.
type CreateTeacherRequest struct {
	Name        string   `json:"name" binding:"required,min=3,max=100"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone" binding:"omitempty,max=20"`
	NationalID  string   `json:"national_id" binding:"required,min=5,max=20"`
	PayoutType  string   `json:"payout_type" binding:"omitempty,oneof=per_hour per_student"`
	HourlyRate  *string  `json:"hourly_rate" binding:"omitempty,decimalstr"`
	StudentRate *string  `json:"student_rate" binding:"omitempty,decimalstr"`
	CourseIDs   []string `json:"course_ids" binding:"omitempty,dive,uuid"`
}

type UpdateTeacherRequest struct {
	Name        string   `json:"name" binding:"required,min=3,max=100"`
	Email       string   `json:"email" binding:"required,email"`
	Phone       string   `json:"phone" binding:"omitempty,max=20"`
	NationalID  string   `json:"national_id" binding:"required,min=5,max=20"`
	PayoutType  string   `json:"payout_type" binding:"omitempty,oneof=per_hour per_student"`
	HourlyRate  *string  `json:"hourly_rate" binding:"omitempty,decimalstr"`
	StudentRate *string  `json:"student_rate" binding:"omitempty,decimalstr"`
	Status      string   `json:"status" binding:"omitempty,oneof=active inactive"`
	CourseIDs   []string `json:"course_ids" binding:"omitempty,dive,uuid"`
}

func MapCreateTeacherRequestToTeacher(req *CreateTeacherRequest) *domain.Teacher {
	return &domain.Teacher{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		NationalID:  req.NationalID,
		PayoutType:  req.PayoutType,
		HourlyRate:  parseAmount(req.HourlyRate),
		StudentRate: parseAmount(req.StudentRate),
	}
}

func MapUpdateTeacherRequestToTeacher(id string, req *UpdateTeacherRequest) *domain.Teacher {
	return &domain.Teacher{
		Base:        domain.Base{ID: id},
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		NationalID:  req.NationalID,
		PayoutType:  req.PayoutType,
		HourlyRate:  parseAmount(req.HourlyRate),
		StudentRate: parseAmount(req.StudentRate),
		Status:      req.Status,
	}
}

// parseAmount reads an already validated decimal string, nil when absent.
func parseAmount(s *string) *decimal.Decimal {
	if s == nil || *s == "" {
		return nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return nil
	}
	return &d
}
