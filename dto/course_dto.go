package dto

import (
	"time"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/utils"
	"github.com/shopspring/decimal"
)

type CourseRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=120"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Price       string `json:"price" binding:"required,decimalstr"`
	Category    string `json:"category" binding:"omitempty,oneof=games robotics extracurricular curricular"`
	StartDate   string `json:"start_date" binding:"required,dateformat"`
	EndDate     string `json:"end_date" binding:"required,dateformat"`
}

func MapCourseRequestToCourse(id string, req *CourseRequest, loc *time.Location) *domain.Course {
	price, _ := decimal.NewFromString(req.Price)
	start, _ := utils.ParseDate(req.StartDate, loc)
	end, _ := utils.ParseDate(req.EndDate, loc)
	return &domain.Course{
		Base:        domain.Base{ID: id},
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Category:    req.Category,
		StartDate:   start,
		EndDate:     end,
	}
}
