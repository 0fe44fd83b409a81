package dto

type PeriodQuery struct {
	Month int `form:"month" binding:"required,gte=1,lte=12"`
	Year  int `form:"year" binding:"required,gte=1"`
}

type GeneratePayoutsRequest struct {
	Month int `json:"month" binding:"required,gte=1,lte=12"`
	Year  int `json:"year" binding:"required,gte=1"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid"`
}
