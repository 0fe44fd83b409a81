package delivery

import (
	"net/http"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/dto"
	"github.com/enzoobispoo/EduSystem/utils"
	"github.com/gin-gonic/gin"
)

type FinanceHandler struct {
	uc domain.FinanceUseCase
}

func NewFinanceHandler(r gin.IRouter, uc domain.FinanceUseCase) {
	h := &FinanceHandler{uc: uc}

	finance := r.Group("/finance")
	{
		finance.GET("/stats", h.GetStats)
		finance.GET("/revenues", h.GetRevenues)
		finance.PUT("/revenues/:id", h.UpdateEnrollmentStatus)
		finance.GET("/payouts", h.GetPayouts)
		finance.PUT("/payouts/:id", h.UpdatePayoutStatus)
		finance.POST("/payouts/generate", h.GeneratePayouts)
	}
}

func bindPeriod(c *gin.Context, function string) (utils.Period, bool) {
	var q dto.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, function, "Invalid period", err)
		return utils.Period{}, false
	}
	return utils.Period{Month: q.Month, Year: q.Year}, true
}

func (h *FinanceHandler) GetStats(c *gin.Context) {
	period, ok := bindPeriod(c, "GetStats")
	if !ok {
		return
	}
	stats, err := h.uc.GetStats(c.Request.Context(), period)
	if err != nil {
		respondError(c, "GetStats", "Failed to compute financial statistics", err)
		return
	}
	respondData(c, http.StatusOK, "GetStats", stats)
}

func (h *FinanceHandler) GetRevenues(c *gin.Context) {
	period, ok := bindPeriod(c, "GetRevenues")
	if !ok {
		return
	}
	revenues, err := h.uc.GetRevenues(c.Request.Context(), period)
	if err != nil {
		respondError(c, "GetRevenues", "Failed to get revenues", err)
		return
	}
	respondData(c, http.StatusOK, "GetRevenues", revenues)
}

func (h *FinanceHandler) GetPayouts(c *gin.Context) {
	period, ok := bindPeriod(c, "GetPayouts")
	if !ok {
		return
	}
	payouts, err := h.uc.GetPayouts(c.Request.Context(), period)
	if err != nil {
		respondError(c, "GetPayouts", "Failed to get payouts", err)
		return
	}
	respondData(c, http.StatusOK, "GetPayouts", payouts)
}

func (h *FinanceHandler) UpdateEnrollmentStatus(c *gin.Context) {
	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateEnrollmentStatus", "Failed to update enrollment status", err)
		return
	}
	enrollment, err := h.uc.UpdateEnrollmentStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, "UpdateEnrollmentStatus", "Failed to update enrollment status", err)
		return
	}
	respondData(c, http.StatusOK, "UpdateEnrollmentStatus", enrollment)
}

func (h *FinanceHandler) UpdatePayoutStatus(c *gin.Context) {
	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdatePayoutStatus", "Failed to update payout status", err)
		return
	}
	payout, err := h.uc.UpdatePayoutStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, "UpdatePayoutStatus", "Failed to update payout status", err)
		return
	}
	respondData(c, http.StatusOK, "UpdatePayoutStatus", payout)
}

// GeneratePayouts creates the period's pending payout for every active teacher
// that does not have one yet.
func (h *FinanceHandler) GeneratePayouts(c *gin.Context) {
	var req dto.GeneratePayoutsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "GeneratePayouts", "Failed to generate payouts", err)
		return
	}
	batch, err := h.uc.GeneratePayouts(c.Request.Context(), utils.Period{Month: req.Month, Year: req.Year})
	if err != nil {
		respondError(c, "GeneratePayouts", "Failed to generate payouts", err)
		return
	}
	respondData(c, http.StatusCreated, "GeneratePayouts", batch)
}
