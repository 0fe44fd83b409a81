package service

import (
	"context"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/metrics"
	"github.com/enzoobispoo/EduSystem/utils"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type payoutGenerator struct {
	finance  domain.FinanceRepository
	teachers domain.TeacherRepository
	nominal  decimal.Decimal
}

// NewPayoutGenerator builds the generator. nominal is paid by the bulk run to per-hour
// teachers without an hourly rate; zero disables it. Single-teacher generation never uses it.
func NewPayoutGenerator(finance domain.FinanceRepository, teachers domain.TeacherRepository, nominal decimal.Decimal) domain.PayoutGenerator {
	return &payoutGenerator{finance: finance, teachers: teachers, nominal: nominal}
}

// PlanPayout applies the payout rule to one teacher. fallback is the amount for a per-hour
// teacher without a rate. It returns nil when the rule yields no payout.
func PlanPayout(teacher domain.Teacher, period utils.Period, fallback decimal.Decimal) *domain.Payout {
	payout := &domain.Payout{
		TeacherID: teacher.ID,
		Month:     period.Month,
		Year:      period.Year,
		Amount:    decimal.Zero,
		Status:    domain.PaymentPending,
	}

	switch teacher.PayoutType {
	case domain.PayoutPerHour:
		if teacher.HourlyRate != nil && teacher.HourlyRate.IsPositive() {
			hours := domain.DefaultHoursWorked
			payout.HoursWorked = &hours
			payout.Amount = teacher.HourlyRate.Mul(decimal.NewFromInt(int64(hours)))
		} else {
			payout.Amount = fallback
		}
		if !payout.Amount.IsPositive() {
			return nil
		}
	case domain.PayoutPerStudent:
		// placeholder until per-student reconciliation exists
		served := 0
		payout.StudentsServed = &served
	default:
		return nil
	}
	return payout
}

// GenerateForTeacher creates the teacher's payout for period. A per-hour teacher
// without a rate gets none.
func (g *payoutGenerator) GenerateForTeacher(ctx context.Context, teacher domain.Teacher, period utils.Period) (*domain.Payout, bool, error) {
	if err := period.Validate(); err != nil {
		return nil, false, domain.Invalid(err.Error())
	}
	return g.generate(ctx, teacher, period, decimal.Zero)
}

func (g *payoutGenerator) generate(ctx context.Context, teacher domain.Teacher, period utils.Period, fallback decimal.Decimal) (*domain.Payout, bool, error) {
	payout := PlanPayout(teacher, period, fallback)
	if payout == nil {
		metrics.PayoutsGenerated.WithLabelValues("skipped").Inc()
		return nil, false, nil
	}

	created, err := g.finance.CreatePayoutIfAbsent(ctx, payout)
	if err != nil {
		return nil, false, err
	}
	if !created {
		metrics.PayoutsGenerated.WithLabelValues("skipped").Inc()
		return nil, false, nil
	}

	metrics.PayoutsGenerated.WithLabelValues("created").Inc()
	return payout, true, nil
}

func (g *payoutGenerator) GenerateForActiveTeachers(ctx context.Context, period utils.Period) (*domain.PayoutBatch, error) {
	if err := period.Validate(); err != nil {
		return nil, domain.Invalid(err.Error())
	}

	teachers, err := g.teachers.GetActiveTeachers(ctx)
	if err != nil {
		return nil, err
	}
	if len(teachers) == 0 {
		return nil, domain.ErrNoEligibleTeacher
	}

	batch := &domain.PayoutBatch{
		Period:  period,
		Created: []domain.Payout{},
		Skipped: []string{},
	}
	for _, teacher := range teachers {
		payout, created, err := g.generate(ctx, teacher, period, g.nominal)
		if err != nil {
			log.Error().Err(err).Str("teacher", teacher.ID).Str("period", period.String()).Msg("payout generation stopped")
			return nil, err
		}
		if !created {
			batch.Skipped = append(batch.Skipped, teacher.ID)
			continue
		}
		payout.Teacher = &teacher
		batch.Created = append(batch.Created, *payout)
	}

	log.Info().
		Str("period", period.String()).
		Int("created", len(batch.Created)).
		Int("skipped", len(batch.Skipped)).
		Msg("payout generation finished")
	return batch, nil
}
