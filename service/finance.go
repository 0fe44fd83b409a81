package service

import (
	"context"
	"time"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/utils"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

type financeService struct {
	repo      domain.FinanceRepository
	generator domain.PayoutGenerator
	events    domain.EventPublisher
	loc       *time.Location
}

func NewFinanceService(repo domain.FinanceRepository, generator domain.PayoutGenerator, events domain.EventPublisher, loc *time.Location) domain.FinanceUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &financeService{repo: repo, generator: generator, events: events, loc: loc}
}

// PeriodRevenue sums the course price of paid enrollments made inside the period.
// Attribution follows the enrollment date, not the payment date.
func (s *financeService) PeriodRevenue(ctx context.Context, period utils.Period) (decimal.Decimal, error) {
	if err := period.Validate(); err != nil {
		return decimal.Zero, domain.Invalid(err.Error())
	}
	from, to := period.Bounds(s.loc)
	enrollments, err := s.repo.GetEnrollmentsBetween(ctx, from, to, domain.PaymentPaid)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, e := range enrollments {
		if e.Course != nil {
			total = total.Add(e.Course.Price)
		}
	}
	return total, nil
}

// PeriodExpense sums the paid payouts recorded for exactly (month, year).
func (s *financeService) PeriodExpense(ctx context.Context, period utils.Period) (decimal.Decimal, error) {
	if err := period.Validate(); err != nil {
		return decimal.Zero, domain.Invalid(err.Error())
	}
	payouts, err := s.repo.GetPayoutsForPeriod(ctx, period.Month, period.Year, domain.PaymentPaid)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range payouts {
		total = total.Add(p.Amount)
	}
	return total, nil
}

func (s *financeService) GetStats(ctx context.Context, period utils.Period) (*domain.FinancialStats, error) {
	if err := period.Validate(); err != nil {
		return nil, domain.Invalid(err.Error())
	}

	revenue, err := s.PeriodRevenue(ctx, period)
	if err != nil {
		return nil, err
	}
	expense, err := s.PeriodExpense(ctx, period)
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountPayouts(ctx, period.Month, period.Year, domain.PaymentPending)
	if err != nil {
		return nil, err
	}
	paid, err := s.repo.CountPayouts(ctx, period.Month, period.Year, domain.PaymentPaid)
	if err != nil {
		return nil, err
	}
	active, err := s.repo.CountActiveStudents(ctx)
	if err != nil {
		return nil, err
	}
	previous, err := s.PeriodRevenue(ctx, period.Previous())
	if err != nil {
		return nil, err
	}

	return &domain.FinancialStats{
		Period:             period,
		Revenue:            revenue,
		Expense:            expense,
		Profit:             revenue.Sub(expense),
		PendingCount:       pending,
		PaidCount:          paid,
		ActiveStudentCount: active,
		AverageTicket:      AverageTicket(revenue, active),
		GrowthPercent:      GrowthPercent(revenue, previous),
	}, nil
}

// AverageTicket is revenue per active student rounded to cents, zero without students.
func AverageTicket(revenue decimal.Decimal, activeStudents int64) decimal.Decimal {
	if activeStudents <= 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(activeStudents)).Round(2)
}

// GrowthPercent compares two revenues, zero when there is nothing to compare against.
func GrowthPercent(current, previous decimal.Decimal) float64 {
	if !previous.IsPositive() {
		return 0
	}
	growth, _ := current.Sub(previous).Div(previous).Mul(hundred).Round(2).Float64()
	return growth
}

func (s *financeService) GetRevenues(ctx context.Context, period utils.Period) ([]domain.RevenueEntry, error) {
	if err := period.Validate(); err != nil {
		return nil, domain.Invalid(err.Error())
	}
	from, to := period.Bounds(s.loc)
	enrollments, err := s.repo.GetEnrollmentsBetween(ctx, from, to, "")
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RevenueEntry, 0, len(enrollments))
	for _, e := range enrollments {
		entry := domain.RevenueEntry{
			EnrollmentID: e.ID,
			Status:       e.Status,
			EnrolledAt:   e.EnrolledAt,
			PaidAt:       e.PaidAt(),
			Amount:       decimal.Zero,
		}
		if e.Student != nil {
			entry.StudentName = e.Student.Name
		}
		if e.Course != nil {
			entry.CourseName = e.Course.Name
			entry.Amount = e.Course.Price
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *financeService) GetPayouts(ctx context.Context, period utils.Period) ([]domain.PayoutEntry, error) {
	if err := period.Validate(); err != nil {
		return nil, domain.Invalid(err.Error())
	}
	payouts, err := s.repo.GetPayoutsForPeriod(ctx, period.Month, period.Year, "")
	if err != nil {
		return nil, err
	}

	entries := make([]domain.PayoutEntry, 0, len(payouts))
	for _, p := range payouts {
		entry := domain.PayoutEntry{
			ID:             p.ID,
			TeacherID:      p.TeacherID,
			Amount:         p.Amount,
			Month:          p.Month,
			Year:           p.Year,
			Status:         p.Status,
			HoursWorked:    p.HoursWorked,
			StudentsServed: p.StudentsServed,
			CreatedAt:      p.CreatedAt,
		}
		if p.Teacher != nil {
			entry.TeacherName = p.Teacher.Name
			entry.PayoutType = p.Teacher.PayoutType
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func validPaymentStatus(status string) bool {
	return status == domain.PaymentPending || status == domain.PaymentPaid
}

func (s *financeService) UpdateEnrollmentStatus(ctx context.Context, id, status string) (*domain.Enrollment, error) {
	if !validPaymentStatus(status) {
		return nil, domain.Invalid("status must be one of: pending paid")
	}
	enrollment, err := s.repo.UpdateEnrollmentStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if status == domain.PaymentPaid && enrollment.Course != nil {
		event := domain.DomainEvent{Type: domain.EventEnrollmentPaid, Detail: enrollment.Course.Name}
		if enrollment.Student != nil {
			event.Subject = enrollment.Student.Name
		}
		amount := enrollment.Course.Price
		event.Amount = &amount
		publish(ctx, s.events, event)
	}
	return enrollment, nil
}

func (s *financeService) UpdatePayoutStatus(ctx context.Context, id, status string) (*domain.Payout, error) {
	if !validPaymentStatus(status) {
		return nil, domain.Invalid("status must be one of: pending paid")
	}
	payout, err := s.repo.UpdatePayoutStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if status == domain.PaymentPaid {
		event := domain.DomainEvent{Type: domain.EventPayoutPaid, Amount: &payout.Amount}
		if payout.Teacher != nil {
			event.Subject = payout.Teacher.Name
		}
		event.Detail = utils.Period{Month: payout.Month, Year: payout.Year}.String()
		publish(ctx, s.events, event)
	}
	return payout, nil
}

func (s *financeService) GeneratePayouts(ctx context.Context, period utils.Period) (*domain.PayoutBatch, error) {
	batch, err := s.generator.GenerateForActiveTeachers(ctx, period)
	if err != nil {
		return nil, err
	}
	if len(batch.Created) > 0 {
		publish(ctx, s.events, domain.DomainEvent{
			Type:    domain.EventPayoutsGenerated,
			Subject: period.String(),
			Count:   len(batch.Created),
		})
	}
	return batch, nil
}
