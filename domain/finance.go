package domain

import (
	"context"
	"time"

	"github.com/enzoobispoo/EduSystem/utils"
	"github.com/shopspring/decimal"
)

type FinancialStats struct {
	Period             utils.Period    `json:"period"`
	Revenue            decimal.Decimal `json:"revenue"`
	Expense            decimal.Decimal `json:"expense"`
	Profit             decimal.Decimal `json:"profit"`
	PendingCount       int64           `json:"pending_count"`
	PaidCount          int64           `json:"paid_count"`
	ActiveStudentCount int64           `json:"active_student_count"`
	AverageTicket      decimal.Decimal `json:"average_ticket"`
	GrowthPercent      float64         `json:"growth_percent"`
}

// RevenueEntry is one enrollment as seen by the revenue ledger.
type RevenueEntry struct {
	EnrollmentID string          `json:"enrollment_id"`
	StudentName  string          `json:"student_name"`
	CourseName   string          `json:"course_name"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	EnrolledAt   time.Time       `json:"enrolled_at"`
	PaidAt       *time.Time      `json:"paid_at,omitempty"`
}

// PayoutEntry is one payout as seen by the expense ledger.
type PayoutEntry struct {
	ID             string          `json:"id"`
	TeacherID      string          `json:"teacher_id"`
	TeacherName    string          `json:"teacher_name"`
	PayoutType     string          `json:"payout_type"`
	Amount         decimal.Decimal `json:"amount"`
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	Status         string          `json:"status"`
	HoursWorked    *int            `json:"hours_worked,omitempty"`
	StudentsServed *int            `json:"students_served,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PayoutBatch is the result of a bulk generation run. Skipped holds the ids of
// teachers that already had a payout for the period.
type PayoutBatch struct {
	Period  utils.Period `json:"period"`
	Created []Payout     `json:"created"`
	Skipped []string     `json:"skipped"`
}

type FinanceUseCase interface {
	PeriodRevenue(ctx context.Context, period utils.Period) (decimal.Decimal, error)
	PeriodExpense(ctx context.Context, period utils.Period) (decimal.Decimal, error)
	GetStats(ctx context.Context, period utils.Period) (*FinancialStats, error)
	GetRevenues(ctx context.Context, period utils.Period) ([]RevenueEntry, error)
	GetPayouts(ctx context.Context, period utils.Period) ([]PayoutEntry, error)
	UpdateEnrollmentStatus(ctx context.Context, id, status string) (*Enrollment, error)
	UpdatePayoutStatus(ctx context.Context, id, status string) (*Payout, error)
	GeneratePayouts(ctx context.Context, period utils.Period) (*PayoutBatch, error)
}

type PayoutGenerator interface {
	// GenerateForTeacher creates the teacher's payout for the period. The bool is false
	// when nothing was written, either because one already exists or the rule yields none.
	GenerateForTeacher(ctx context.Context, teacher Teacher, period utils.Period) (*Payout, bool, error)
	GenerateForActiveTeachers(ctx context.Context, period utils.Period) (*PayoutBatch, error)
}

type FinanceRepository interface {
	// GetEnrollmentsBetween returns enrollments with from <= enrolled_at < to, any status when status is empty.
	GetEnrollmentsBetween(ctx context.Context, from, to time.Time, status string) ([]Enrollment, error)
	// GetPayoutsForPeriod returns the payouts of (month, year), any status when status is empty.
	GetPayoutsForPeriod(ctx context.Context, month, year int, status string) ([]Payout, error)
	CountPayouts(ctx context.Context, month, year int, status string) (int64, error)
	CountActiveStudents(ctx context.Context) (int64, error)
	// CreatePayoutIfAbsent inserts unless (teacher, month, year) exists and reports whether it did.
	CreatePayoutIfAbsent(ctx context.Context, payout *Payout) (bool, error)
	UpdateEnrollmentStatus(ctx context.Context, id, status string) (*Enrollment, error)
	UpdatePayoutStatus(ctx context.Context, id, status string) (*Payout, error)
}
