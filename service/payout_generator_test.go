package service

import (
	"context"
	"errors"
	"testing"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/utils"
	"github.com/shopspring/decimal"
)

var march2025 = utils.Period{Month: 3, Year: 2025}

func TestPlanPayout(t *testing.T) {
	nominal := dec("1000")

	tests := []struct {
		name       string
		teacher    domain.Teacher
		nominal    decimal.Decimal
		wantNil    bool
		wantAmount string
		wantHours  *int
		wantServed bool
	}{
		{
			name:       "per_hour_with_rate",
			teacher:    domain.Teacher{Base: domain.Base{ID: "t1"}, PayoutType: domain.PayoutPerHour, HourlyRate: decPtr("50")},
			nominal:    nominal,
			wantAmount: "2000",
			wantHours:  intPtr(domain.DefaultHoursWorked),
		},
		{
			name:       "per_hour_fractional_rate",
			teacher:    domain.Teacher{Base: domain.Base{ID: "t1"}, PayoutType: domain.PayoutPerHour, HourlyRate: decPtr("37.25")},
			nominal:    nominal,
			wantAmount: "1490",
			wantHours:  intPtr(domain.DefaultHoursWorked),
		},
		{
			name:       "per_hour_without_rate_uses_fallback",
			teacher:    domain.Teacher{Base: domain.Base{ID: "t1"}, PayoutType: domain.PayoutPerHour},
			nominal:    nominal,
			wantAmount: "1000",
		},
		{
			name:       "per_hour_zero_rate_uses_fallback",
			teacher:    domain.Teacher{Base: domain.Base{ID: "t1"}, PayoutType: domain.PayoutPerHour, HourlyRate: decPtr("0")},
			nominal:    nominal,
			wantAmount: "1000",
		},
		{
			name:    "per_hour_without_rate_and_no_fallback",
			teacher: domain.Teacher{Base: domain.Base{ID: "t1"}, PayoutType: domain.PayoutPerHour},
			nominal: decimal.Zero,
			wantNil: true,
		},
		{
			name:       "per_student_placeholder",
			teacher:    domain.Teacher{Base: domain.Base{ID: "t1"}, PayoutType: domain.PayoutPerStudent, StudentRate: decPtr("80")},
			nominal:    nominal,
			wantAmount: "0",
			wantServed: true,
		},
		{
			name:    "unknown_type",
			teacher: domain.Teacher{Base: domain.Base{ID: "t1"}, PayoutType: "per_lesson"},
			nominal: nominal,
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payout := PlanPayout(tt.teacher, march2025, tt.nominal)
			if tt.wantNil {
				if payout != nil {
					t.Fatalf("expected no payout, got %+v", payout)
				}
				return
			}
			if payout == nil {
				t.Fatal("expected a payout")
			}
			if !payout.Amount.Equal(dec(tt.wantAmount)) {
				t.Errorf("expected amount %s, got %s", tt.wantAmount, payout.Amount)
			}
			if payout.Status != domain.PaymentPending {
				t.Errorf("expected pending status, got %s", payout.Status)
			}
			if payout.Month != 3 || payout.Year != 2025 || payout.TeacherID != "t1" {
				t.Errorf("unexpected payout key %+v", payout)
			}
			if (tt.wantHours == nil) != (payout.HoursWorked == nil) ||
				(tt.wantHours != nil && *tt.wantHours != *payout.HoursWorked) {
				t.Errorf("unexpected hours worked %v", payout.HoursWorked)
			}
			if tt.wantServed && (payout.StudentsServed == nil || *payout.StudentsServed != 0) {
				t.Errorf("expected zero students served, got %v", payout.StudentsServed)
			}
		})
	}
}

func intPtr(n int) *int { return &n }

func TestGenerateForTeacher_Idempotent(t *testing.T) {
	finance := newMockFinanceRepository()
	gen := NewPayoutGenerator(finance, newMockTeacherRepository(), dec("1000"))
	teacher := domain.Teacher{Base: domain.Base{ID: "t1"}, PayoutType: domain.PayoutPerHour, HourlyRate: decPtr("50"), Status: domain.StatusActive}

	first, created, err := gen.GenerateForTeacher(context.Background(), teacher, march2025)
	if err != nil || !created || first == nil {
		t.Fatalf("expected first payout to be created, got created=%v err=%v", created, err)
	}
	if !first.Amount.Equal(dec("2000")) {
		t.Errorf("expected 2000, got %s", first.Amount)
	}

	second, created, err := gen.GenerateForTeacher(context.Background(), teacher, march2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created || second != nil {
		t.Error("expected the second run to be skipped")
	}
	if len(finance.Payouts) != 1 {
		t.Errorf("expected exactly one stored payout, got %d", len(finance.Payouts))
	}
}

func TestGenerateForTeacher_InvalidPeriod(t *testing.T) {
	finance := newMockFinanceRepository()
	gen := NewPayoutGenerator(finance, newMockTeacherRepository(), dec("1000"))

	_, _, err := gen.GenerateForTeacher(context.Background(), domain.Teacher{PayoutType: domain.PayoutPerStudent}, utils.Period{Month: 13, Year: 2025})
	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(finance.CreatePayoutCalls) != 0 {
		t.Error("expected no store writes")
	}
}

func TestGenerateForActiveTeachers(t *testing.T) {
	active := domain.Teacher{Base: domain.Base{ID: "a"}, PayoutType: domain.PayoutPerHour, HourlyRate: decPtr("50"), Status: domain.StatusActive}
	perStudent := domain.Teacher{Base: domain.Base{ID: "b"}, PayoutType: domain.PayoutPerStudent, Status: domain.StatusActive}
	inactive := domain.Teacher{Base: domain.Base{ID: "c"}, PayoutType: domain.PayoutPerHour, HourlyRate: decPtr("80"), Status: domain.StatusInactive}

	finance := newMockFinanceRepository()
	gen := NewPayoutGenerator(finance, newMockTeacherRepository(active, perStudent, inactive), dec("1000"))

	batch, err := gen.GenerateForActiveTeachers(context.Background(), march2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Created) != 2 || len(batch.Skipped) != 0 {
		t.Fatalf("expected 2 created and 0 skipped, got %d/%d", len(batch.Created), len(batch.Skipped))
	}
	if _, ok := finance.Payouts[payoutKey("c", 3, 2025)]; ok {
		t.Error("inactive teacher must not receive a payout")
	}

	rerun, err := gen.GenerateForActiveTeachers(context.Background(), march2025)
	if err != nil {
		t.Fatalf("unexpected error on rerun: %v", err)
	}
	if len(rerun.Created) != 0 || len(rerun.Skipped) != 2 {
		t.Errorf("expected rerun to skip both teachers, got %d/%d", len(rerun.Created), len(rerun.Skipped))
	}
	if len(finance.Payouts) != 2 {
		t.Errorf("expected 2 stored payouts, got %d", len(finance.Payouts))
	}
}

func TestGenerateForTeacher_UnratedPerHourGetsNothing(t *testing.T) {
	finance := newMockFinanceRepository()
	gen := NewPayoutGenerator(finance, newMockTeacherRepository(), dec("1000"))
	teacher := domain.Teacher{Base: domain.Base{ID: "t1"}, PayoutType: domain.PayoutPerHour, Status: domain.StatusActive}

	payout, created, err := gen.GenerateForTeacher(context.Background(), teacher, march2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created || payout != nil {
		t.Errorf("expected no payout, got %+v", payout)
	}
	if len(finance.CreatePayoutCalls) != 0 {
		t.Errorf("expected no store writes, got %d", len(finance.CreatePayoutCalls))
	}
}

func TestGenerateForActiveTeachers_UnratedPerHourGetsNominal(t *testing.T) {
	unrated := domain.Teacher{Base: domain.Base{ID: "u"}, PayoutType: domain.PayoutPerHour, Status: domain.StatusActive}
	finance := newMockFinanceRepository()
	gen := NewPayoutGenerator(finance, newMockTeacherRepository(unrated), dec("1000"))

	batch, err := gen.GenerateForActiveTeachers(context.Background(), march2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Created) != 1 || !batch.Created[0].Amount.Equal(dec("1000")) {
		t.Fatalf("expected one nominal payout, got %+v", batch.Created)
	}
	if batch.Created[0].HoursWorked != nil {
		t.Errorf("expected hours worked to stay unset, got %v", *batch.Created[0].HoursWorked)
	}

	noNominal := NewPayoutGenerator(newMockFinanceRepository(), newMockTeacherRepository(unrated), decimal.Zero)
	batch, err = noNominal.GenerateForActiveTeachers(context.Background(), march2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Created) != 0 || len(batch.Skipped) != 1 {
		t.Errorf("expected the teacher to be skipped without a nominal, got %d/%d", len(batch.Created), len(batch.Skipped))
	}
}

func TestGenerateForActiveTeachers_NoEligibleTeacher(t *testing.T) {
	inactive := domain.Teacher{Base: domain.Base{ID: "c"}, PayoutType: domain.PayoutPerHour, Status: domain.StatusInactive}
	finance := newMockFinanceRepository()
	gen := NewPayoutGenerator(finance, newMockTeacherRepository(inactive), dec("1000"))

	_, err := gen.GenerateForActiveTeachers(context.Background(), march2025)
	if !errors.Is(err, domain.ErrNoEligibleTeacher) {
		t.Fatalf("expected ErrNoEligibleTeacher, got %v", err)
	}
	if domain.KindOf(err) != domain.KindUnprocessable {
		t.Errorf("expected unprocessable kind, got %v", domain.KindOf(err))
	}
	if len(finance.CreatePayoutCalls) != 0 {
		t.Errorf("expected no writes, got %d", len(finance.CreatePayoutCalls))
	}
}

func TestGenerateForActiveTeachers_StopsOnStoreError(t *testing.T) {
	teachers := newMockTeacherRepository(
		domain.Teacher{Base: domain.Base{ID: "a"}, PayoutType: domain.PayoutPerStudent, Status: domain.StatusActive},
		domain.Teacher{Base: domain.Base{ID: "b"}, PayoutType: domain.PayoutPerStudent, Status: domain.StatusActive},
	)
	finance := newMockFinanceRepository()
	finance.CreatePayoutError = domain.StoreError("insert payout", errors.New("connection reset"))
	gen := NewPayoutGenerator(finance, teachers, dec("1000"))

	batch, err := gen.GenerateForActiveTeachers(context.Background(), march2025)
	if err == nil || batch != nil {
		t.Fatal("expected the store error to abort the batch")
	}
	if len(finance.CreatePayoutCalls) != 1 {
		t.Errorf("expected generation to stop after the first failure, got %d calls", len(finance.CreatePayoutCalls))
	}
}
