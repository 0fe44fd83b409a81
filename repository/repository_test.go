package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/enzoobispoo/EduSystem/config"
	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/repository"
	"github.com/enzoobispoo/EduSystem/service"
	"github.com/enzoobispoo/EduSystem/utils"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every connection to :memory: is its own database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedCourse(t *testing.T, db *gorm.DB, name, price string) *domain.Course {
	course := &domain.Course{
		Name:      name,
		Price:     dec(price),
		Category:  domain.CategoryRobotics,
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	mustCreate(t, db, course)
	return course
}

func seedStudent(t *testing.T, db *gorm.DB, email, nationalID string) *domain.Student {
	student := &domain.Student{Name: "Ana Souza", Email: email, NationalID: nationalID, Status: domain.StatusActive}
	mustCreate(t, db, student)
	return student
}

var march2025 = utils.Period{Month: 3, Year: 2025}

func TestRevenue_PendingEnrollmentBecomesPaid(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	course := seedCourse(t, db, "Robotics I", "1200.00")
	student := seedStudent(t, db, "ana@school.com", "11122233344")
	enrollment := &domain.Enrollment{
		StudentID:  student.ID,
		CourseID:   course.ID,
		Status:     domain.PaymentPending,
		EnrolledAt: time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC),
	}
	mustCreate(t, db, enrollment)

	finance := service.NewFinanceService(repository.NewFinanceRepository(db), nil, nil, time.UTC)

	revenue, err := finance.PeriodRevenue(ctx, march2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !revenue.IsZero() {
		t.Fatalf("expected zero revenue while pending, got %s", revenue)
	}

	updated, err := finance.UpdateEnrollmentStatus(ctx, enrollment.ID, domain.PaymentPaid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.PaymentPaid || updated.Course == nil || updated.Student == nil {
		t.Errorf("expected paid enrollment with relations, got %+v", updated)
	}

	revenue, err = finance.PeriodRevenue(ctx, march2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !revenue.Equal(dec("1200")) {
		t.Errorf("expected 1200 revenue, got %s", revenue)
	}

	april, _ := finance.PeriodRevenue(ctx, utils.Period{Month: 4, Year: 2025})
	if !april.IsZero() {
		t.Errorf("expected nothing attributed to april, got %s", april)
	}
}

func TestRevenue_IncludesLastEveningOfMonth(t *testing.T) {
	db := newTestDB(t)
	course := seedCourse(t, db, "Chess", "150.50")
	student := seedStudent(t, db, "bia@school.com", "55566677788")
	mustCreate(t, db, &domain.Enrollment{
		StudentID:  student.ID,
		CourseID:   course.ID,
		Status:     domain.PaymentPaid,
		EnrolledAt: time.Date(2025, 3, 31, 21, 45, 0, 0, time.UTC),
	})

	finance := service.NewFinanceService(repository.NewFinanceRepository(db), nil, nil, time.UTC)
	revenue, err := finance.PeriodRevenue(context.Background(), march2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !revenue.Equal(dec("150.50")) {
		t.Errorf("expected 150.50, got %s", revenue)
	}
}

func TestCreatePayoutIfAbsent_OnePerTeacherAndPeriod(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := repository.NewFinanceRepository(db)

	teacher := &domain.Teacher{Name: "Carla Dias", Email: "carla@school.com", NationalID: "999", PayoutType: domain.PayoutPerStudent, Status: domain.StatusActive}
	mustCreate(t, db, teacher)

	first := &domain.Payout{TeacherID: teacher.ID, Month: 3, Year: 2025, Amount: dec("0"), Status: domain.PaymentPending}
	created, err := repo.CreatePayoutIfAbsent(ctx, first)
	if err != nil || !created {
		t.Fatalf("expected first insert to create, got created=%v err=%v", created, err)
	}

	second := &domain.Payout{TeacherID: teacher.ID, Month: 3, Year: 2025, Amount: dec("500"), Status: domain.PaymentPending}
	created, err = repo.CreatePayoutIfAbsent(ctx, second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected the duplicate to be skipped")
	}

	other := &domain.Payout{TeacherID: teacher.ID, Month: 4, Year: 2025, Amount: dec("0"), Status: domain.PaymentPending}
	if created, err := repo.CreatePayoutIfAbsent(ctx, other); err != nil || !created {
		t.Errorf("expected another period to be created, got created=%v err=%v", created, err)
	}

	count, err := repo.CountPayouts(ctx, 3, 2025, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 payout for march, got %d", count)
	}
}

func TestCreateTeacher_PerHourGetsCurrentPayout(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	teachers := repository.NewTeacherRepository(db)
	financeRepo := repository.NewFinanceRepository(db)
	generator := service.NewPayoutGenerator(financeRepo, teachers, dec("1000"))
	svc := service.NewTeacherService(teachers, repository.NewCourseRepository(db), generator, nil, time.UTC)

	rate := dec("50")
	teacher, err := svc.CreateTeacher(ctx, &domain.Teacher{
		Name:       "Carla Dias",
		Email:      "carla@school.com",
		NationalID: "12345",
		PayoutType: domain.PayoutPerHour,
		HourlyRate: &rate,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := utils.CurrentPeriod(time.Now(), time.UTC)
	payouts, err := financeRepo.GetPayoutsForPeriod(ctx, now.Month, now.Year, domain.PaymentPending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(payouts) != 1 {
		t.Fatalf("expected one pending payout, got %d", len(payouts))
	}
	p := payouts[0]
	if p.TeacherID != teacher.ID || !p.Amount.Equal(dec("2000")) {
		t.Errorf("unexpected payout %+v", p)
	}
	if p.HoursWorked == nil || *p.HoursWorked != domain.DefaultHoursWorked {
		t.Errorf("expected %d hours, got %v", domain.DefaultHoursWorked, p.HoursWorked)
	}

	// bulk generation for the same month leaves the existing payout alone
	batch, err := generator.GenerateForActiveTeachers(ctx, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch.Created) != 0 || len(batch.Skipped) != 1 {
		t.Errorf("expected the teacher to be skipped, got %d/%d", len(batch.Created), len(batch.Skipped))
	}
}

func TestPeriodExpense_PaidPayoutsOnly(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := repository.NewFinanceRepository(db)

	teacher := &domain.Teacher{Name: "Carla Dias", Email: "carla@school.com", NationalID: "999", PayoutType: domain.PayoutPerHour, Status: domain.StatusActive}
	mustCreate(t, db, teacher)
	payout := &domain.Payout{TeacherID: teacher.ID, Month: 3, Year: 2025, Amount: dec("2000"), Status: domain.PaymentPending}
	if _, err := repo.CreatePayoutIfAbsent(ctx, payout); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	finance := service.NewFinanceService(repo, nil, nil, time.UTC)
	expense, _ := finance.PeriodExpense(ctx, march2025)
	if !expense.IsZero() {
		t.Fatalf("expected zero expense while pending, got %s", expense)
	}

	paid, err := finance.UpdatePayoutStatus(ctx, payout.ID, domain.PaymentPaid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paid.Teacher == nil || paid.Teacher.Name != "Carla Dias" {
		t.Errorf("expected teacher to be loaded, got %+v", paid.Teacher)
	}

	expense, _ = finance.PeriodExpense(ctx, march2025)
	if !expense.Equal(dec("2000")) {
		t.Errorf("expected 2000 expense, got %s", expense)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewFinanceRepository(db)

	if _, err := repo.UpdateEnrollmentStatus(context.Background(), "missing", domain.PaymentPaid); domain.KindOf(err) != domain.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
	if _, err := repo.UpdatePayoutStatus(context.Background(), "missing", domain.PaymentPaid); domain.KindOf(err) != domain.KindNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestDeleteTeacher_RemovesPayoutsAndDetachesEvents(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	teachers := repository.NewTeacherRepository(db)
	finance := repository.NewFinanceRepository(db)

	course := seedCourse(t, db, "Robotics I", "100")
	teacher := &domain.Teacher{Name: "Carla Dias", Email: "carla@school.com", NationalID: "999", PayoutType: domain.PayoutPerStudent, Status: domain.StatusActive}
	if err := teachers.CreateTeacher(ctx, teacher, []string{course.ID}); err != nil {
		t.Fatalf("create teacher: %v", err)
	}
	if _, err := finance.CreatePayoutIfAbsent(ctx, &domain.Payout{TeacherID: teacher.ID, Month: 3, Year: 2025, Amount: dec("0"), Status: domain.PaymentPending}); err != nil {
		t.Fatalf("create payout: %v", err)
	}
	event := &domain.CalendarEvent{
		Title:     "Robotics class",
		Date:      time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		StartTime: "08:00",
		EndTime:   "09:00",
		TeacherID: &teacher.ID,
		Category:  domain.EventClass,
	}
	mustCreate(t, db, event)

	if err := teachers.DeleteTeacher(ctx, teacher.ID); err != nil {
		t.Fatalf("delete teacher: %v", err)
	}

	if count, _ := finance.CountPayouts(ctx, 3, 2025, ""); count != 0 {
		t.Errorf("expected payouts to be removed, got %d", count)
	}
	var reloaded domain.CalendarEvent
	if err := db.First(&reloaded, "id = ?", event.ID).Error; err != nil {
		t.Fatalf("expected event to survive: %v", err)
	}
	if reloaded.TeacherID != nil {
		t.Errorf("expected event to be detached, got teacher %v", *reloaded.TeacherID)
	}
	if err := teachers.DeleteTeacher(ctx, teacher.ID); domain.KindOf(err) != domain.KindNotFound {
		t.Errorf("expected not found on second delete, got %v", err)
	}
}
