package service

import (
	"context"
	"sync"
	"time"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// mockFinanceRepository keeps payouts keyed by teacher and period like the unique index does.
type mockFinanceRepository struct {
	mu sync.Mutex

	Enrollments []domain.Enrollment
	Payouts     map[string]domain.Payout
	Active      int64

	CreatePayoutCalls []domain.Payout
	CreatePayoutError error
	QueryError        error
}

var _ domain.FinanceRepository = (*mockFinanceRepository)(nil)

func newMockFinanceRepository() *mockFinanceRepository {
	return &mockFinanceRepository{Payouts: map[string]domain.Payout{}}
}

func payoutKey(teacherID string, month, year int) string {
	return teacherID + "/" + utils.Period{Month: month, Year: year}.String()
}

func (m *mockFinanceRepository) GetEnrollmentsBetween(ctx context.Context, from, to time.Time, status string) ([]domain.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	var out []domain.Enrollment
	for _, e := range m.Enrollments {
		if e.EnrolledAt.Before(from) || !e.EnrolledAt.Before(to) {
			continue
		}
		if status != "" && e.Status != status {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (m *mockFinanceRepository) GetPayoutsForPeriod(ctx context.Context, month, year int, status string) ([]domain.Payout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	var out []domain.Payout
	for _, p := range m.Payouts {
		if p.Month == month && p.Year == year && (status == "" || p.Status == status) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockFinanceRepository) CountPayouts(ctx context.Context, month, year int, status string) (int64, error) {
	payouts, err := m.GetPayoutsForPeriod(ctx, month, year, status)
	return int64(len(payouts)), err
}

func (m *mockFinanceRepository) CountActiveStudents(ctx context.Context) (int64, error) {
	return m.Active, m.QueryError
}

func (m *mockFinanceRepository) CreatePayoutIfAbsent(ctx context.Context, payout *domain.Payout) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePayoutCalls = append(m.CreatePayoutCalls, *payout)
	if m.CreatePayoutError != nil {
		return false, m.CreatePayoutError
	}
	key := payoutKey(payout.TeacherID, payout.Month, payout.Year)
	if _, ok := m.Payouts[key]; ok {
		return false, nil
	}
	payout.ID = uuid.NewString()
	m.Payouts[key] = *payout
	return true, nil
}

func (m *mockFinanceRepository) UpdateEnrollmentStatus(ctx context.Context, id, status string) (*domain.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Enrollments {
		if m.Enrollments[i].ID == id {
			m.Enrollments[i].Status = status
			e := m.Enrollments[i]
			return &e, nil
		}
	}
	return nil, domain.NotFound("enrollment")
}

func (m *mockFinanceRepository) UpdatePayoutStatus(ctx context.Context, id, status string) (*domain.Payout, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, p := range m.Payouts {
		if p.ID == id {
			p.Status = status
			m.Payouts[key] = p
			return &p, nil
		}
	}
	return nil, domain.NotFound("payout")
}

type mockTeacherRepository struct {
	mu       sync.Mutex
	Teachers map[string]domain.Teacher

	ActiveCalls int
	Error       error
}

var _ domain.TeacherRepository = (*mockTeacherRepository)(nil)

func newMockTeacherRepository(teachers ...domain.Teacher) *mockTeacherRepository {
	m := &mockTeacherRepository{Teachers: map[string]domain.Teacher{}}
	for _, t := range teachers {
		m.Teachers[t.ID] = t
	}
	return m
}

func (m *mockTeacherRepository) CreateTeacher(ctx context.Context, teacher *domain.Teacher, courseIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Error != nil {
		return m.Error
	}
	if teacher.ID == "" {
		teacher.ID = uuid.NewString()
	}
	m.Teachers[teacher.ID] = *teacher
	return nil
}

func (m *mockTeacherRepository) GetAllTeachers(ctx context.Context, period utils.Period) ([]domain.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Teacher, 0, len(m.Teachers))
	for _, t := range m.Teachers {
		out = append(out, t)
	}
	return out, m.Error
}

func (m *mockTeacherRepository) GetTeacherByID(ctx context.Context, id string) (*domain.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.Teachers[id]
	if !ok {
		return nil, domain.NotFound("teacher")
	}
	return &t, nil
}

func (m *mockTeacherRepository) FindDuplicate(ctx context.Context, email, nationalID, excludeID string) (*domain.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.Teachers {
		if t.ID != excludeID && (t.Email == email || t.NationalID == nationalID) {
			return &t, nil
		}
	}
	return nil, nil
}

func (m *mockTeacherRepository) UpdateTeacher(ctx context.Context, teacher *domain.Teacher, courseIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Teachers[teacher.ID]; !ok {
		return domain.NotFound("teacher")
	}
	m.Teachers[teacher.ID] = *teacher
	return nil
}

func (m *mockTeacherRepository) DeleteTeacher(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Teachers, id)
	return nil
}

func (m *mockTeacherRepository) GetActiveTeachers(ctx context.Context) ([]domain.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ActiveCalls++
	if m.Error != nil {
		return nil, m.Error
	}
	var out []domain.Teacher
	for _, t := range m.Teachers {
		if t.Status == domain.StatusActive {
			out = append(out, t)
		}
	}
	return out, nil
}

type mockCourseRepository struct {
	Courses map[string]domain.Course
}

var _ domain.CourseRepository = (*mockCourseRepository)(nil)

func (m *mockCourseRepository) CreateCourse(ctx context.Context, course *domain.Course) error {
	if m.Courses == nil {
		m.Courses = map[string]domain.Course{}
	}
	course.ID = uuid.NewString()
	m.Courses[course.ID] = *course
	return nil
}

func (m *mockCourseRepository) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	var out []domain.Course
	for _, c := range m.Courses {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockCourseRepository) GetCourseByID(ctx context.Context, id string) (*domain.Course, error) {
	c, ok := m.Courses[id]
	if !ok {
		return nil, domain.NotFound("course")
	}
	return &c, nil
}

func (m *mockCourseRepository) GetCoursesByIDs(ctx context.Context, ids []string) ([]domain.Course, error) {
	var out []domain.Course
	for _, id := range ids {
		if c, ok := m.Courses[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCourseRepository) UpdateCourse(ctx context.Context, course *domain.Course) error {
	if _, ok := m.Courses[course.ID]; !ok {
		return domain.NotFound("course")
	}
	m.Courses[course.ID] = *course
	return nil
}

func (m *mockCourseRepository) DeleteCourse(ctx context.Context, id string) error {
	delete(m.Courses, id)
	return nil
}

type mockPublisher struct {
	mu     sync.Mutex
	Events []domain.DomainEvent
	Error  error
}

var _ domain.EventPublisher = (*mockPublisher)(nil)

func (m *mockPublisher) Publish(ctx context.Context, event domain.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Error != nil {
		return m.Error
	}
	m.Events = append(m.Events, event)
	return nil
}

func (m *mockPublisher) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Events))
	for i, e := range m.Events {
		out[i] = e.Type
	}
	return out
}

type mockNotificationRepository struct {
	mu      sync.Mutex
	Created []domain.Notification
}

var _ domain.NotificationRepository = (*mockNotificationRepository)(nil)

func (m *mockNotificationRepository) CreateNotification(ctx context.Context, n *domain.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n.ID = uuid.NewString()
	m.Created = append(m.Created, *n)
	return nil
}

func (m *mockNotificationRepository) GetLatestNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Notification(nil), m.Created...), nil
}

func (m *mockNotificationRepository) MarkAsRead(ctx context.Context, id string) (*domain.Notification, error) {
	return nil, domain.NotFound("notification")
}

func (m *mockNotificationRepository) MarkAllAsRead(ctx context.Context) (int64, error) {
	return 0, nil
}

func (m *mockNotificationRepository) DeleteNotification(ctx context.Context, id string) error {
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
