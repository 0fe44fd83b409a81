package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/repository"
	"github.com/enzoobispoo/EduSystem/service"
)

func TestDashboardSummary(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	robotics := seedCourse(t, db, "Robotics I", "1200")
	chess := seedCourse(t, db, "Chess", "300.50")

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	students := make([]*domain.Student, 0, 4)
	for i := 0; i < 4; i++ {
		s := &domain.Student{
			Name:       fmt.Sprintf("Student %d", i),
			Email:      fmt.Sprintf("student%d@school.com", i),
			NationalID: fmt.Sprintf("s%d", i),
			Status:     domain.StatusActive,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
		mustCreate(t, db, s)
		students = append(students, s)
	}
	for i := 0; i < 4; i++ {
		mustCreate(t, db, &domain.Teacher{
			Name:       fmt.Sprintf("Teacher %d", i),
			Email:      fmt.Sprintf("teacher%d@school.com", i),
			NationalID: fmt.Sprintf("t%d", i),
			PayoutType: domain.PayoutPerStudent,
			Status:     domain.StatusActive,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		})
	}

	// enrolled revenue counts every enrollment regardless of payment status
	mustCreate(t, db, &domain.Enrollment{StudentID: students[0].ID, CourseID: robotics.ID, Status: domain.PaymentPaid})
	mustCreate(t, db, &domain.Enrollment{StudentID: students[1].ID, CourseID: robotics.ID, Status: domain.PaymentPending})
	mustCreate(t, db, &domain.Enrollment{StudentID: students[1].ID, CourseID: chess.ID, Status: domain.PaymentPaid})

	summary, err := service.NewDashboardService(repository.NewDashboardRepository(db)).GetSummary(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalStudents != 4 || summary.TotalCourses != 2 {
		t.Errorf("expected 4 students and 2 courses, got %d/%d", summary.TotalStudents, summary.TotalCourses)
	}
	if !summary.EnrolledRevenue.Equal(dec("2700.50")) {
		t.Errorf("expected enrolled revenue 2700.50, got %s", summary.EnrolledRevenue)
	}

	if len(summary.RecentStudents) != 3 {
		t.Fatalf("expected 3 recent students, got %d", len(summary.RecentStudents))
	}
	for i, want := range []string{"Student 3", "Student 2", "Student 1"} {
		if summary.RecentStudents[i].Name != want {
			t.Errorf("recent student %d: expected %s, got %s", i, want, summary.RecentStudents[i].Name)
		}
	}
	if len(summary.RecentTeachers) != 3 {
		t.Fatalf("expected 3 recent teachers, got %d", len(summary.RecentTeachers))
	}
	for i, want := range []string{"Teacher 3", "Teacher 2", "Teacher 1"} {
		if summary.RecentTeachers[i].Name != want {
			t.Errorf("recent teacher %d: expected %s, got %s", i, want, summary.RecentTeachers[i].Name)
		}
	}
}

func TestDashboardSummary_Empty(t *testing.T) {
	db := newTestDB(t)
	summary, err := service.NewDashboardService(repository.NewDashboardRepository(db)).GetSummary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalStudents != 0 || !summary.EnrolledRevenue.IsZero() || len(summary.RecentTeachers) != 0 {
		t.Errorf("expected an empty summary, got %+v", summary)
	}
}
