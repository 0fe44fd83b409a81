package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	PaymentPending = "pending"
	PaymentPaid    = "paid"

	PayoutPerHour    = "per_hour"
	PayoutPerStudent = "per_student"

	CategoryGames           = "games"
	CategoryRobotics        = "robotics"
	CategoryExtracurricular = "extracurricular"
	CategoryCurricular      = "curricular"

	EventClass   = "class"
	EventMeeting = "meeting"
	EventEvent   = "event"
	EventHoliday = "holiday"

	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"

	NotifyStudent = "student"
	NotifyTeacher = "teacher"
	NotifyCourse  = "course"
	NotifyPayment = "payment"
	NotifyFinance = "finance"
	NotifySystem  = "system"

	// DefaultHoursWorked is the monthly load assumed for per-hour teachers.
	DefaultHoursWorked = 40
	// NotificationFeedLimit caps the notification listing.
	NotificationFeedLimit = 50
)

// Base carries the uuid primary key shared by every table.
type Base struct {
	ID string `gorm:"primaryKey;type:varchar(36)" json:"id"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

type Student struct {
	Base
	Name       string `gorm:"not null;size:100" json:"name"`
	Email      string `gorm:"uniqueIndex;not null;size:120" json:"email"`
	Phone      string `gorm:"size:20" json:"phone"`
	NationalID string `gorm:"uniqueIndex;not null;size:20" json:"national_id"`
	Status     string `gorm:"size:10;not null;default:'active'" json:"status"` // active | inactive

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Enrollments []Enrollment `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE;" json:"enrollments,omitempty"`
}

type Teacher struct {
	Base
	Name        string           `gorm:"not null;size:100" json:"name"`
	Email       string           `gorm:"uniqueIndex;not null;size:120" json:"email"`
	Phone       string           `gorm:"size:20" json:"phone"`
	NationalID  string           `gorm:"uniqueIndex;not null;size:20" json:"national_id"`
	PayoutType  string           `gorm:"size:20;not null;default:'per_student'" json:"payout_type"` // per_hour | per_student
	HourlyRate  *decimal.Decimal `gorm:"type:numeric(12,2)" json:"hourly_rate,omitempty"`
	StudentRate *decimal.Decimal `gorm:"type:numeric(12,2)" json:"student_rate,omitempty"`
	Status      string           `gorm:"size:10;not null;default:'active'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Courses []Course `gorm:"many2many:teacher_courses;constraint:OnDelete:CASCADE;" json:"courses,omitempty"`
	Payouts []Payout `gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE;" json:"payouts,omitempty"`
}

// Rate returns the rate that matters for the teacher's payout type, nil when unset.
func (t Teacher) Rate() *decimal.Decimal {
	if t.PayoutType == PayoutPerHour {
		return t.HourlyRate
	}
	return t.StudentRate
}

type Course struct {
	Base
	Name        string          `gorm:"not null;size:120" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Category    string          `gorm:"size:20;not null;default:'games'" json:"category"`
	StartDate   time.Time       `gorm:"not null" json:"start_date"`
	EndDate     time.Time       `gorm:"not null" json:"end_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Enrollments []Enrollment `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"enrollments,omitempty"`
	Teachers    []Teacher    `gorm:"many2many:teacher_courses;" json:"teachers,omitempty"`
}

type Enrollment struct {
	Base
	StudentID  string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_enrollment_student_course" json:"student_id"`
	CourseID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_enrollment_student_course" json:"course_id"`
	Status     string    `gorm:"size:10;not null;default:'pending'" json:"status"` // pending | paid
	EnrolledAt time.Time `gorm:"autoCreateTime;index" json:"enrolled_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Course  *Course  `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

// PaidAt is the payment timestamp: the last update once the enrollment is paid.
func (e Enrollment) PaidAt() *time.Time {
	if e.Status != PaymentPaid {
		return nil
	}
	t := e.UpdatedAt
	return &t
}

type Payout struct {
	Base
	TeacherID      string          `gorm:"type:varchar(36);not null;uniqueIndex:idx_payout_teacher_period" json:"teacher_id"`
	Month          int             `gorm:"not null;uniqueIndex:idx_payout_teacher_period" json:"month"`
	Year           int             `gorm:"not null;uniqueIndex:idx_payout_teacher_period" json:"year"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Status         string          `gorm:"size:10;not null;default:'pending'" json:"status"`
	HoursWorked    *int            `json:"hours_worked,omitempty"`
	StudentsServed *int            `json:"students_served,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}

type CalendarEvent struct {
	Base
	Title             string     `gorm:"not null;size:150" json:"title"`
	Description       *string    `gorm:"type:text" json:"description,omitempty"`
	Date              time.Time  `gorm:"not null;index" json:"date"`
	StartTime         string     `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime           string     `gorm:"size:5;not null" json:"end_time"`
	TeacherID         *string    `gorm:"type:varchar(36);index" json:"teacher_id,omitempty"`
	CourseID          *string    `gorm:"type:varchar(36);index" json:"course_id,omitempty"`
	Room              string     `gorm:"size:50" json:"room"`
	Category          string     `gorm:"size:10;not null;default:'class'" json:"category"`
	Color             string     `gorm:"size:20" json:"color"`
	RecurrencePattern *string    `gorm:"size:10" json:"recurrence_pattern,omitempty"` // daily | weekly | monthly
	RecurrenceEnd     *time.Time `json:"recurrence_end,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Teacher *Teacher `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	Course  *Course  `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

type Notification struct {
	Base
	Title     string    `gorm:"not null;size:150" json:"title"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Category  string    `gorm:"size:10;not null" json:"category"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	Icon      string    `gorm:"size:30;not null;default:'bell'" json:"icon"`
	Color     string    `gorm:"size:20;not null;default:'blue'" json:"color"`
	URL       *string   `gorm:"size:255" json:"url,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// Models lists every table in migration order.
func Models() []any {
	return []any{
		&Student{},
		&Teacher{},
		&Course{},
		&Enrollment{},
		&Payout{},
		&CalendarEvent{},
		&Notification{},
	}
}
