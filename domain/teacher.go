package domain

import (
	"context"

	"github.com/enzoobispoo/EduSystem/utils"
)

type TeacherUseCase interface {
	CreateTeacher(ctx context.Context, teacher *Teacher, courseIDs []string) (*Teacher, error)
	GetAllTeachers(ctx context.Context) ([]Teacher, error)
	GetTeacherByID(ctx context.Context, id string) (*Teacher, error)
	UpdateTeacher(ctx context.Context, teacher *Teacher, courseIDs []string) (*Teacher, error)
	DeleteTeacher(ctx context.Context, id string) error
}

type TeacherRepository interface {
	CreateTeacher(ctx context.Context, teacher *Teacher, courseIDs []string) error
	// GetAllTeachers preloads courses and the payouts of the given period.
	GetAllTeachers(ctx context.Context, period utils.Period) ([]Teacher, error)
	GetTeacherByID(ctx context.Context, id string) (*Teacher, error)
	FindDuplicate(ctx context.Context, email, nationalID, excludeID string) (*Teacher, error)
	// UpdateTeacher replaces the course links only when courseIDs is not nil.
	UpdateTeacher(ctx context.Context, teacher *Teacher, courseIDs []string) error
	DeleteTeacher(ctx context.Context, id string) error
	GetActiveTeachers(ctx context.Context) ([]Teacher, error)
}
