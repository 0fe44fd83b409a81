package domain

import "context"

type CourseUseCase interface {
	CreateCourse(ctx context.Context, course *Course) (*Course, error)
	GetAllCourses(ctx context.Context) ([]Course, error)
	GetCourseByID(ctx context.Context, id string) (*Course, error)
	UpdateCourse(ctx context.Context, course *Course) (*Course, error)
	DeleteCourse(ctx context.Context, id string) error
}

type CourseRepository interface {
	CreateCourse(ctx context.Context, course *Course) error
	GetAllCourses(ctx context.Context) ([]Course, error)
	GetCourseByID(ctx context.Context, id string) (*Course, error)
	GetCoursesByIDs(ctx context.Context, ids []string) ([]Course, error)
	UpdateCourse(ctx context.Context, course *Course) error
	DeleteCourse(ctx context.Context, id string) error
}
