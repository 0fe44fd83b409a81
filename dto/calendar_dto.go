package dto

import (
	"time"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/utils"
)

type CalendarEventRequest struct {
	Title             string  `json:"title" binding:"required,min=1,max=150"`
	Description       *string `json:"description" binding:"omitempty,max=2000"`
	Date              string  `json:"date" binding:"required,dateformat"`
	StartTime         string  `json:"start_time" binding:"required,timeformat"`
	EndTime           string  `json:"end_time" binding:"required,timeformat"`
	TeacherID         *string `json:"teacher_id" binding:"omitempty,uuid"`
	CourseID          *string `json:"course_id" binding:"omitempty,uuid"`
	Room              string  `json:"room" binding:"omitempty,max=50"`
	Category          string  `json:"category" binding:"omitempty,oneof=class meeting event holiday"`
	Color             string  `json:"color" binding:"omitempty,max=20"`
	RecurrencePattern *string `json:"recurrence_pattern" binding:"omitempty,oneof=daily weekly monthly"`
	RecurrenceEnd     *string `json:"recurrence_end" binding:"omitempty,dateformat"`
}

type CalendarQuery struct {
	From      string `form:"from" binding:"omitempty,dateformat"`
	To        string `form:"to" binding:"omitempty,dateformat"`
	TeacherID string `form:"teacher_id" binding:"omitempty,uuid"`
	CourseID  string `form:"course_id" binding:"omitempty,uuid"`
}

// CalendarEventResponse flattens the teacher and course names like the calendar view expects.
type CalendarEventResponse struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Description       *string `json:"description,omitempty"`
	Date              string  `json:"date"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	TeacherID         *string `json:"teacher_id,omitempty"`
	TeacherName       string  `json:"teacher_name,omitempty"`
	CourseID          *string `json:"course_id,omitempty"`
	CourseName        string  `json:"course_name,omitempty"`
	Room              string  `json:"room"`
	Category          string  `json:"category"`
	Color             string  `json:"color"`
	RecurrencePattern *string `json:"recurrence_pattern,omitempty"`
	RecurrenceEnd     string  `json:"recurrence_end,omitempty"`
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func MapCalendarEventRequestToEvent(id string, req *CalendarEventRequest, loc *time.Location) *domain.CalendarEvent {
	date, _ := utils.ParseDate(req.Date, loc)
	event := &domain.CalendarEvent{
		Base:              domain.Base{ID: id},
		Title:             req.Title,
		Description:       req.Description,
		Date:              date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		TeacherID:         emptyToNil(req.TeacherID),
		CourseID:          emptyToNil(req.CourseID),
		Room:              req.Room,
		Category:          req.Category,
		Color:             req.Color,
		RecurrencePattern: emptyToNil(req.RecurrencePattern),
	}
	if req.RecurrenceEnd != nil && *req.RecurrenceEnd != "" {
		end, _ := utils.ParseDate(*req.RecurrenceEnd, loc)
		event.RecurrenceEnd = &end
	}
	return event
}

func MapCalendarQueryToFilter(q *CalendarQuery, loc *time.Location) domain.CalendarFilter {
	filter := domain.CalendarFilter{TeacherID: q.TeacherID, CourseID: q.CourseID}
	if q.From != "" {
		from, _ := utils.ParseDate(q.From, loc)
		filter.From = &from
	}
	if q.To != "" {
		to, _ := utils.ParseDate(q.To, loc)
		filter.To = &to
	}
	return filter
}

func MapEventToResponse(e domain.CalendarEvent) CalendarEventResponse {
	resp := CalendarEventResponse{
		ID:                e.ID,
		Title:             e.Title,
		Description:       e.Description,
		Date:              e.Date.Format(utils.DateLayout),
		StartTime:         e.StartTime,
		EndTime:           e.EndTime,
		TeacherID:         e.TeacherID,
		CourseID:          e.CourseID,
		Room:              e.Room,
		Category:          e.Category,
		Color:             e.Color,
		RecurrencePattern: e.RecurrencePattern,
	}
	if e.Teacher != nil {
		resp.TeacherName = e.Teacher.Name
	}
	if e.Course != nil {
		resp.CourseName = e.Course.Name
	}
	if e.RecurrenceEnd != nil {
		resp.RecurrenceEnd = e.RecurrenceEnd.Format(utils.DateLayout)
	}
	return resp
}

func MapEventsToResponse(events []domain.CalendarEvent) []CalendarEventResponse {
	out := make([]CalendarEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, MapEventToResponse(e))
	}
	return out
}
