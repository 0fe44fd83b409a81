package delivery

import (
	"net/http"
	"strconv"
	"time"

	"github.com/enzoobispoo/EduSystem/domain"
	"github.com/enzoobispoo/EduSystem/dto"
	"github.com/enzoobispoo/EduSystem/utils"
	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	uc  domain.CalendarUseCase
	loc *time.Location
}

func NewCalendarHandler(r gin.IRouter, uc domain.CalendarUseCase, loc *time.Location) {
	h := &CalendarHandler{uc: uc, loc: loc}

	events := r.Group("/calendar/events")
	{
		events.GET("", h.GetEvents)
		events.POST("", h.CreateEvent)
		events.GET("/:id", h.GetEventByID)
		events.PUT("/:id", h.UpdateEvent)
		events.DELETE("/:id", h.DeleteEvent)
		events.GET("/:id/occurrences", h.GetOccurrences)
	}
}

func (h *CalendarHandler) GetEvents(c *gin.Context) {
	var q dto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, "GetEvents", "Failed to get events", err)
		return
	}
	events, err := h.uc.GetEvents(c.Request.Context(), dto.MapCalendarQueryToFilter(&q, h.loc))
	if err != nil {
		respondError(c, "GetEvents", "Failed to get events", err)
		return
	}
	respondData(c, http.StatusOK, "GetEvents", dto.MapEventsToResponse(events))
}

func (h *CalendarHandler) GetEventByID(c *gin.Context) {
	event, err := h.uc.GetEventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "GetEventByID", "Failed to get event", err)
		return
	}
	respondData(c, http.StatusOK, "GetEventByID", dto.MapEventToResponse(*event))
}

func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var req dto.CalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "CreateEvent", "Failed to create event", err)
		return
	}
	event, err := h.uc.CreateEvent(c.Request.Context(), dto.MapCalendarEventRequestToEvent("", &req, h.loc))
	if err != nil {
		respondError(c, "CreateEvent", "Failed to create event", err)
		return
	}
	respondData(c, http.StatusCreated, "CreateEvent", dto.MapEventToResponse(*event))
}

func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	var req dto.CalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateEvent", "Failed to update event", err)
		return
	}
	event, err := h.uc.UpdateEvent(c.Request.Context(), dto.MapCalendarEventRequestToEvent(c.Param("id"), &req, h.loc))
	if err != nil {
		respondError(c, "UpdateEvent", "Failed to update event", err)
		return
	}
	respondData(c, http.StatusOK, "UpdateEvent", dto.MapEventToResponse(*event))
}

func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	if err := h.uc.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, "DeleteEvent", "Failed to delete event", err)
		return
	}
	respondMessage(c, "DeleteEvent", "Event deleted successfully")
}

func (h *CalendarHandler) GetOccurrences(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(c, "GetOccurrences", "Failed to expand event", domain.Invalid("limit must be a positive number"))
			return
		}
		limit = n
	}

	dates, err := h.uc.GetOccurrences(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		respondError(c, "GetOccurrences", "Failed to expand event", err)
		return
	}
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(utils.DateLayout))
	}
	respondData(c, http.StatusOK, "GetOccurrences", out)
}
