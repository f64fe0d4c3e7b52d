package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thereayou/campus-connect/internal/cache"
	"github.com/thereayou/campus-connect/internal/handlers/dto"
	"github.com/thereayou/campus-connect/internal/middleware"
	"github.com/thereayou/campus-connect/internal/models"
	"github.com/thereayou/campus-connect/internal/services"
	"github.com/thereayou/campus-connect/pkg/httperr"
)

const eventsLimit = 50

type EventHandler struct {
	events services.EventStore
	cache  cache.Cache
}

func NewEventHandler(events services.EventStore, feedCache cache.Cache) *EventHandler {
	return &EventHandler{events: events, cache: feedCache}
}

// CreateEvent создает событие и сбрасывает кэш афиши
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(httperr.BadRequest("Title and startDate are required for an event"))
		return
	}

	event := &models.Event{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		CreatedByID:   userID,
		CoverImageURL: req.CoverImageURL,
	}

	if err := h.events.SaveEvent(event); err != nil {
		c.Error(err)
		return
	}

	full, err := h.events.GetEvent(event.ID.String())
	if err != nil {
		c.Error(err)
		return
	}

	h.invalidateEventsCache(c)

	c.JSON(http.StatusCreated, formatEventResponse(full))
}

// GetUpcoming отдает афишу по схеме cache-aside, как лента постов
func (h *EventHandler) GetUpcoming(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		cached, err := h.cache.Get(ctx, cache.EventsKey)
		if err != nil {
			log.Printf("Redis GET events cache error: %v", err)
		} else if cached != "" {
			if json.Valid([]byte(cached)) {
				c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
				return
			}
			log.Printf("Malformed events cache entry, falling back to database")
		}
	}

	events, err := h.events.UpcomingEvents(eventsLimit)
	if err != nil {
		c.Error(err)
		return
	}

	responses := make([]dto.EventResponse, len(events))
	for i := range events {
		responses[i] = formatEventResponse(&events[i])
	}

	payload, err := json.Marshal(responses)
	if err != nil {
		c.Error(err)
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, cache.EventsKey, string(payload), cache.TTL); err != nil {
			log.Printf("Redis SET events cache error: %v", err)
		}
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// ToggleAttendance записывает участника или убирает его
func (h *EventHandler) ToggleAttendance(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(httperr.NotFound("Event not found"))
		return
	}

	attendeesCount, joined, err := h.events.ToggleEventAttendance(eventID, userID)
	if err != nil {
		c.Error(notFoundOr(err, "Event not found"))
		return
	}

	h.invalidateEventsCache(c)

	c.JSON(http.StatusOK, gin.H{
		"attendeesCount": attendeesCount,
		"joined":         joined,
	})
}

func (h *EventHandler) invalidateEventsCache(c *gin.Context) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Del(c.Request.Context(), cache.EventsKey); err != nil {
		log.Printf("Failed to delete events cache: %v", err)
	}
}
