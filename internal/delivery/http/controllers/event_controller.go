package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"communitycalendar/internal/delivery/http/helpers"
	"communitycalendar/internal/delivery/http/middleware"
	"communitycalendar/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// DeleteEventResponse is the response body for DELETE /events/{id}.
type DeleteEventResponse struct {
	Success bool `json:"success"`
}

// ListEvents godoc
// @Summary List events
// @Description Returns events ascending by start date. With both start and end query params, only events whose interval intersects the inclusive [start, end] window are returned; with neither, every event is returned. A lone start or end is ignored.
// @Tags events
// @Produce json
// @Param start query string false "Window start (ISO timestamp)"
// @Param end query string false "Window end (ISO timestamp)"
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	var window *domain.TimeWindow
	startParam := r.URL.Query().Get("start")
	endParam := r.URL.Query().Get("end")
	// Both-or-neither: a single bound is ignored, matching historical behavior.
	if startParam != "" && endParam != "" {
		start, errStart := domain.ParseTimestamp(startParam)
		end, errEnd := domain.ParseTimestamp(endParam)
		if errStart != nil || errEnd != nil {
			c.Logger.ErrorContext(r.Context(), "bad range window", "path", r.URL.Path, "start", startParam, "end", endParam)
			helpers.WriteError(w, http.StatusInternalServerError, "failed to fetch events")
			return
		}
		window = &domain.TimeWindow{Start: start, End: end}
	}

	events, err := c.Service.List(r.Context(), window)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "failed to fetch events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event from the posted fields. Title, startDate and endDate are required; an imageUrl longer than 2048 characters is rejected; dates must parse. Requires authentication.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body domain.EventInput true "Event fields"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var in domain.EventInput
	if !helpers.Decode(w, r, &in) {
		return
	}
	event, err := c.Service.Create(r.Context(), in)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			helpers.WriteError(w, http.StatusBadRequest, verr.Message)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "failed to create event")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	event, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "failed to fetch event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Full overwrite of every mutable field. An unknown id is not reported separately from other failures. Requires authentication.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param event body domain.EventInput true "Event fields"
// @Success 200 {object} domain.Event
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id := r.PathValue("id")
	var in domain.EventInput
	if !helpers.Decode(w, r, &in) {
		return
	}
	event, err := c.Service.Update(r.Context(), id, in)
	if err != nil {
		// NotFound deliberately collapses into 500 here.
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "failed to update event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} DeleteEventResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	id := r.PathValue("id")
	if err := c.Service.Delete(r.Context(), id); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, DeleteEventResponse{Success: true})
}
