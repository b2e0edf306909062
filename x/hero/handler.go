// Package hero is handling herodex Hero object
package hero

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/totegamma/herodex/x/core"
)

var tracer = otel.Tracer("hero")

const defaultLimit = 100

// Handler is the interface for handling HTTP requests
type Handler interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Count(c echo.Context) error
}

type handler struct {
	service Service
}

// NewHandler creates a new handler
func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// Create creates a new hero
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerCreate")
	defer span.End()

	var request createRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	if request.Name == "" || request.SecretName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": "name and secret_name are required"})
	}

	created, err := h.service.Create(ctx, Hero{
		Name:       request.Name,
		SecretName: request.SecretName,
		Age:        request.Age,
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

// List returns heroes with skip/limit pagination
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerList")
	defer span.End()

	var skip int64 = 0
	if param := c.QueryParam("skip"); param != "" {
		parsed, err := strconv.ParseInt(param, 10, 64)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": "skip must be a non-negative integer"})
		}
		skip = parsed
	}

	var limit int64 = defaultLimit
	if param := c.QueryParam("limit"); param != "" {
		parsed, err := strconv.ParseInt(param, 10, 64)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": "limit must be a non-negative integer"})
		}
		limit = parsed
	}
	if limit > defaultLimit {
		limit = defaultLimit
	}

	heroes, err := h.service.List(ctx, skip, limit)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": heroes})
}

// Get returns a hero by id
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerGet")
	defer span.End()

	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": "id is required"})
	}

	hero, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrInvalidID) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": "invalid hero id format"})
		}
		if errors.Is(err, core.ErrHeroNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Hero not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": hero})
}

// Update applies a partial update to a hero
func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerUpdate")
	defer span.End()

	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": "id is required"})
	}

	var request Update
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	updated, err := h.service.Update(ctx, id, request)
	if err != nil {
		if errors.Is(err, core.ErrInvalidID) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": "invalid hero id format"})
		}
		if errors.Is(err, core.ErrHeroNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Hero not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

// Delete removes a hero by id
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerDelete")
	defer span.End()

	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": "id is required"})
	}

	_, err := h.service.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, core.ErrInvalidID) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": "invalid hero id format"})
		}
		if errors.Is(err, core.ErrHeroNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Hero not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Count returns the total number of heroes
func (h handler) Count(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "HandlerCount")
	defer span.End()

	count, err := h.service.Count(ctx)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": count})
}
