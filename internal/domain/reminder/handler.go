package reminder

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carepulse/carepulse/internal/platform/db"
)

type Handler struct {
	svc *Service
	now func() time.Time
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/reminders", h.List)
	api.GET("/reminders/grouped", h.Grouped)
	api.POST("/reminders", h.Create)
	api.PATCH("/reminders/:id/complete", h.Complete)
}

func filterFromQuery(c echo.Context) Filter {
	f := Filter{
		Priority: c.QueryParam("priority"),
		Type:     c.QueryParam("type"),
		Search:   c.QueryParam("search"),
	}
	if v := c.QueryParam("completed"); v != "" {
		completed := v == "true"
		f.Completed = &completed
	}
	return f
}

// List serves three shapes from one route: the upcoming panel
// (?upcoming=true), a patient's schedule (?patientId=), and the full
// filtered list.
func (h *Handler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("upcoming") == "true" {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		items, err := h.svc.Upcoming(ctx, h.now(), limit)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, items)
	}

	if v := c.QueryParam("patientId"); v != "" {
		patientID, err := strconv.ParseInt(v, 10, 64)
		if err != nil || patientID <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patientId")
		}
		items, err := h.svc.ListByPatient(ctx, patientID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, items)
	}

	items, err := h.svc.List(ctx, filterFromQuery(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Grouped(c echo.Context) error {
	groups, err := h.svc.Grouped(c.Request().Context(), filterFromQuery(c), h.now())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, groups)
}

func (h *Handler) Create(c echo.Context) error {
	var r Reminder
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &r); err != nil {
		if errors.Is(err, ErrInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) Complete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	r, err := h.svc.Complete(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "reminder not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, r)
}
