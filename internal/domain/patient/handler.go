package patient

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/carepulse/carepulse/internal/platform/db"
	"github.com/carepulse/carepulse/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients", h.List)
	api.GET("/patients/:id", h.Get)
	api.POST("/patients", h.Create)
	api.PATCH("/patients/:id/status", h.UpdateStatus)
	api.GET("/patients/:id/vital-signs", h.VitalHistory)
	api.POST("/vital-signs", h.RecordVitals)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *Handler) List(c echo.Context) error {
	f := Filter{
		Search: c.QueryParam("search"),
		Status: c.QueryParam("status"),
	}
	items, err := h.svc.List(c.Request().Context(), f, c.QueryParam("sort"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	p := pagination.FromContext(c)
	start, end := p.Slice(len(items))
	return c.JSON(http.StatusOK, items[start:end])
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Create(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Create(c.Request().Context(), &p); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return echo.NewHTTPError(http.StatusConflict, "mrn already registered")
		}
		if errors.Is(err, ErrInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.UpdateStatus(c.Request().Context(), id, body.Status)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		if errors.Is(err, ErrInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) VitalHistory(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	items, err := h.svc.VitalHistory(c.Request().Context(), id, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) RecordVitals(c echo.Context) error {
	var v VitalSign
	if err := c.Bind(&v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.RecordVitals(c.Request().Context(), &v); err != nil {
		if errors.Is(err, ErrInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, v)
}
