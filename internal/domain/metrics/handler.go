package metrics

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/health-metrics", h.Trend)
	api.POST("/health-metrics", h.Record)
}

func (h *Handler) Trend(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))
	items, err := h.svc.Trend(c.Request().Context(), c.QueryParam("type"), days)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Record(c echo.Context) error {
	var m HealthMetric
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Record(c.Request().Context(), &m); err != nil {
		if errors.Is(err, ErrInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}
