package resource

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
	api.GET("/resources", h.List)
	api.GET("/resources/:id", h.Get)
	api.POST("/resources", h.Create)
}

func (h *Handler) List(c echo.Context) error {
	f := Filter{
		ResourceType: c.QueryParam("type"),
		Search:       c.QueryParam("search"),
	}
	items, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	p := pagination.FromContext(c)
	start, end := p.Slice(len(items))
	return c.JSON(http.StatusOK, items[start:end])
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	r, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "resource not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) Create(c echo.Context) error {
	var r Resource
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
