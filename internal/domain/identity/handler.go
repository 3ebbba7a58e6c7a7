package identity

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepulse/carepulse/internal/platform/db"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/users", h.List)
	api.GET("/users/me", h.Me)
	api.POST("/users", h.Create)
}

func (h *Handler) List(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, users)
}

// Me returns the demo session user. There is no session layer; the
// dashboard always acts as the first registered user.
func (h *Handler) Me(c echo.Context) error {
	u, err := h.svc.Get(c.Request().Context(), 1)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) Create(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return echo.NewHTTPError(http.StatusConflict, "username already taken")
		}
		if errors.Is(err, ErrInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, u)
}
