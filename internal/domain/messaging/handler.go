package messaging

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
	api.GET("/messages", h.List)
	api.POST("/messages", h.Send)
}

func (h *Handler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	items, err := h.svc.List(c.Request().Context(), limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

// Send persists the posted message and returns it together with the
// assistant's reply when one was produced.
func (h *Handler) Send(c echo.Context) error {
	var m Message
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	reply, err := h.svc.Send(c.Request().Context(), &m)
	if err != nil {
		if errors.Is(err, ErrInvalid) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp := map[string]any{"message": m}
	if reply != nil {
		resp["reply"] = reply
	}
	return c.JSON(http.StatusCreated, resp)
}
