package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/procedures", h.ListProcedures)
	g.GET("/doctors", h.ListDoctors)
}

func (h *Handler) ListProcedures(c echo.Context) error {
	procedures, err := h.service.ListProcedures(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, procedures)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	doctors, err := h.service.ListDoctors(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, doctors)
}
