package invoice

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/smrft/er-billing/internal/domain/billing"
)

type Handler struct {
	bills *billing.Service
}

func NewHandler(bills *billing.Service) *Handler {
	return &Handler{bills: bills}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/er-bills/:id/invoice", h.GetInvoice)
	g.GET("/er-bills/:id/invoice.pdf", h.GetInvoicePDF)
}

func (h *Handler) loadSnapshot(c echo.Context) (*billing.BillSnapshot, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid bill ID")
	}
	snap, err := h.bills.Get(c.Request().Context(), id)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if snap == nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "bill not found")
	}
	return snap, nil
}

// GetInvoice returns the laid-out document as JSON, for clients that do
// their own rendering.
func (h *Handler) GetInvoice(c echo.Context) error {
	snap, err := h.loadSnapshot(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, Project(snap))
}

// GetInvoicePDF returns the rendered cash bill.
func (h *Handler) GetInvoicePDF(c echo.Context) error {
	snap, err := h.loadSnapshot(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := WritePDF(Project(snap), &buf); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("inline; filename=%s.pdf", snap.BillNumber))
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
