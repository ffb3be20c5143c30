package billing

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/smrft/er-billing/internal/domain/catalog"
	"github.com/smrft/er-billing/pkg/pagination"
)

type Handler struct {
	service *Service
	catalog *catalog.Service
}

func NewHandler(service *Service, catalogSvc *catalog.Service) *Handler {
	return &Handler{service: service, catalog: catalogSvc}
}

func (h *Handler) RegisterRoutes(g *echo.Group) {
	g.GET("/next-bill-number", h.NextBillNumber)
	g.POST("/er-bills", h.SubmitBill)
	g.GET("/er-bills", h.ListBills)
	g.GET("/er-bills/:id", h.GetBill)
}

func (h *Handler) NextBillNumber(c echo.Context) error {
	number, err := h.service.NextBillNumber(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"bill_number": number})
}

type submitLineItem struct {
	Name string `json:"name"`
	// Raw so an explicit null can be told apart from an absent key. Absent
	// keeps the default quantity of 1; null unsets it and zeroes the amount.
	Quantity json.RawMessage `json:"quantity"`
	UnitRate *float64        `json:"unit_rate"`
}

// quantityInput normalizes the submitted quantity into the raw clerk input
// the registry expects. Numbers and strings both pass through as text.
func quantityInput(raw json.RawMessage) string {
	s := strings.TrimSpace(string(raw))
	if s == "null" {
		return ""
	}
	var quoted string
	if err := json.Unmarshal(raw, &quoted); err == nil {
		return quoted
	}
	return s
}

type submitBillRequest struct {
	BillNumber string           `json:"bill_number"`
	ERNumber   string           `json:"er_number"`
	Patient    Patient          `json:"patient"`
	DoctorName string           `json:"doctor_name"`
	BillDate   string           `json:"bill_date"`
	LineItems  []submitLineItem `json:"line_items"`
	Discount   string           `json:"discount"`
}

// SubmitBill replays the submitted line items through a fresh editing
// session before finalizing, so duplicate and unknown procedures are
// rejected and every amount is derived server-side.
func (h *Handler) SubmitBill(c echo.Context) error {
	var req submitBillRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	snap, err := h.catalog.Snapshot(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// A resubmission of a stored bill may carry procedure names the current
	// catalog no longer lists; those stay billable at the submitted rate.
	resubmission := false
	if req.BillNumber != "" {
		existing, err := h.service.GetByBillNumber(ctx, req.BillNumber)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		resubmission = existing != nil
	}

	reg := NewLineItemRegistry(snap)
	for _, item := range req.LineItems {
		err := reg.Add(item.Name)
		if errors.Is(err, ErrUnknownProcedure) && resubmission {
			err = reg.AddOffCatalog(item.Name)
		}
		if err != nil {
			switch {
			case errors.Is(err, ErrDuplicateLineItem):
				return echo.NewHTTPError(http.StatusConflict, err.Error())
			case errors.Is(err, ErrUnknownProcedure):
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			default:
				return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
			}
		}
		if item.UnitRate != nil {
			reg.SetRate(item.Name, strconv.FormatFloat(*item.UnitRate, 'f', -1, 64))
		}
		if len(item.Quantity) > 0 {
			reg.SetQuantity(item.Name, quantityInput(item.Quantity))
		}
	}
	reg.SetDiscount(req.Discount)

	bill, err := AssembleSnapshot(req.Patient, req.DoctorName, req.BillNumber,
		req.ERNumber, req.BillDate, reg.Items(), reg.Discount())
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stored, err := h.service.Submit(ctx, bill)
	if err != nil {
		if errors.Is(err, ErrSubmitRejected) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, stored)
}

func (h *Handler) GetBill(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid bill ID")
	}

	bill, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if bill == nil {
		return echo.NewHTTPError(http.StatusNotFound, "bill not found")
	}
	return c.JSON(http.StatusOK, bill)
}

func (h *Handler) ListBills(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date query parameter is required")
	}

	params := pagination.FromContext(c)
	bills, total, err := h.service.ListByDate(c.Request().Context(), date, params.Limit, params.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(bills, total, params.Limit, params.Offset))
}
