package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/akashtandel42/Salesmanagement/internal/application/dto"
	"github.com/akashtandel42/Salesmanagement/internal/application/usecase"
	"github.com/akashtandel42/Salesmanagement/internal/domain"
)

// AnalyticsHandler maneja los endpoints de agregación de ventas.
type AnalyticsHandler struct {
	svc usecase.AnalyticsService
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(svc usecase.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// TotalSales godoc
// @Summary      Total vendido en un rango de fechas (inclusivo)
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  true  "Inicio (YYYY-MM-DD o RFC3339)"
// @Param        endDate    query  string  true  "Fin (YYYY-MM-DD o RFC3339)"
// @Success      200  {object}  dto.TotalSalesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/totalsales [get]
func (h *AnalyticsHandler) TotalSales(c *fiber.Ctx) error {
	var req dto.DateRangeRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: err.Error()})
	}
	end, err := parseDate("endDate", req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: err.Error()})
	}
	total, err := h.svc.TotalSales(c.UserContext(), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.TotalSalesResponse{StartDate: req.StartDate, EndDate: req.EndDate, Total: total})
}

// SalesTrends godoc
// @Summary      Tendencia de ventas por intervalo
// @Description  Agrupa todas las ventas por día (YYYY-MM-DD), semana ISO (número) o mes (YYYY-MM).
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        interval  query  string  true  "daily | weekly | monthly"
// @Success      200  {object}  map[string]number
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/salestrends [get]
func (h *AnalyticsHandler) SalesTrends(c *fiber.Ctx) error {
	var req dto.SalesTrendsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	trends, err := h.svc.SalesTrends(c.UserContext(), req.Interval)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ARGUMENT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.AmountByKey(trends))
}

// TopProducts godoc
// @Summary      Productos más vendidos en el rango
// @Description  Ranking por monto total descendente; empates conservan el orden de primera aparición.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  true  "Inicio (YYYY-MM-DD o RFC3339)"
// @Param        endDate    query  string  true  "Fin (YYYY-MM-DD o RFC3339)"
// @Param        count      query  int     true  "Máximo de productos"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/topproducts [get]
func (h *AnalyticsHandler) TopProducts(c *fiber.Ctx) error {
	var req dto.TopProductsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: err.Error()})
	}
	end, err := parseDate("endDate", req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: err.Error()})
	}
	products, err := h.svc.TopSellingProducts(c.UserContext(), start, end, req.Count)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(products)
}

// SalesByRegion godoc
// @Summary      Total vendido por región
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]number
// @Router       /api/analytics/salesbyregion [get]
func (h *AnalyticsHandler) SalesByRegion(c *fiber.Ctx) error {
	byRegion, err := h.svc.SalesByRegion(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.AmountByKey(byRegion))
}
