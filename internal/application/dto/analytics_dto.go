package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// DateRangeRequest rango de fechas inclusivo. Acepta YYYY-MM-DD o RFC3339.
type DateRangeRequest struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

// TopProductsRequest parámetros para GET /api/analytics/topproducts.
type TopProductsRequest struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Count     int    `query:"count"`
}

// SalesTrendsRequest parámetros para GET /api/analytics/salestrends.
type SalesTrendsRequest struct {
	Interval string `query:"interval"` // daily | weekly | monthly
}

// ── Respuestas ────────────────────────────────────────────────────────────────

// TotalSalesResponse total vendido en el período.
type TotalSalesResponse struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Total     decimal.Decimal `json:"total"`
}

// AmountByKey mapa clave → monto (bucket de tendencia o región).
type AmountByKey map[string]decimal.Decimal
