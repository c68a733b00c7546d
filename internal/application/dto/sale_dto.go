package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	CustomerName string          `json:"customer_name" validate:"max=200"`
	Amount       decimal.Decimal `json:"amount"`
	SaleDate     time.Time       `json:"sale_date" validate:"required"`
	ProductID    int64           `json:"product_id"`
	RegionID     int64           `json:"region_id"`
}

// UpdateSaleRequest entrada para actualizar una venta (sobrescritura completa de los campos mutables).
type UpdateSaleRequest struct {
	CustomerName string          `json:"customer_name" validate:"max=200"`
	Amount       decimal.Decimal `json:"amount"`
	SaleDate     time.Time       `json:"sale_date" validate:"required"`
	ProductID    int64           `json:"product_id"`
	RegionID     int64           `json:"region_id"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name" validate:"max=200"`
	Amount       decimal.Decimal `json:"amount"`
	SaleDate     time.Time       `json:"sale_date"`
	ProductID    int64           `json:"product_id"`
	RegionID     int64           `json:"region_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
