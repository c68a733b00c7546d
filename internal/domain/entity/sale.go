package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta registrada. Amount nunca es negativo; SaleDate es obligatoria
// porque define el bucket de las tendencias.
type Sale struct {
	ID           int64
	CustomerName string
	Amount       decimal.Decimal
	SaleDate     time.Time
	ProductID    int64
	RegionID     int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InRange indica si la venta cae en [start, end] (ambos extremos incluidos).
func (s Sale) InRange(start, end time.Time) bool {
	return !s.SaleDate.Before(start) && !s.SaleDate.After(end)
}
