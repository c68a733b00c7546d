package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akashtandel42/Salesmanagement/internal/application/dto"
	"github.com/akashtandel42/Salesmanagement/internal/domain/analytics"
	"github.com/akashtandel42/Salesmanagement/internal/domain/entity"
	"github.com/akashtandel42/Salesmanagement/internal/domain/repository"
)

// AnalyticsService contrato de analítica de ventas que consumen los handlers HTTP.
type AnalyticsService interface {
	TotalSales(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	SalesTrends(ctx context.Context, interval string) (map[string]decimal.Decimal, error)
	TopSellingProducts(ctx context.Context, start, end time.Time, count int) ([]dto.ProductResponse, error)
	SalesByRegion(ctx context.Context) (map[string]decimal.Decimal, error)
}

// ProductLookup enriquece el ranking de productos con los datos del catálogo.
// repository.ProductRepository la satisface.
type ProductLookup interface {
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
}

var _ AnalyticsService = (*AnalyticsUseCase)(nil)

// AnalyticsUseCase obtiene un snapshot de ventas por llamada y delega el cálculo al motor de agregación.
type AnalyticsUseCase struct {
	saleRepo repository.SaleRepository
	products ProductLookup
}

// AnalyticsOption configura opciones del caso de uso.
type AnalyticsOption func(*AnalyticsUseCase)

// WithProductLookup activa el enriquecimiento del ranking de productos más vendidos.
func WithProductLookup(lookup ProductLookup) AnalyticsOption {
	return func(uc *AnalyticsUseCase) {
		uc.products = lookup
	}
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(saleRepo repository.SaleRepository, opts ...AnalyticsOption) *AnalyticsUseCase {
	uc := &AnalyticsUseCase{saleRepo: saleRepo}
	for _, opt := range opts {
		if opt != nil {
			opt(uc)
		}
	}
	return uc
}

// TotalSales suma de ventas en [start, end].
func (uc *AnalyticsUseCase) TotalSales(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	sales, err := uc.snapshot(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return analytics.TotalSales(sales, start, end), nil
}

// SalesTrends tendencias por intervalo. El intervalo se valida antes de consultar el repositorio.
func (uc *AnalyticsUseCase) SalesTrends(ctx context.Context, interval string) (map[string]decimal.Decimal, error) {
	iv, err := analytics.ParseInterval(interval)
	if err != nil {
		return nil, err
	}
	sales, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.SalesTrends(sales, iv)
}

// TopSellingProducts devuelve hasta count productos ordenados por monto vendido en [start, end].
// Sin lookup, o si el producto no está en el catálogo, se devuelve un stub con solo el ID.
func (uc *AnalyticsUseCase) TopSellingProducts(ctx context.Context, start, end time.Time, count int) ([]dto.ProductResponse, error) {
	if count <= 0 {
		return []dto.ProductResponse{}, nil
	}
	sales, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	ranked := analytics.RankProducts(sales, start, end, count)
	out := make([]dto.ProductResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, uc.productFor(ctx, r.ProductID))
	}
	return out, nil
}

// SalesByRegion suma de ventas por región.
func (uc *AnalyticsUseCase) SalesByRegion(ctx context.Context) (map[string]decimal.Decimal, error) {
	sales, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.SalesByRegion(sales), nil
}

func (uc *AnalyticsUseCase) snapshot(ctx context.Context) ([]*entity.Sale, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics: ventas: %w", err)
	}
	return sales, nil
}

func (uc *AnalyticsUseCase) productFor(ctx context.Context, id int64) dto.ProductResponse {
	stub := dto.ProductResponse{ID: id}
	if uc.products == nil {
		return stub
	}
	p, err := uc.products.GetByID(ctx, id)
	if err != nil || p == nil {
		return stub
	}
	return *toProductResponse(p)
}
