package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akashtandel42/Salesmanagement/internal/application/dto"
	"github.com/akashtandel42/Salesmanagement/internal/domain"
	"github.com/akashtandel42/Salesmanagement/internal/domain/entity"
	"github.com/akashtandel42/Salesmanagement/internal/domain/repository"
)

// SaleUseCase casos de uso CRUD para ventas.
type SaleUseCase struct {
	repo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// Create registra una venta. El ID lo asigna el repositorio.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := validateSale(in.Amount, in.SaleDate); err != nil {
		return nil, err
	}
	now := time.Now()
	sale := &entity.Sale{
		CustomerName: in.CustomerName,
		Amount:       in.Amount,
		SaleDate:     in.SaleDate,
		ProductID:    in.ProductID,
		RegionID:     in.RegionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID. Devuelve (nil, nil) si no existe.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// Update sobrescribe customerName, amount, saleDate, productId y regionId.
// Devuelve (nil, nil) si la venta no existe.
func (uc *SaleUseCase) Update(ctx context.Context, id int64, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if err := validateSale(in.Amount, in.SaleDate); err != nil {
		return nil, err
	}
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	sale.CustomerName = in.CustomerName
	sale.Amount = in.Amount
	sale.SaleDate = in.SaleDate
	sale.ProductID = in.ProductID
	sale.RegionID = in.RegionID
	sale.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List devuelve todas las ventas.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return items, nil
}

// Delete elimina una venta por ID. Eliminar un ID inexistente no es error.
func (uc *SaleUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

func validateSale(amount decimal.Decimal, saleDate time.Time) error {
	if amount.IsNegative() || saleDate.IsZero() {
		return domain.ErrInvalidInput
	}
	return nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:           s.ID,
		CustomerName: s.CustomerName,
		Amount:       s.Amount,
		SaleDate:     s.SaleDate,
		ProductID:    s.ProductID,
		RegionID:     s.RegionID,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
