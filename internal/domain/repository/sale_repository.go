package repository

import (
	"context"

	"github.com/akashtandel42/Salesmanagement/internal/domain/entity"
)

//go:generate mockgen -source=sale_repository.go -destination=mocks/sale_repository_mock.go -package=mocks

// SaleRepository define el puerto de persistencia para Sale (DIP).
// GetByID devuelve (nil, nil) si la venta no existe.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id int64) error
	// List devuelve el snapshot completo de ventas (sin paginación).
	List(ctx context.Context) ([]*entity.Sale, error)
}
