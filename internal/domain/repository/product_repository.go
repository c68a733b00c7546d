package repository

import (
	"context"

	"github.com/akashtandel42/Salesmanagement/internal/domain/entity"
)

//go:generate mockgen -source=product_repository.go -destination=mocks/product_repository_mock.go -package=mocks

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Product, error)
}
