// Package memory contiene adaptadores de persistencia en memoria. Cada instancia es independiente
// (sin estado global); se usan con STORAGE_DRIVER=memory y en tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/akashtandel42/Salesmanagement/internal/domain/entity"
	"github.com/akashtandel42/Salesmanagement/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación en memoria de SaleRepository. Devuelve copias para que los
// llamadores no muten el estado interno.
type SaleRepo struct {
	mu     sync.RWMutex
	sales  map[int64]*entity.Sale
	nextID int64
}

// NewSaleRepository construye un repositorio vacío.
func NewSaleRepository() *SaleRepo {
	return &SaleRepo{sales: map[int64]*entity.Sale{}}
}

// Create asigna el siguiente ID y guarda una copia.
func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	sale.ID = r.nextID
	clone := *sale
	r.sales[clone.ID] = &clone
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(_ context.Context, id int64) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

// Update reemplaza la venta si existe; si no existe no hace nada.
func (r *SaleRepo) Update(_ context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sales[sale.ID]; !ok {
		return nil
	}
	clone := *sale
	r.sales[clone.ID] = &clone
	return nil
}

// Delete es idempotente.
func (r *SaleRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sales, id)
	return nil
}

// List devuelve el snapshot completo ordenado por ID (orden de inserción).
func (r *SaleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		clone := *s
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
