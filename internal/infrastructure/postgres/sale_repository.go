package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	sq "github.com/Masterminds/squirrel"

	"github.com/akashtandel42/Salesmanagement/internal/domain/entity"
	"github.com/akashtandel42/Salesmanagement/internal/domain/repository"
)

const salesTable = "sales"

var saleColumns = []string{"id", "customer_name", "amount", "sale_date", "product_id", "region_id", "created_at", "updated_at"}

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta; el ID lo asigna la base (BIGSERIAL).
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query, args, err := psql.Insert(salesTable).
		Columns("customer_name", "amount", "sale_date", "product_id", "region_id", "created_at", "updated_at").
		Values(sale.CustomerName, sale.Amount, sale.SaleDate, sale.ProductID, sale.RegionID, sale.CreatedAt, sale.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert sale: %w", err)
	}
	if err := r.q.QueryRow(ctx, query, args...).Scan(&sale.ID); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	query, args, err := psql.Select(saleColumns...).From(salesTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get sale: %w", err)
	}
	s, err := scanSale(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

// Update actualiza una venta existente; si no existe no hace nada.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	query, args, err := psql.Update(salesTable).
		Set("customer_name", sale.CustomerName).
		Set("amount", sale.Amount).
		Set("sale_date", sale.SaleDate).
		Set("product_id", sale.ProductID).
		Set("region_id", sale.RegionID).
		Set("updated_at", sale.UpdatedAt).
		Where(sq.Eq{"id": sale.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update sale: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina la venta; borrar un ID inexistente no es error.
func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	query, args, err := psql.Delete(salesTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete sale: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// List devuelve todas las ventas ordenadas por ID.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	query, args, err := psql.Select(saleColumns...).From(salesTable).OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list sales: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(&s.ID, &s.CustomerName, &s.Amount, &s.SaleDate, &s.ProductID, &s.RegionID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
