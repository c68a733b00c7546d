// Package analytics implementa el motor de agregación de ventas (servicio de dominio puro).
// Opera sobre un snapshot en memoria de ventas; nunca muta la entrada ni consulta el repositorio.
package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/akashtandel42/Salesmanagement/internal/domain"
	"github.com/akashtandel42/Salesmanagement/internal/domain/entity"
)

// Interval modo de agrupación temporal para las tendencias.
type Interval string

const (
	IntervalDaily   Interval = "daily"
	IntervalWeekly  Interval = "weekly"
	IntervalMonthly Interval = "monthly"
)

const (
	dailyLayout   = "2006-01-02"
	monthlyLayout = "2006-01"
)

// ProductTotal monto acumulado de un producto dentro del ranking.
type ProductTotal struct {
	ProductID int64
	Total     decimal.Decimal
}

// TotalSales suma Amount de las ventas con start <= SaleDate <= end.
// Un rango invertido no es error: simplemente no hay ventas en el filtro y devuelve 0.
func TotalSales(sales []*entity.Sale, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		if s == nil || !s.InRange(start, end) {
			continue
		}
		total = total.Add(s.Amount)
	}
	return total
}

// ParseInterval valida el texto del intervalo. No normaliza mayúsculas: "Daily" es inválido.
func ParseInterval(s string) (Interval, error) {
	interval := Interval(s)
	switch interval {
	case IntervalDaily, IntervalWeekly, IntervalMonthly:
		return interval, nil
	default:
		return "", fmt.Errorf("%w: intervalo %q no soportado (daily, weekly, monthly)", domain.ErrInvalidArgument, s)
	}
}

// BucketKey devuelve la clave de agrupación de t para el intervalo dado.
//   - daily:   YYYY-MM-DD
//   - weekly:  número de semana ISO-8601 (lunes, primera semana con 4 días) sin año
//   - monthly: YYYY-MM
//
// La clave se calcula siempre en UTC: el mismo instante cae en el mismo bucket sin importar
// la zona horaria con la que llegue (JSON del cliente, TIMESTAMPTZ leído en time.Local).
func BucketKey(t time.Time, interval Interval) (string, error) {
	t = t.UTC()
	switch interval {
	case IntervalDaily:
		return t.Format(dailyLayout), nil
	case IntervalWeekly:
		_, week := t.ISOWeek()
		return strconv.Itoa(week), nil
	case IntervalMonthly:
		return t.Format(monthlyLayout), nil
	default:
		return "", fmt.Errorf("%w: intervalo %q no soportado (daily, weekly, monthly)", domain.ErrInvalidArgument, string(interval))
	}
}

// SalesTrends agrupa todas las ventas (sin filtro de fechas) por bucket y suma Amount.
// Un intervalo desconocido falla antes de recorrer las ventas.
func SalesTrends(sales []*entity.Sale, interval Interval) (map[string]decimal.Decimal, error) {
	if _, err := ParseInterval(string(interval)); err != nil {
		return nil, err
	}
	trends := make(map[string]decimal.Decimal)
	for _, s := range sales {
		if s == nil {
			continue
		}
		key, _ := BucketKey(s.SaleDate, interval)
		trends[key] = trends[key].Add(s.Amount)
	}
	return trends, nil
}

// RankProducts filtra por [start, end], agrupa por ProductID y ordena por total descendente.
// Los empates conservan el orden en que cada producto apareció por primera vez (sort estable).
// count <= 0 devuelve un slice vacío.
func RankProducts(sales []*entity.Sale, start, end time.Time, count int) []ProductTotal {
	if count <= 0 {
		return []ProductTotal{}
	}
	index := make(map[int64]int)
	groups := make([]ProductTotal, 0)
	for _, s := range sales {
		if s == nil || !s.InRange(start, end) {
			continue
		}
		i, ok := index[s.ProductID]
		if !ok {
			i = len(groups)
			index[s.ProductID] = i
			groups = append(groups, ProductTotal{ProductID: s.ProductID, Total: decimal.Zero})
		}
		groups[i].Total = groups[i].Total.Add(s.Amount)
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Total.GreaterThan(groups[b].Total)
	})
	if len(groups) > count {
		groups = groups[:count]
	}
	return groups
}

// SalesByRegion agrupa todas las ventas por RegionID (como texto) y suma Amount.
func SalesByRegion(sales []*entity.Sale) map[string]decimal.Decimal {
	regions := make(map[string]decimal.Decimal)
	for _, s := range sales {
		if s == nil {
			continue
		}
		key := strconv.FormatInt(s.RegionID, 10)
		regions[key] = regions[key].Add(s.Amount)
	}
	return regions
}
