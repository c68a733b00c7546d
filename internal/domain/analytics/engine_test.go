package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashtandel42/Salesmanagement/internal/domain"
	"github.com/akashtandel42/Salesmanagement/internal/domain/analytics"
	"github.com/akashtandel42/Salesmanagement/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sale(amount int64, date time.Time, productID, regionID int64) *entity.Sale {
	return &entity.Sale{
		Amount:    decimal.NewFromInt(amount),
		SaleDate:  date,
		ProductID: productID,
		RegionID:  regionID,
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(expected).Equal(actual), "esperado %s, obtenido %s", expected, actual.String())
}

func juneSales() []*entity.Sale {
	return []*entity.Sale{
		sale(100, day(2023, time.June, 1), 1, 1),
		sale(200, day(2023, time.June, 7), 2, 2),
		sale(150, day(2023, time.June, 15), 3, 3),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// TotalSales
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalSales_RangoInclusivo(t *testing.T) {
	sales := juneSales()

	// Ambos extremos del rango se incluyen.
	assertDecimal(t, "450", analytics.TotalSales(sales, day(2023, time.June, 1), day(2023, time.June, 15)))
	assertDecimal(t, "300", analytics.TotalSales(sales, day(2023, time.June, 1), day(2023, time.June, 7)))
	assertDecimal(t, "150", analytics.TotalSales(sales, day(2023, time.June, 15), day(2023, time.June, 15)))
}

func TestTotalSales_RangoInvertidoRetornaCero(t *testing.T) {
	total := analytics.TotalSales(juneSales(), day(2023, time.June, 30), day(2023, time.June, 1))
	assert.True(t, total.IsZero(), "rango invertido debe retornar 0")
}

func TestTotalSales_SinVentasRetornaCero(t *testing.T) {
	total := analytics.TotalSales(nil, day(2023, time.January, 1), day(2023, time.December, 31))
	assert.True(t, total.IsZero())
}

func TestTotalSales_Aditivo(t *testing.T) {
	sales := juneSales()
	a, b, c := day(2023, time.June, 1), day(2023, time.June, 7), day(2023, time.June, 30)

	left := analytics.TotalSales(sales, a, b)
	right := analytics.TotalSales(sales, b.Add(time.Nanosecond), c)
	whole := analytics.TotalSales(sales, a, c)

	assert.True(t, whole.Equal(left.Add(right)), "la suma de particiones disjuntas debe igualar el total")
}

func TestTotalSales_RespetaHoraDelDia(t *testing.T) {
	sales := []*entity.Sale{sale(80, time.Date(2023, time.June, 7, 10, 30, 0, 0, time.UTC), 1, 1)}

	// El fin del rango a medianoche deja fuera la venta del mismo día a las 10:30.
	assert.True(t, analytics.TotalSales(sales, day(2023, time.June, 1), day(2023, time.June, 7)).IsZero())
	assertDecimal(t, "80", analytics.TotalSales(sales, day(2023, time.June, 1), day(2023, time.June, 8)))
}

// ──────────────────────────────────────────────────────────────────────────────
// SalesTrends
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesTrends_Daily(t *testing.T) {
	trends, err := analytics.SalesTrends(juneSales(), analytics.IntervalDaily)
	require.NoError(t, err)

	require.Len(t, trends, 3, "debe haber un bucket por fecha")
	assertDecimal(t, "100", trends["2023-06-01"])
	assertDecimal(t, "200", trends["2023-06-07"])
	assertDecimal(t, "150", trends["2023-06-15"])
}

func TestSalesTrends_Weekly(t *testing.T) {
	trends, err := analytics.SalesTrends(juneSales(), analytics.IntervalWeekly)
	require.NoError(t, err)

	// 2023-06-01 es jueves de la semana ISO 22; 06-07 miércoles de la 23; 06-15 jueves de la 24.
	assert.Equal(t, map[string]bool{"22": true, "23": true, "24": true}, keys(trends))
	assertDecimal(t, "100", trends["22"])
	assertDecimal(t, "200", trends["23"])
	assertDecimal(t, "150", trends["24"])
}

func TestSalesTrends_WeeklyAgrupaLunesADomingo(t *testing.T) {
	sales := []*entity.Sale{
		sale(10, day(2023, time.June, 5), 1, 1),  // lunes
		sale(20, day(2023, time.June, 11), 1, 1), // domingo, misma semana
		sale(30, day(2023, time.June, 12), 1, 1), // lunes siguiente
	}
	trends, err := analytics.SalesTrends(sales, analytics.IntervalWeekly)
	require.NoError(t, err)

	assertDecimal(t, "30", trends["23"])
	assertDecimal(t, "30", trends["24"])
}

// La semana sigue ISO-8601 (time.ISOWeek). Un GetWeekOfYear(FirstFourDayWeek, Monday) al estilo
// .NET difiere a fin de diciembre: para 2024-12-30 devuelve 53, ISO devuelve 1.
func TestSalesTrends_WeeklyReglaISOEnCambioDeAnio(t *testing.T) {
	sales := []*entity.Sale{
		sale(5, day(2021, time.January, 1), 1, 1),  // viernes: pertenece a la semana 53 de 2020
		sale(7, day(2024, time.December, 30), 1, 1), // lunes: semana 1 de 2025
	}
	trends, err := analytics.SalesTrends(sales, analytics.IntervalWeekly)
	require.NoError(t, err)

	assertDecimal(t, "5", trends["53"])
	assertDecimal(t, "7", trends["1"])
}

func TestSalesTrends_MismoInstanteDistintaZonaMismoBucket(t *testing.T) {
	instant := time.Date(2023, time.June, 2, 3, 30, 0, 0, time.UTC)
	bogota := time.FixedZone("UTC-5", -5*60*60)

	for _, interval := range []analytics.Interval{analytics.IntervalDaily, analytics.IntervalWeekly, analytics.IntervalMonthly} {
		utc, err := analytics.SalesTrends([]*entity.Sale{sale(100, instant, 1, 1)}, interval)
		require.NoError(t, err)
		local, err := analytics.SalesTrends([]*entity.Sale{sale(100, instant.In(bogota), 1, 1)}, interval)
		require.NoError(t, err)

		assert.Equal(t, keys(utc), keys(local), "interval %s", interval)
	}

	daily, err := analytics.SalesTrends([]*entity.Sale{sale(100, instant.In(bogota), 1, 1)}, analytics.IntervalDaily)
	require.NoError(t, err)
	assertDecimal(t, "100", daily["2023-06-02"])
}

func TestBucketKey_NormalizaAUTC(t *testing.T) {
	// 2023-06-30 22:00 en UTC-5 es 2023-07-01 03:00 UTC
	t0 := time.Date(2023, time.June, 30, 22, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60))

	key, err := analytics.BucketKey(t0, analytics.IntervalMonthly)
	require.NoError(t, err)
	assert.Equal(t, "2023-07", key)
}

func TestSalesTrends_Monthly(t *testing.T) {
	sales := append(juneSales(), sale(50, day(2023, time.July, 2), 1, 1))
	trends, err := analytics.SalesTrends(sales, analytics.IntervalMonthly)
	require.NoError(t, err)

	require.Len(t, trends, 2)
	assertDecimal(t, "450", trends["2023-06"])
	assertDecimal(t, "50", trends["2023-07"])
}

func TestSalesTrends_SumaIgualAlTotal(t *testing.T) {
	sales := append(juneSales(), sale(75, day(2022, time.December, 31), 4, 1))
	all := analytics.TotalSales(sales, day(2000, time.January, 1), day(2100, time.January, 1))

	for _, interval := range []analytics.Interval{analytics.IntervalDaily, analytics.IntervalWeekly, analytics.IntervalMonthly} {
		trends, err := analytics.SalesTrends(sales, interval)
		require.NoError(t, err)
		sum := decimal.Zero
		for _, v := range trends {
			sum = sum.Add(v)
		}
		assert.True(t, all.Equal(sum), "intervalo %s: suma de buckets debe igualar el total", interval)
	}
}

func TestSalesTrends_IntervaloInvalido(t *testing.T) {
	trends, err := analytics.SalesTrends(juneSales(), analytics.Interval("foo"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Nil(t, trends)
}

func TestSalesTrends_IntervaloInvalidoSinVentas(t *testing.T) {
	_, err := analytics.SalesTrends(nil, analytics.Interval("Daily"))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument, "la validación no depende de que existan ventas")
}

func TestParseInterval(t *testing.T) {
	for _, in := range []string{"daily", "weekly", "monthly"} {
		interval, err := analytics.ParseInterval(in)
		require.NoError(t, err)
		assert.Equal(t, analytics.Interval(in), interval)
	}
	for _, in := range []string{"", "foo", "MONTHLY", "yearly"} {
		_, err := analytics.ParseInterval(in)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "intervalo %q debe ser inválido", in)
	}
}

func TestSalesTrends_SinVentasRetornaMapaVacio(t *testing.T) {
	trends, err := analytics.SalesTrends(nil, analytics.IntervalDaily)
	require.NoError(t, err)
	assert.NotNil(t, trends)
	assert.Empty(t, trends)
}

// ──────────────────────────────────────────────────────────────────────────────
// RankProducts
// ──────────────────────────────────────────────────────────────────────────────

func TestRankProducts_SumaPorProducto(t *testing.T) {
	sales := []*entity.Sale{
		sale(100, day(2023, time.June, 1), 1, 1),
		sale(200, day(2023, time.June, 2), 2, 1),
		sale(150, day(2023, time.June, 3), 1, 1),
	}
	top := analytics.RankProducts(sales, day(2023, time.June, 1), day(2023, time.June, 30), 1)

	require.Len(t, top, 1)
	assert.Equal(t, int64(1), top[0].ProductID, "producto 1 suma 250 > 200")
	assertDecimal(t, "250", top[0].Total)
}

func TestRankProducts_EmpatesConservanOrdenDeAparicion(t *testing.T) {
	sales := []*entity.Sale{
		sale(50, day(2023, time.June, 1), 7, 1),
		sale(90, day(2023, time.June, 1), 3, 1),
		sale(50, day(2023, time.June, 2), 5, 1),
		sale(50, day(2023, time.June, 3), 9, 1),
	}
	top := analytics.RankProducts(sales, day(2023, time.June, 1), day(2023, time.June, 30), 10)

	ids := make([]int64, 0, len(top))
	for _, p := range top {
		ids = append(ids, p.ProductID)
	}
	assert.Equal(t, []int64{3, 7, 5, 9}, ids)
}

func TestRankProducts_AplicaFiltroDeFechas(t *testing.T) {
	sales := []*entity.Sale{
		sale(1000, day(2023, time.May, 31), 1, 1), // fuera del rango
		sale(100, day(2023, time.June, 1), 2, 1),
		sale(50, day(2023, time.June, 2), 1, 1),
	}
	top := analytics.RankProducts(sales, day(2023, time.June, 1), day(2023, time.June, 30), 2)

	require.Len(t, top, 2)
	assert.Equal(t, int64(2), top[0].ProductID)
	assert.Equal(t, int64(1), top[1].ProductID)
	assertDecimal(t, "50", top[1].Total)
}

func TestRankProducts_CountCeroONegativo(t *testing.T) {
	for _, count := range []int{0, -3} {
		top := analytics.RankProducts(juneSales(), day(2023, time.June, 1), day(2023, time.June, 30), count)
		assert.NotNil(t, top)
		assert.Empty(t, top, "count=%d debe retornar vacío", count)
	}
}

func TestRankProducts_CountMayorQueGrupos(t *testing.T) {
	top := analytics.RankProducts(juneSales(), day(2023, time.June, 1), day(2023, time.June, 30), 50)
	assert.Len(t, top, 3)
}

func TestRankProducts_NoMutaEntrada(t *testing.T) {
	sales := juneSales()
	before := make([]entity.Sale, len(sales))
	for i, s := range sales {
		before[i] = *s
	}
	analytics.RankProducts(sales, day(2023, time.June, 1), day(2023, time.June, 30), 3)

	for i, s := range sales {
		assert.Equal(t, before[i], *s)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// SalesByRegion
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesByRegion(t *testing.T) {
	sales := []*entity.Sale{
		sale(100, day(2023, time.June, 1), 1, 1),
		sale(200, day(2023, time.June, 2), 1, 1),
		sale(150, day(2023, time.June, 3), 1, 2),
	}
	regions := analytics.SalesByRegion(sales)

	assert.Equal(t, map[string]bool{"1": true, "2": true}, keys(regions))
	assertDecimal(t, "300", regions["1"])
	assertDecimal(t, "150", regions["2"])
}

func TestSalesByRegion_SinVentasRetornaMapaVacio(t *testing.T) {
	regions := analytics.SalesByRegion([]*entity.Sale{})
	assert.NotNil(t, regions)
	assert.Empty(t, regions)
}

func keys(m map[string]decimal.Decimal) map[string]bool {
	out := make(map[string]bool, len(m))
	for k := range m {
		out[k] = true
	}
	return out
}
