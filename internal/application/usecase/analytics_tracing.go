package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/akashtandel42/Salesmanagement/internal/application/dto"
)

const analyticsTracerName = "github.com/akashtandel42/Salesmanagement/internal/application/usecase/analytics"

var _ AnalyticsService = (*TracedAnalytics)(nil)

// TracedAnalytics decora un AnalyticsService con spans de OpenTelemetry.
type TracedAnalytics struct {
	inner  AnalyticsService
	tracer trace.Tracer
}

// NewTracedAnalytics envuelve inner. Si tracer es nil usa el proveedor global.
func NewTracedAnalytics(inner AnalyticsService, tracer trace.Tracer) *TracedAnalytics {
	if tracer == nil {
		tracer = otel.Tracer(analyticsTracerName)
	}
	return &TracedAnalytics{inner: inner, tracer: tracer}
}

func (t *TracedAnalytics) TotalSales(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	ctx, span := t.tracer.Start(ctx, "Analytics.TotalSales", trace.WithAttributes(rangeAttrs(start, end)...))
	defer span.End()

	total, err := t.inner.TotalSales(ctx, start, end)
	if err != nil {
		return total, recordErr(span, err)
	}
	span.SetAttributes(attribute.String("analytics.total", total.String()))
	return total, nil
}

func (t *TracedAnalytics) SalesTrends(ctx context.Context, interval string) (map[string]decimal.Decimal, error) {
	ctx, span := t.tracer.Start(ctx, "Analytics.SalesTrends", trace.WithAttributes(attribute.String("analytics.interval", interval)))
	defer span.End()

	trends, err := t.inner.SalesTrends(ctx, interval)
	if err != nil {
		return nil, recordErr(span, err)
	}
	span.SetAttributes(attribute.Int("analytics.buckets", len(trends)))
	return trends, nil
}

func (t *TracedAnalytics) TopSellingProducts(ctx context.Context, start, end time.Time, count int) ([]dto.ProductResponse, error) {
	attrs := append(rangeAttrs(start, end), attribute.Int("analytics.count", count))
	ctx, span := t.tracer.Start(ctx, "Analytics.TopSellingProducts", trace.WithAttributes(attrs...))
	defer span.End()

	products, err := t.inner.TopSellingProducts(ctx, start, end, count)
	if err != nil {
		return nil, recordErr(span, err)
	}
	span.SetAttributes(attribute.Int("analytics.products", len(products)))
	return products, nil
}

func (t *TracedAnalytics) SalesByRegion(ctx context.Context) (map[string]decimal.Decimal, error) {
	ctx, span := t.tracer.Start(ctx, "Analytics.SalesByRegion")
	defer span.End()

	regions, err := t.inner.SalesByRegion(ctx)
	if err != nil {
		return nil, recordErr(span, err)
	}
	span.SetAttributes(attribute.Int("analytics.regions", len(regions)))
	return regions, nil
}

func rangeAttrs(start, end time.Time) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("analytics.start", start.Format(time.RFC3339)),
		attribute.String("analytics.end", end.Format(time.RFC3339)),
	}
}

func recordErr(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
