package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"github.com/akashtandel42/Salesmanagement/internal/application/usecase"
	"github.com/akashtandel42/Salesmanagement/internal/domain/repository/mocks"
)

func newRecordedTracer() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return recorder, provider
}

func TestTracedAnalytics_RegistraSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	sales := mocks.NewMockSaleRepository(ctrl)
	sales.EXPECT().List(gomock.Any()).Return(snapshotSales(), nil)

	recorder, provider := newRecordedTracer()
	svc := usecase.NewTracedAnalytics(usecase.NewAnalyticsUseCase(sales), provider.Tracer("test"))

	_, err := svc.SalesByRegion(context.Background())
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Analytics.SalesByRegion", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
}

func TestTracedAnalytics_MarcaErrorEnSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	sales := mocks.NewMockSaleRepository(ctrl)

	recorder, provider := newRecordedTracer()
	svc := usecase.NewTracedAnalytics(usecase.NewAnalyticsUseCase(sales), provider.Tracer("test"))

	_, err := svc.SalesTrends(context.Background(), "foo")
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "Analytics.SalesTrends", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	require.NotEmpty(t, spans[0].Events(), "el error debe registrarse como evento del span")
}
