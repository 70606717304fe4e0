package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/kubesetup/internal/adapters/telemetry"
	"go.trai.ch/kubesetup/internal/core/ports"
	"go.trai.ch/kubesetup/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
}

func TestLogBridge_SuccessfulSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var got string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) { got = msg })

	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(log))
	_, span := tracer.Start(context.Background(), "resolve")
	span.SetAttribute("specifier", "1.30")
	span.SetAttribute("version", "v1.30.2")
	span.End()

	assert.Contains(t, got, "span resolve finished in ")
	assert.Contains(t, got, "specifier=1.30 version=v1.30.2")
}

func TestLogBridge_FailedSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var got string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) { got = msg })

	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(log))
	_, span := tracer.Start(context.Background(), "acquire")
	span.RecordError(errors.New("failed to download kubectl v1.99.0"))
	span.End()

	assert.Contains(t, got, "span acquire failed after ")
	assert.Contains(t, got, ": failed to download kubectl v1.99.0")
}

func TestOTelTracer_NestedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).Times(2)

	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(log))
	ctx, parent := tracer.Start(context.Background(), "setup")
	childCtx, child := tracer.Start(ctx, "resolve")

	parentSC := trace.SpanContextFromContext(ctx)
	childSC := trace.SpanContextFromContext(childCtx)
	assert.True(t, childSC.IsValid())
	assert.Equal(t, parentSC.TraceID(), childSC.TraceID())
	assert.NotEqual(t, parentSC.SpanID(), childSC.SpanID())

	child.End()
	parent.End()
}

func TestOTelSpan_AttributeKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var got string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) { got = msg })

	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(log))
	_, span := tracer.Start(context.Background(), "kinds")
	span.SetAttribute("a_int", 3)
	span.SetAttribute("b_bool", true)
	span.SetAttribute("c_list", []string{"x", "y"})
	span.SetAttribute("d_other", struct{ N int }{N: 1})
	span.RecordError(nil)
	span.End()

	assert.Contains(t, got, "a_int=3")
	assert.Contains(t, got, "b_bool=true")
	assert.Contains(t, got, `c_list=["x","y"]`)
	assert.Contains(t, got, "d_other={1}")
	assert.Contains(t, got, "finished in")
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	got, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, got)
	assert.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}
