package observability

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func newObserver(t *testing.T) (ObserverInterface, error) {
	observer, err := NewObserver("localhost:4317")
	assert.NotNil(t, observer)
	assert.Nil(t, err)
	return observer, err
}

func TestObserver(t *testing.T) {
	t.Run("Test for auto-init", func(t *testing.T) {
		observer := Observer()
		assert.NotNil(t, observer)
	})

	t.Run("Test for Observer", func(t *testing.T) {
		newObserver(t)
		observer := Observer()
		assert.NotNil(t, observer)
	})
}

func TestNewObserver(t *testing.T) {
	newObserver(t)
}

func TestObserverSingleton(t *testing.T) {
	observer1, _ := newObserver(t)
	observer2, _ := newObserver(t)

	observer3 := Observer()
	observer4 := Observer()

	assert.Equal(t, observer1, observer2)
	assert.Equal(t, observer3, observer4)
	assert.Equal(t, observer1, observer3)
}

func TestShutdown(t *testing.T) {
	observer, _ := newObserver(t)
	err := observer.Shutdown(context.Background())
	assert.Nil(t, err)
}

func TestTracer(t *testing.T) {
	observer, _ := newObserver(t)
	tracer := observer.Tracer("test")
	assert.NotNil(t, tracer)
}

func TestCreateSpan(t *testing.T) {
	observer, _ := newObserver(t)
	ctx, span := observer.CreateSpan(context.Background(), "test")
	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
}

func TestConcurrency(t *testing.T) {
	observer := NewLocalObserver()
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx := context.WithValue(context.Background(), "key", fmt.Sprintf("value%d", i))

			ctx, span := observer.Tracer("test").Start(ctx, "test")
			defer span.End()

			assert.NotNil(t, ctx)
			assert.NotNil(t, span)

			s := SpanFromContext(ctx)
			assert.NotNil(t, s)

			s.AddEvent("test")
		}(i)
	}

	wg.Wait()
}

func BenchmarkObserver(b *testing.B) {
	observer := NewLocalObserver()

	for n := 0; n < b.N; n++ {
		var wg sync.WaitGroup

		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				ctx := context.WithValue(context.Background(), "key", fmt.Sprintf("value%d", i))

				ctx, span := observer.Tracer("test").Start(ctx, "test")
				defer span.End()

				s := SpanFromContext(ctx)
				s.AddEvent("test")
			}(i)
		}

		wg.Wait()
	}
}

func TestNewObserverWithEmptyAddress(t *testing.T) {
	observer, err := NewObserver("")
	assert.NotNil(t, observer)
	assert.Nil(t, err)
}

func TestNewLocalObserverNotNil(t *testing.T) {
	observer := NewLocalObserver()
	assert.NotNil(t, observer)
}

func TestInitMeterProvider(t *testing.T) {
	assert.NotPanics(t, func() {
		mp, err := InitMeterProvider()
		assert.Nil(t, err)
		assert.NotNil(t, mp)
	})
}

func TestInitResource(t *testing.T) {
	resource = nil
	initResourcesOnce = sync.Once{}

	res := initResource()
	assert.NotNil(t, res)
}

func TestInitStdoutProvider(t *testing.T) {
	tp, err := initStdoutProvider()
	assert.NotNil(t, tp)
	assert.Nil(t, err)
}

func TestInitTracerProviderEmptyAddress(t *testing.T) {
	tp, err := initTracerProvider("")
	assert.Nil(t, tp)
	assert.NotNil(t, err)
	assert.Equal(t, "collector address is required", err.Error())
}

func TestInitTracerProviderInvalidAddress(t *testing.T) {
	tp, err := initTracerProvider("invalid:address:format")
	if err != nil {
		assert.Nil(t, tp)
	} else {
		assert.NotNil(t, tp)
	}
}

func TestContextPropagation(t *testing.T) {
	observer := NewLocalObserver()

	parentCtx, parentSpan := observer.CreateSpan(context.Background(), "parent_span")
	defer parentSpan.End()

	childCtx, childSpan := observer.CreateSpan(parentCtx, "child_span")
	defer childSpan.End()

	parentSpanFromCtx := SpanFromContext(parentCtx)
	childSpanFromCtx := SpanFromContext(childCtx)

	assert.NotNil(t, parentSpanFromCtx)
	assert.NotNil(t, childSpanFromCtx)
	assert.NotEqual(t, parentSpanFromCtx, childSpanFromCtx)
}

func TestSpanAttributesAndEvents(t *testing.T) {
	observer := NewLocalObserver()

	ctx, span := observer.CreateSpan(context.Background(), "test_span")
	defer span.End()

	span.SetAttributes(
		attribute.String("key1", "value1"),
		attribute.Int("key2", 42),
	)

	span.AddEvent("event1")
	span.AddEvent("event2", trace.WithAttributes(
		attribute.String("event_key", "event_value"),
	))

	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
	assert.True(t, span.IsRecording())
}

func TestNewObserverMultipleTimes(t *testing.T) {
	observer1 := NewLocalObserver()
	observer2 := NewLocalObserver()
	assert.Equal(t, observer1, observer2)
}

func TestCreateSpanAcceptsEventsAndAttributes(t *testing.T) {
	observer := NewLocalObserver()

	ctx, span := observer.CreateSpan(context.Background(), "test_span")
	defer span.End()

	span.AddEvent("test event")
	span.SetAttributes(attribute.String("key", "value"))

	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
}

func TestTracerEmptyName(t *testing.T) {
	observer := NewLocalObserver()
	tracer := observer.Tracer("")
	assert.NotNil(t, tracer)
}

func TestCreateSpanEmptyName(t *testing.T) {
	observer := NewLocalObserver()
	ctx, span := observer.CreateSpan(context.Background(), "")
	defer span.End()

	assert.NotNil(t, ctx)
	assert.NotNil(t, span)
}

func TestInitResourceMultipleTimes(t *testing.T) {
	res1 := initResource()
	res2 := initResource()
	assert.Equal(t, res1, res2)
}

func TestShutdownWithCancelledContext(t *testing.T) {
	observer := NewLocalObserver()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := observer.Shutdown(ctx)
	_ = err
}

func TestNewObserverWithAddress(t *testing.T) {
	oi = nil
	initObserverOnce = sync.Once{}

	observer, err := NewObserver("localhost:4317")
	assert.NotNil(t, observer)
	assert.Nil(t, err)
}

func TestInitializationErrorHandling(t *testing.T) {
	tp, err := initStdoutProvider()
	assert.NotNil(t, tp)
	assert.Nil(t, err)

	tp2, err2 := initTracerProvider("localhost:4317")
	assert.NotNil(t, tp2)
	assert.Nil(t, err2)
}

func TestNewLocalObserverSingleton(t *testing.T) {
	observer1 := NewLocalObserver()
	observer2 := NewLocalObserver()

	assert.Equal(t, observer1, observer2)

	ctx1, span1 := observer1.CreateSpan(context.Background(), "span1")
	ctx2, span2 := observer2.CreateSpan(context.Background(), "span2")

	assert.NotNil(t, ctx1)
	assert.NotNil(t, span1)
	assert.NotNil(t, ctx2)
	assert.NotNil(t, span2)

	span1.End()
	span2.End()
}
