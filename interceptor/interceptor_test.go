package interceptor_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/logkit/convert"
	"github.com/aalemi-dev/logkit/interceptor"
	"github.com/aalemi-dev/logkit/logcontext"
	"github.com/aalemi-dev/logkit/logger"
	"github.com/aalemi-dev/logkit/logpoint"
	"github.com/aalemi-dev/logkit/metrics"
	"github.com/aalemi-dev/logkit/observability"
	"github.com/aalemi-dev/logkit/tracer"
)

var (
	intType    = reflect.TypeOf(0)
	stringType = reflect.TypeOf("")
	errType    = reflect.TypeOf((*error)(nil)).Elem()
)

// recordingBackend keeps every written entry and enables levels at or above min.
type recordingBackend struct {
	mu      sync.Mutex
	min     logpoint.Level
	entries []logger.Entry
}

func (b *recordingBackend) Enabled(_ string, level logpoint.Level) bool {
	return level >= b.min
}

func (b *recordingBackend) Write(_ context.Context, e logger.Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, e)
}

func (b *recordingBackend) rendered() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = logger.Format(e.Message, e.Args)
	}
	return out
}

func placeOrder() *logpoint.Method {
	return &logpoint.Method{
		Name:    "PlaceOrder",
		Params:  []logpoint.Parameter{{Name: "qty", Type: intType}, {Name: "sku", Type: stringType}},
		Results: []reflect.Type{intType, errType},
		Logged:  &logpoint.Logged{Level: logpoint.Info},
		Scopes:  []logpoint.Scope{{Name: "orders.Service"}},
	}
}

type InterceptorSuite struct {
	suite.Suite
	backend *recordingBackend
	metrics *metrics.Metrics
	ops     []observability.OperationContext
	icpt    *interceptor.Interceptor
}

func (s *InterceptorSuite) SetupTest() {
	s.backend = &recordingBackend{min: logpoint.Trace}
	s.metrics = metrics.NewMetrics(metrics.Config{ServiceName: "test"})
	s.ops = nil
	s.icpt = interceptor.NewInterceptor(interceptor.Config{}, s.backend,
		interceptor.WithMetrics(s.metrics),
		interceptor.WithObserver(observability.ObserverFunc(func(op observability.OperationContext) {
			s.ops = append(s.ops, op)
		})),
	)
}

func TestInterceptorSuite(t *testing.T) {
	suite.Run(t, new(InterceptorSuite))
}

func (s *InterceptorSuite) TestCallAndReturnAreLogged() {
	id, err := interceptor.Call(context.Background(), s.icpt, placeOrder(), []any{3, "sku-1"},
		func(context.Context) (int, error) { return 42, nil })

	s.Require().NoError(err)
	s.Equal(42, id)
	s.Equal([]string{"place order 3 sku-1", "return 42"}, s.backend.rendered())
	for _, e := range s.backend.entries {
		s.Equal("orders.Service", e.Logger)
		s.Equal(logpoint.Info, e.Level)
	}
}

func (s *InterceptorSuite) TestFailureIsLoggedAndReturnedUnchanged() {
	boom := errors.New("out of stock")
	_, err := interceptor.Call(context.Background(), s.icpt, placeOrder(), []any{1, "sku-2"},
		func(context.Context) (int, error) { return 0, boom })

	s.Require().ErrorIs(err, boom)
	s.Require().Len(s.backend.entries, 2)
	failure := s.backend.entries[1]
	s.Equal(interceptor.FailureMessage, failure.Message)
	s.ErrorIs(failure.Err, boom)
}

func (s *InterceptorSuite) TestNoReturnRecordWithoutResult() {
	m := &logpoint.Method{Name: "Flush", Results: []reflect.Type{errType}}
	err := interceptor.Run(context.Background(), s.icpt, m, nil, func(context.Context) error { return nil })

	s.Require().NoError(err)
	s.Equal([]string{"flush"}, s.backend.rendered())
	s.Equal(logpoint.DefaultLevel, s.backend.entries[0].Level)
	s.Equal("Flush", s.backend.entries[0].Logger)
}

func (s *InterceptorSuite) TestDisabledLevelSkipsExtraction() {
	s.backend.min = logpoint.Warn
	conv := convert.NewRegistry(convert.WithType(func(int) any {
		s.Fail("converter must not run for disabled plans")
		return nil
	}))
	icpt := interceptor.NewInterceptor(interceptor.Config{}, s.backend, interceptor.WithConverter(conv))

	called := false
	_, err := icpt.Invoke(context.Background(), placeOrder(), []any{1, "x"}, func(context.Context) (any, error) {
		called = true
		return 1, nil
	})

	s.Require().NoError(err)
	s.True(called)
	s.Empty(s.backend.entries)
}

func (s *InterceptorSuite) TestErrorArgumentAttached() {
	m := &logpoint.Method{
		Name:   "Retry",
		Params: []logpoint.Parameter{{Name: "attempt", Type: intType}, {Name: "cause", Type: errType}},
	}
	cause := errors.New("timeout")
	_, err := s.icpt.Invoke(context.Background(), m, []any{2, cause}, func(context.Context) (any, error) { return nil, nil })

	s.Require().NoError(err)
	s.Equal([]string{"retry 2"}, s.backend.rendered())
	s.ErrorIs(s.backend.entries[0].Err, cause)
}

func (s *InterceptorSuite) TestErrorArgumentFillsSpareSlot() {
	m := &logpoint.Method{
		Name:   "Retry",
		Params: []logpoint.Parameter{{Name: "attempt", Type: intType}, {Name: "cause", Type: errType}},
		Logged: &logpoint.Logged{Message: "attempt {} failed: {}"},
	}
	cause := errors.New("timeout")
	_, err := s.icpt.Invoke(context.Background(), m, []any{2, cause}, func(context.Context) (any, error) { return nil, nil })

	s.Require().NoError(err)
	s.Equal([]string{"attempt 2 failed: timeout"}, s.backend.rendered())
	s.ErrorIs(s.backend.entries[0].Err, cause)
}

func (s *InterceptorSuite) TestNilErrorArgumentNotAttached() {
	m := &logpoint.Method{
		Name:   "Retry",
		Params: []logpoint.Parameter{{Name: "attempt", Type: intType}, {Name: "cause", Type: errType}},
	}
	_, err := s.icpt.Invoke(context.Background(), m, []any{2, nil}, func(context.Context) (any, error) { return nil, nil })

	s.Require().NoError(err)
	s.Nil(s.backend.entries[0].Err)
}

func (s *InterceptorSuite) TestStaticDiagnosticsRenderInline() {
	m := &logpoint.Method{
		Name:   "Lookup",
		Params: []logpoint.Parameter{{Name: "key", Type: stringType}},
		Logged: &logpoint.Logged{Message: "lookup {0} via {cache}"},
	}
	_, _ = s.icpt.Invoke(context.Background(), m, []any{"k1"}, func(context.Context) (any, error) { return nil, nil })

	s.Equal([]string{"lookup k1 via invalid log parameter expression: cache"}, s.backend.rendered())
}

func (s *InterceptorSuite) TestPlanBuiltOncePerIdentity() {
	for range 3 {
		_, _ = interceptor.Call(context.Background(), s.icpt, placeOrder(), []any{1, "x"},
			func(context.Context) (int, error) { return 1, nil })
	}

	s.Equal(1, s.icpt.Plans().Len())

	builds := 0
	for _, op := range s.ops {
		if op.Operation == "build" {
			builds++
		}
	}
	s.Equal(1, builds)

	expected := `
# HELP logkit_plans_built_total Log plans compiled, by logger.
# TYPE logkit_plans_built_total counter
logkit_plans_built_total{logger="orders.Service",service="test"} 1
# HELP logkit_invocations_total Intercepted calls, by logger and outcome.
# TYPE logkit_invocations_total counter
logkit_invocations_total{logger="orders.Service",outcome="ok",service="test"} 3
`
	s.NoError(testutil.GatherAndCompare(s.metrics.ApplicationRegistry, strings.NewReader(expected),
		interceptor.MetricPlansBuilt, interceptor.MetricInvocations))
}

func (s *InterceptorSuite) TestObserverReceivesInvoke() {
	boom := errors.New("boom")
	_, _ = s.icpt.Invoke(context.Background(), placeOrder(), []any{5, "sku"}, func(context.Context) (any, error) {
		return nil, boom
	})

	s.Require().Len(s.ops, 2)
	invoke := s.ops[1]
	s.Equal("invoke", invoke.Operation)
	s.Equal("orders.Service", invoke.Resource)
	s.Equal("orders.Service.PlaceOrder", invoke.SubResource)
	s.Equal(int64(2), invoke.Size)
	s.ErrorIs(invoke.Error, boom)
}

func (s *InterceptorSuite) TestNilMethod() {
	_, err := s.icpt.Invoke(context.Background(), nil, nil, func(context.Context) (any, error) {
		s.Fail("proceed must not run")
		return nil, nil
	})
	s.ErrorIs(err, interceptor.ErrNilMethod)
}

func TestInvoke_ContextVariablesSharedAcrossRecords(t *testing.T) {
	t.Parallel()
	backend := &recordingBackend{min: logpoint.Trace}
	icpt := interceptor.NewInterceptor(interceptor.Config{
		InvocationID: true,
		TraceFields:  true,
		Fields:       map[string]string{"region": "eu-1"},
	}, backend)

	tp := sdktrace.NewTracerProvider()
	defer func() { _ = tp.Shutdown(context.Background()) }()
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	_, err := interceptor.Call(ctx, icpt, placeOrder(), []any{1, "x"}, func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	require.Len(t, backend.entries, 2)

	call, ret := backend.entries[0].Fields, backend.entries[1].Fields
	assert.Equal(t, "eu-1", call["region"])
	assert.Equal(t, span.SpanContext().TraceID().String(), call[logcontext.TraceIDKey])
	assert.NotEmpty(t, call[logcontext.InvocationIDKey])
	assert.Equal(t, call[logcontext.InvocationIDKey], ret[logcontext.InvocationIDKey])
}

func TestInvoke_ConverterAppliedToValuesAndResult(t *testing.T) {
	t.Parallel()
	type sku struct{ code string }
	backend := &recordingBackend{min: logpoint.Trace}
	conv := convert.NewRegistry(convert.WithType(func(s sku) any { return "SKU:" + s.code }))
	icpt := interceptor.NewInterceptor(interceptor.Config{}, backend, interceptor.WithConverter(conv))

	m := &logpoint.Method{
		Name:    "Reserve",
		Params:  []logpoint.Parameter{{Name: "item", Type: reflect.TypeOf(sku{})}},
		Results: []reflect.Type{reflect.TypeOf(sku{})},
	}
	_, err := icpt.Invoke(context.Background(), m, []any{sku{"a"}}, func(context.Context) (any, error) {
		return sku{"b"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"reserve SKU:a", "return SKU:b"}, backend.rendered())
}

func TestInvoke_ConcurrentCallsShareOnePlan(t *testing.T) {
	t.Parallel()
	backend := &recordingBackend{min: logpoint.Trace}
	var (
		mu     sync.Mutex
		builds int
	)
	icpt := interceptor.NewInterceptor(interceptor.Config{}, backend,
		interceptor.WithObserver(observability.ObserverFunc(func(op observability.OperationContext) {
			if op.Operation == "build" {
				mu.Lock()
				builds++
				mu.Unlock()
			}
		})))

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = interceptor.Call(context.Background(), icpt, placeOrder(), []any{1, "x"},
				func(context.Context) (int, error) { return 1, nil })
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, builds)
	assert.Len(t, backend.entries, 64)
}

func TestInvoke_TracerSpanWrapsCall(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tc, err := tracer.NewClient(tracer.Config{ServiceName: "test"}, sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)
	defer func() { _ = tc.Shutdown(context.Background()) }()

	backend := &recordingBackend{min: logpoint.Trace}
	icpt := interceptor.NewInterceptor(interceptor.Config{TraceFields: true}, backend, interceptor.WithTracer(tc))

	boom := errors.New("boom")
	var inner string
	_, err = icpt.Invoke(context.Background(), placeOrder(), []any{1, "x"}, func(ctx context.Context) (any, error) {
		inner = oteltrace.SpanFromContext(ctx).SpanContext().TraceID().String()
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	span := ended[0]
	assert.Equal(t, "orders.Service.PlaceOrder", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, span.SpanContext().TraceID().String(), inner)
	assert.Equal(t, inner, backend.entries[0].Fields[logcontext.TraceIDKey])
}
