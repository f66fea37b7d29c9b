// Package interceptor executes log plans around calls of instrumented
// methods.
//
// An Interceptor owns a PlanCache, so each method's plan is compiled once on
// first use and then shared. Every call is logged through a logger.Backend:
//
//	icpt := interceptor.NewInterceptor(interceptor.Config{InvocationID: true}, log,
//	    interceptor.WithMetrics(m),
//	    interceptor.WithVariables(logcontext.FromContext("user", userKey{})),
//	)
//
//	placeOrder := &logpoint.Method{
//	    Name: "PlaceOrder",
//	    Params: []logpoint.Parameter{
//	        {Name: "qty", Type: reflect.TypeOf(0)},
//	        {Name: "sku", Type: reflect.TypeOf("")},
//	    },
//	    Results: []reflect.Type{reflect.TypeOf(0), reflect.TypeOf((*error)(nil)).Elem()},
//	    Logged:  &logpoint.Logged{Level: logpoint.Info},
//	    Scopes:  []logpoint.Scope{{Name: "orders.Service"}},
//	}
//
//	id, err := interceptor.Call(ctx, icpt, placeOrder, []any{qty, sku},
//	    func(ctx context.Context) (int, error) { return svc.PlaceOrder(ctx, qty, sku) })
//
// The call above writes "place order 3 sku-1" to the "orders.Service"
// logger at INFO, followed by "return 42" or, on error, "failed" with the
// error attached.
//
// With WithMetrics the interceptor registers:
//
//	logkit_plans_built_total{logger}
//	logkit_plan_build_seconds
//	logkit_cached_plans
//	logkit_invocations_total{logger,outcome}
//	logkit_records_written_total{level}
package interceptor
