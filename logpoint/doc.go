// Package logpoint compiles declarative per-method logging configuration
// into immutable log plans.
//
// A plan is built once per method and then executed on every call. Building
// it resolves everything that does not depend on the actual arguments:
//   - the logger name (configured, or the outermost enclosing type)
//   - the level (configured on the method, or inherited from the first
//     enclosing scope that configures one, or Debug)
//   - the normalized message template
//   - the ordered parameter rules that feed the template's placeholders
//   - the rule for a trailing error parameter
//   - whether the method's result is logged
//
// # Message Templates
//
// Without a configured message the template is derived from the method name
// and the parameters that are not excluded:
//
//	FetchUserAccount(id string, region string) -> "fetch user account {} {}"
//
// A configured message references parameters with placeholders:
//
//	{}   the next parameter, counting only empty placeholders from 0
//	{1}  the parameter at index 1 (a leading sign is accepted)
//
// Any other placeholder content, and indexes out of range, do not fail the
// build. They are replaced by static rules whose text ("invalid log parameter
// expression: x", "invalid log parameter index: 5") appears in the log
// output where the value would have been.
//
// # Usage
//
//	plan := logpoint.Build(&logpoint.Method{
//		Name: "PlaceOrder",
//		Params: []logpoint.Parameter{
//			{Name: "id", Type: reflect.TypeOf("")},
//			{Name: "qty", Type: reflect.TypeOf(0)},
//		},
//		Logged: &logpoint.Logged{Message: "placing {1} x {0}", Level: logpoint.Info},
//		Scopes: []logpoint.Scope{{Name: "orders.Service", Kind: logpoint.TypeScope}},
//	})
//
//	plan.Message()            // "placing {} x {}"
//	plan.Values(args, conv)   // values for the placeholders of one call
//
// # Thread Safety
//
// Build keeps no shared state and may be called concurrently. Plans are
// read-only. Caching plans per method is up to the caller.
package logpoint
