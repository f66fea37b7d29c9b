// Package observability defines the hook logkit components use to report
// the operations they perform.
//
// Components accept an optional Observer and call it once per completed
// operation. The interceptor package reports two operations:
//
//   - "build": a log plan was compiled for a method (cache miss)
//   - "invoke": an intercepted call returned
//
// An application can turn these events into metrics, spans or logs without
// the components depending on any of those concerns:
//
//	type slowCalls struct{ log logger.Logger }
//
//	func (o slowCalls) ObserveOperation(op observability.OperationContext) {
//		if op.Operation == "invoke" && op.Duration > time.Second {
//			o.log.Warn("slow call", op.Error, map[string]interface{}{
//				"logger": op.Resource,
//				"method": op.SubResource,
//			})
//		}
//	}
//
// # OperationContext Fields
//
//   - Component: reporting package, "logkit" for the interceptor
//   - Operation: "build" or "invoke"
//   - Resource: logger name of the plan
//   - SubResource: method identity
//   - Duration: time taken
//   - Error: error returned by the invoked method, if any
//   - Size: number of values passed to the backend
//   - Metadata: extra detail such as the plan level
//
// Observer implementations are called concurrently and must be safe for
// concurrent use.
package observability
