// Package convert turns raw argument and result values into the
// representations that end up in log records.
//
// A Registry satisfies logpoint.Converter. It is consulted lazily, once per
// live parameter rule, only when the plan's level is enabled.
//
//	conv := convert.NewRegistry(
//	    convert.WithType(func(c *Card) any { return c.Masked() }),
//	)
//	values := plan.Values(args, conv)
package convert
