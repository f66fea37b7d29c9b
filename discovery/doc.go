// Package discovery produces logpoint.Method metadata, either by reflecting
// on Go functions and methods or by loading a YAML catalog.
//
// Reflection cannot see parameter names, so FromFunc and FromMethod name
// parameters arg0, arg1 and so on unless ParamNames is given.
// context.Context parameters are excluded from auto messages unless
// KeepContext is given.
//
//	m, err := discovery.FromMethod(reflect.TypeOf(&orders.Service{}), "PlaceOrder",
//	    discovery.ParamNames("ctx", "qty", "sku"),
//	    discovery.WithLogged(logpoint.Logged{Level: logpoint.Info}),
//	)
//
// Catalogs describe methods declaratively; see Catalog for the file format.
package discovery
