package interceptor

import "errors"

// ErrNilMethod is returned by Invoke when no method metadata is given.
var ErrNilMethod = errors.New("interceptor: nil method")
