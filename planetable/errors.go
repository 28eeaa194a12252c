package planetable

import "errors"

// ErrIndexOutOfRange is returned by Table.Get-adjacent helpers when an
// index outside the registered range is requested.
var ErrIndexOutOfRange = errors.New("planetable: index out of range")
