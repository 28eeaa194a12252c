package compiler

import "errors"

// ErrWorldspawnLeak is returned by Compile when entity 0 (worldspawn)
// leaks: the whole compilation aborts per §7's propagation policy.
var ErrWorldspawnLeak = errors.New("compiler: worldspawn leaked")

// ErrNoEntities indicates Compile was called with an empty entity list;
// there is no worldspawn to compile against.
var ErrNoEntities = errors.New("compiler: no entities to compile")
